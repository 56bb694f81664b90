package compliance

// Version is the library version, following semantic versioning.
const Version = "0.3.0"
