// Package detect classifies raw input bytes as tabular or structured.
package detect

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Kind is the coarse input classification. The tabular layout (tall vs
// wide) and the structured schema variant are refined further down the
// pipeline; detection only chooses which path runs.
type Kind int

const (
	// KindUnknown means neither content sniffing nor the filename hint
	// could classify the input.
	KindUnknown Kind = iota
	// KindTabular is delimiter-separated row data.
	KindTabular
	// KindStructured is a JSON document.
	KindStructured
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTabular:
		return "tabular"
	case KindStructured:
		return "structured"
	default:
		return "unknown"
	}
}

// sniffWindow bounds how much of the input content sniffing inspects.
const sniffWindow = 4096

// Detect classifies the input from its leading bytes, falling back to the
// filename extension when content sniffing is inconclusive. It never fails;
// an unclassifiable input yields KindUnknown.
func Detect(data []byte, filename string) Kind {
	if k := sniff(data); k != KindUnknown {
		return k
	}
	return fromExtension(filename)
}

// sniff inspects the leading non-whitespace byte and the first line.
func sniff(data []byte) Kind {
	s := bytes.TrimLeft(trimBOM(data), " \t\r\n")
	if len(s) == 0 {
		return KindUnknown
	}
	if len(s) > sniffWindow {
		s = s[:sniffWindow]
	}

	switch s[0] {
	case '{', '[':
		return KindStructured
	case '<':
		// Markup is neither of our formats.
		return KindUnknown
	}

	firstLine := s
	if i := bytes.IndexByte(s, '\n'); i >= 0 {
		firstLine = s[:i]
	}
	if bytes.ContainsAny(firstLine, ",\t") {
		return KindTabular
	}
	return KindUnknown
}

// fromExtension maps a filename hint to a kind.
func fromExtension(filename string) Kind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return KindStructured
	case ".csv", ".tsv":
		return KindTabular
	default:
		return KindUnknown
	}
}

// trimBOM strips a UTF-8 byte order mark if present.
func trimBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
}
