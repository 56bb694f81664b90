package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table streams a tabular file's data rows after the preamble and header
// have been consumed. Rows are yielded one at a time so arbitrarily large
// files validate in bounded memory.
type Table struct {
	Preamble Preamble

	r        *csv.Reader
	buffered [][]string
	done     bool
}

// Parse reads enough of the input to locate the preamble and header row,
// then returns a Table positioned at the first data row. maxScan bounds
// how many leading records are examined while looking for the header. A
// CSV-level decode failure on the leading records is returned as an error;
// the caller decides whether it is fatal.
func Parse(r io.Reader, maxScan int) (*Table, error) {
	if maxScan < 3 {
		maxScan = 3
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var head [][]string
	for len(head) < maxScan {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read leading records: %w", err)
		}
		if err := checkEncoding(rec); err != nil {
			return nil, err
		}
		head = append(head, rec)
	}

	p := parsePreamble(head)
	if p.HeaderIndex < 0 {
		return nil, errors.New("no header row found")
	}
	p.Headers = trimHeaders(p.Headers)

	return &Table{
		Preamble: p,
		r:        cr,
		buffered: head[p.HeaderIndex+1:],
	}, nil
}

// Headers returns the header row, trimmed of surrounding whitespace.
func (t *Table) Headers() []string { return t.Preamble.Headers }

// Next returns the next data row, or io.EOF when the stream is exhausted.
// Malformed trailing rows terminate the stream with the decode error.
func (t *Table) Next() ([]string, error) {
	if len(t.buffered) > 0 {
		rec := t.buffered[0]
		t.buffered = t.buffered[1:]
		return rec, nil
	}
	if t.done {
		return nil, io.EOF
	}
	rec, err := t.r.Read()
	if err != nil {
		t.done = true
		return nil, err
	}
	if err := checkEncoding(rec); err != nil {
		t.done = true
		return nil, err
	}
	return rec, nil
}

// checkEncoding rejects records carrying invalid UTF-8. The engine gates
// the sniffed prefix up front; this covers rows streamed past it.
func checkEncoding(rec []string) error {
	for _, cell := range rec {
		if !utf8.ValidString(cell) {
			return errors.New("record contains invalid UTF-8")
		}
	}
	return nil
}

func trimHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = strings.TrimSpace(h)
	}
	return out
}
