// Package source provides the text-source implementations handed to the
// pipeline: in-memory text, local files, SQL query results, and extracted
// HTML articles. Every source materializes to an immutable byte sequence
// with random-access slice reads.
package source

import "fmt"

// Bytes is an immutable in-memory text source. All other sources reduce to
// it once their input is materialized.
type Bytes struct {
	text string
}

// NewBytes wraps already-materialized text.
func NewBytes(text string) *Bytes {
	return &Bytes{text: text}
}

// Len returns the total length in bytes.
func (b *Bytes) Len() int {
	return len(b.text)
}

// Text returns the full materialized text.
func (b *Bytes) Text() string {
	return b.text
}

// ReadSlice returns the [start, start+length) slice of the text.
func (b *Bytes) ReadSlice(start, length int) (string, error) {
	if start < 0 || length < 0 || start+length > len(b.text) {
		return "", fmt.Errorf("slice [%d, %d) out of range for source of %d bytes",
			start, start+length, len(b.text))
	}
	return b.text[start : start+length], nil
}
