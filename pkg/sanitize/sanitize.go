// Package sanitize implements the character-level cleaning step applied to
// every text segment before counting.
package sanitize

// Sanitizer performs a byte-wise substitution over text: ASCII uppercase
// letters are lowercased and tabs become underscores. Every other byte passes
// through unchanged, so output length always equals input length and
// multi-byte UTF-8 sequences survive intact even when a segment boundary
// falls inside one.
type Sanitizer struct{}

// Sanitize returns the cleaned form of text. The transformation is
// byte-independent and idempotent, which makes per-segment sanitization
// safe to run concurrently and to concatenate in segment order.
func (s *Sanitizer) Sanitize(text string) string {
	// Fast path: return the input untouched when nothing needs rewriting.
	dirty := -1
	for i := 0; i < len(text); i++ {
		if needsRewrite(text[i]) {
			dirty = i
			break
		}
	}
	if dirty < 0 {
		return text
	}

	out := []byte(text)
	for i := dirty; i < len(out); i++ {
		switch c := out[i]; {
		case c >= 'A' && c <= 'Z':
			out[i] = c + ('a' - 'A')
		case c == '\t':
			out[i] = '_'
		}
	}
	return string(out)
}

func needsRewrite(c byte) bool {
	return (c >= 'A' && c <= 'Z') || c == '\t'
}
