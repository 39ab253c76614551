package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureHTML = `<!DOCTYPE html>
<html>
<head><title>Field Notes</title></head>
<body>
<nav><a href="/">home</a></nav>
<article>
<h1>Field Notes</h1>
<p>The first expedition left the station at dawn and followed the river
for eleven kilometres before the fog lifted. Everyone kept notebooks and
most of the entries survived the crossing intact.</p>
<p>The second expedition carried twice the supplies but half the
patience. Their notebooks are shorter and considerably less polite about
the weather, the terrain, and one another.</p>
<p>Taken together the notes describe the same valley from two moods, and
the archive keeps both versions side by side without comment.</p>
</article>
</body>
</html>`

func TestNewHTMLFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.html")
	if err := os.WriteFile(path, []byte(fixtureHTML), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	src, err := NewHTML(path)
	if err != nil {
		t.Fatalf("NewHTML() error = %v", err)
	}

	text, err := src.ReadSlice(0, src.Len())
	if err != nil {
		t.Fatalf("ReadSlice() error = %v", err)
	}

	if !strings.Contains(text, "eleven kilometres") {
		t.Errorf("extracted text missing article body, got %q", text)
	}
	if strings.Contains(text, "<p>") || strings.Contains(text, "href") {
		t.Errorf("extracted text still contains markup: %q", text)
	}
}

func TestNewHTMLMissingFile(t *testing.T) {
	_, err := NewHTML(filepath.Join(t.TempDir(), "missing.html"))
	if err == nil {
		t.Fatal("NewHTML() error = nil, want error for missing file")
	}
}
