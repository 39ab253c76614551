package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBytesReadSlice(t *testing.T) {
	b := NewBytes("Hello\tWorld")

	if got := b.Len(); got != 11 {
		t.Errorf("Len() = %d, want 11", got)
	}

	tests := []struct {
		name    string
		start   int
		length  int
		want    string
		wantErr bool
	}{
		{name: "full range", start: 0, length: 11, want: "Hello\tWorld"},
		{name: "prefix", start: 0, length: 6, want: "Hello\t"},
		{name: "suffix", start: 6, length: 5, want: "World"},
		{name: "empty slice", start: 3, length: 0, want: ""},
		{name: "negative start", start: -1, length: 2, wantErr: true},
		{name: "negative length", start: 0, length: -1, wantErr: true},
		{name: "past end", start: 8, length: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.ReadSlice(tt.start, tt.length)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadSlice(%d, %d) error = nil, want error", tt.start, tt.length)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadSlice(%d, %d) error = %v", tt.start, tt.length, err)
			}
			if got != tt.want {
				t.Errorf("ReadSlice(%d, %d) = %q, want %q", tt.start, tt.length, got, tt.want)
			}
		})
	}
}

func TestNewFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	content := "Some INPUT\twith tabs\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	src, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}

	got, err := src.ReadSlice(0, src.Len())
	if err != nil {
		t.Fatalf("ReadSlice() error = %v", err)
	}
	if got != content {
		t.Errorf("file source content = %q, want %q", got, content)
	}
}

func TestNewFileMissing(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "no-such-file.txt"))
	if err == nil {
		t.Fatal("NewFile() error = nil, want error for missing file")
	}
}
