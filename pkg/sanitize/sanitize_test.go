package sanitize

import "testing"

func TestSanitize(t *testing.T) {
	s := &Sanitizer{}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "mixed case and tab",
			input: "Hello\tWorld",
			want:  "hello_world",
		},
		{
			name:  "already clean",
			input: "hello_world",
			want:  "hello_world",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "only non-letters",
			input: "123\t\t456",
			want:  "123__456",
		},
		{
			name:  "punctuation passes through",
			input: "A-B.C!",
			want:  "a-b.c!",
		},
		{
			name:  "newlines preserved",
			input: "Line1\nLINE2\n",
			want:  "line1\nline2\n",
		},
		{
			name:  "non-ascii passes through",
			input: "Café NAÏVE",
			want:  "café naÏve",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Sanitize(tt.input)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if len(got) != len(tt.input) {
				t.Errorf("Sanitize(%q) changed length: %d -> %d", tt.input, len(tt.input), len(got))
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	s := &Sanitizer{}

	inputs := []string{
		"Hello\tWorld",
		"ALL CAPS TEXT",
		"already lowercase",
		"\t\t\t",
		"",
	}

	for _, input := range inputs {
		once := s.Sanitize(input)
		twice := s.Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestSanitizeDeterministic(t *testing.T) {
	s := &Sanitizer{}

	input := "Some\tMixed INPUT with\ttabs"
	first := s.Sanitize(input)
	for i := 0; i < 10; i++ {
		if got := s.Sanitize(input); got != first {
			t.Fatalf("Sanitize(%q) not deterministic: %q != %q", input, got, first)
		}
	}
}
