package detector

import (
	"strings"
	"testing"
)

func TestDetectEnglish(t *testing.T) {
	d := New()

	detection := d.Detect("The quick brown fox jumps over the lazy dog. " +
		"It was the best of times, it was the worst of times.")
	if detection == nil {
		t.Fatal("Detect() = nil, want a detection for English text")
	}
	if detection.Language != "English" {
		t.Errorf("detection.Language = %q, want %q", detection.Language, "English")
	}
	if !detection.LatinScript {
		t.Error("detection.LatinScript = false, want true for English")
	}
	if detection.Confidence <= 0 {
		t.Errorf("detection.Confidence = %f, want > 0", detection.Confidence)
	}
}

func TestDetectNonLatinScript(t *testing.T) {
	d := New()

	detection := d.Detect("Волк слабее льва и тигра, но в цирке волк не выступает.")
	if detection == nil {
		t.Fatal("Detect() = nil, want a detection for Cyrillic text")
	}
	if detection.LatinScript {
		t.Errorf("detection.LatinScript = true for %q, want false", detection.Language)
	}
}

func TestDetectSamplesLongInput(t *testing.T) {
	d := New()

	// Well past SampleBytes; only the leading sample should be inspected.
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 500)
	if len(text) <= SampleBytes {
		t.Fatalf("fixture too short: %d bytes", len(text))
	}

	detection := d.Detect(text)
	if detection == nil {
		t.Fatal("Detect() = nil, want a detection for long English text")
	}
	if detection.Language != "English" {
		t.Errorf("detection.Language = %q, want %q", detection.Language, "English")
	}
}

func TestDetectEmptyInput(t *testing.T) {
	if detection := New().Detect(""); detection != nil {
		t.Errorf("Detect(\"\") = %+v, want nil", detection)
	}
}
