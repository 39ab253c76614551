// Package detector guesses the language of the input text. The letter
// statistics only cover the 26 Latin letters, so a non-Latin-script corpus
// is worth a warning before the run; detection is advisory and never
// changes what gets counted.
package detector

import (
	"github.com/pemistahl/lingua-go"
)

// SampleBytes caps how much of the input is fed to the detector. Language
// identification stabilizes long before that, and the input can be huge.
const SampleBytes = 4096

var candidates = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Russian,
	lingua.Arabic,
	lingua.Chinese,
	lingua.Japanese,
	lingua.Greek,
	lingua.Hindi,
}

var latinScript = map[lingua.Language]bool{
	lingua.English:    true,
	lingua.Spanish:    true,
	lingua.French:     true,
	lingua.German:     true,
	lingua.Italian:    true,
	lingua.Portuguese: true,
	lingua.Dutch:      true,
}

// Detection is the outcome of a language guess.
type Detection struct {
	Language    string
	Confidence  float64
	LatinScript bool
}

// Detector wraps a configured lingua language detector.
type Detector struct {
	inner lingua.LanguageDetector
}

// New builds a detector over a fixed set of candidate languages.
func New() *Detector {
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build(),
	}
}

// Detect guesses the language of text from at most SampleBytes of it.
// It returns nil when no candidate language fits.
func (d *Detector) Detect(text string) *Detection {
	sample := text
	if len(sample) > SampleBytes {
		sample = sample[:SampleBytes]
	}

	lang, ok := d.inner.DetectLanguageOf(sample)
	if !ok {
		return nil
	}

	return &Detection{
		Language:    lang.String(),
		Confidence:  d.inner.ComputeLanguageConfidence(sample, lang),
		LatinScript: latinScript[lang],
	}
}
