// Package report renders and writes pipeline results: the sanitized text
// with its letter-count table, and an optional YAML run summary.
package report

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jwickham/text-sanitizer/pkg/analytics"
	"github.com/jwickham/text-sanitizer/pkg/pipeline"
	"github.com/jwickham/text-sanitizer/pkg/storage"
)

// Render produces the output artifact: the sanitized text followed by the
// letter-count table. All 26 letters are listed, zero counts included, so
// the artifact shape never depends on the input.
func Render(result *pipeline.Result) []byte {
	var sb strings.Builder
	sb.WriteString(result.Text)
	sb.WriteString("\nCount of alphabet:\n")
	for letter := byte('a'); letter <= 'z'; letter++ {
		fmt.Fprintf(&sb, "%c: %d\n", letter, result.Counts.Get(letter))
	}
	return []byte(sb.String())
}

// Write renders the result and saves it to target.
func Write(target string, result *pipeline.Result) error {
	s := &storage.Storage{}
	if err := s.SaveFile(target, Render(result)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Summary is the YAML run summary written next to the output artifact.
type Summary struct {
	SourceKind       string           `yaml:"source_kind"`
	SourceRef        string           `yaml:"source_ref"`
	InputBytes       int              `yaml:"input_bytes"`
	Workers          int              `yaml:"workers"`
	ChunkSize        int              `yaml:"chunk_size,omitempty"`
	Segments         int              `yaml:"segments"`
	DurationMS       int64            `yaml:"duration_ms"`
	LetterTotal      int64            `yaml:"letter_total"`
	DistinctLetters  int              `yaml:"distinct_letters"`
	TopLetters       []string         `yaml:"top_letters,omitempty"`
	Counts           map[string]int64 `yaml:"counts"`
	DetectedLanguage string           `yaml:"detected_language,omitempty"`
}

// NewSummary assembles a Summary from a finished run.
func NewSummary(result *pipeline.Result, topN int) Summary {
	return Summary{
		Segments:        result.Segments,
		LetterTotal:     result.Counts.Total(),
		DistinctLetters: result.Counts.Distinct(),
		TopLetters:      analytics.TopLetters(result.Counts, topN),
		Counts:          result.Counts.ToMap(),
	}
}

// WriteSummary marshals the summary to YAML and saves it to path.
func WriteSummary(path string, summary Summary) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	s := &storage.Storage{}
	if err := s.SaveFile(path, data); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
