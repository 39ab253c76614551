package run

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jwickham/text-sanitizer/internal/common"
	"github.com/jwickham/text-sanitizer/models"
	"github.com/jwickham/text-sanitizer/pkg/analytics"
	"github.com/jwickham/text-sanitizer/pkg/db"
	"github.com/jwickham/text-sanitizer/pkg/detector"
	"github.com/jwickham/text-sanitizer/pkg/pipeline"
	"github.com/jwickham/text-sanitizer/pkg/report"
	"github.com/jwickham/text-sanitizer/pkg/source"
)

func RunAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config, err := buildConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	var timeout time.Duration
	if config.Timeout != "" {
		timeout, err = time.ParseDuration(config.Timeout)
		if err != nil {
			logger.Error("invalid timeout duration", "error", err)
			os.Exit(2)
		}
	}

	sourceRef, err := sourceRefFor(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  tsan run --input corpus.txt`)
		fmt.Fprintln(os.Stderr, `  tsan run --source db --source-db notes.db --query "SELECT body FROM notes"`)
		fmt.Fprintln(os.Stderr, `  tsan run --source html --input https://example.com/article`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: tsan run --help")
		os.Exit(1)
	}

	// Open database for run history
	database, err := db.Open(config.HistoryDB)
	if err != nil {
		logger.Error("failed to open history database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	logger.Info("Acquiring source", "source", config.Source, "ref", sourceRef)
	src, err := buildSource(config)
	if err != nil {
		logger.Error("failed to acquire source", "source", config.Source, "ref", sourceRef, "error", err)
		os.Exit(2)
	}

	run := db.Run{
		SourceKind:  config.Source,
		SourceRef:   sourceRef,
		TargetPath:  config.Target,
		InputBytes:  int64(src.Len()),
		ContentHash: common.ContentHash([]byte(src.Text())),
		Workers:     config.Workers,
		ChunkSize:   config.ChunkSize,
	}

	// Optional language check before the run. Advisory only: the letter
	// statistics cover the 26 Latin letters regardless.
	if config.DetectLanguage && src.Len() > 0 {
		if detection := detector.New().Detect(src.Text()); detection != nil {
			run.DetectedLanguage = detection.Language
			logger.Info("Detected input language",
				"language", detection.Language, "confidence", detection.Confidence)
			if !detection.LatinScript {
				logger.Warn("Input does not appear to be Latin-script; letter counts only cover a-z",
					"language", detection.Language)
			}
		}
	}

	result, runErr := pipeline.New(logger).Run(c.Context, src, pipeline.Options{
		Workers:   config.Workers,
		ChunkSize: config.ChunkSize,
		Timeout:   timeout,
	})
	run.Duration = time.Since(startTime)

	if runErr != nil {
		run.Status = "failed"
		run.ErrorMessage = runErr.Error()
		if _, insErr := database.InsertRun(run); insErr != nil {
			logger.Warn("Failed to record run", "error", insErr)
		}
		logger.Error("run failed", "error", runErr)
		os.Exit(2)
	}

	if err := report.Write(config.Target, result); err != nil {
		logger.Error("failed to write output", "target", config.Target, "error", err)
		os.Exit(2)
	}

	if strings.EqualFold(config.Format, "yaml") {
		summary := report.NewSummary(result, 10)
		summary.SourceKind = config.Source
		summary.SourceRef = sourceRef
		summary.InputBytes = src.Len()
		summary.Workers = config.Workers
		summary.ChunkSize = config.ChunkSize
		summary.DurationMS = run.Duration.Milliseconds()
		summary.DetectedLanguage = run.DetectedLanguage
		summaryPath := config.Target + ".summary.yaml"
		if err := report.WriteSummary(summaryPath, summary); err != nil {
			logger.Warn("Failed to write summary", "path", summaryPath, "error", err)
		}
	}

	run.Status = "success"
	run.Segments = result.Segments
	run.LetterTotal = result.Counts.Total()
	run.DistinctLetters = result.Counts.Distinct()
	run.LetterCounts = result.Counts
	runID, err := database.InsertRun(run)
	if err != nil {
		logger.Warn("Failed to record run", "error", err)
	}

	fmt.Printf("Sanitized %d bytes in %d segments (%.2fs)\nOutput: %s\n",
		src.Len(), result.Segments, run.Duration.Seconds(), config.Target)
	fmt.Printf("Letters: %d total, %d distinct\n", run.LetterTotal, run.DistinctLetters)
	if top := analytics.TopLetters(result.Counts, 5); len(top) > 0 {
		fmt.Printf("Top letters: %s\n", strings.Join(top, ", "))
	}
	if runID != 0 {
		fmt.Printf("\nTip: Use 'tsan db run %d' to see this run later\n", runID)
	}

	return nil
}

// buildConfig merges the optional YAML config file with CLI flag overrides.
// Flags win whenever the user sets them.
func buildConfig(c *cli.Context) (*models.Config, error) {
	config := models.DefaultConfig()
	if c.IsSet("config") {
		var err error
		config, err = models.LoadConfig(c.String("config"))
		if err != nil {
			return nil, err
		}
	}

	if c.IsSet("source") {
		config.Source = c.String("source")
	}
	if c.IsSet("input") {
		config.Input = c.String("input")
	}
	if c.IsSet("query") {
		config.Query = c.String("query")
	}
	if c.IsSet("source-db") {
		config.SourceDB = c.String("source-db")
	}
	if c.IsSet("target") {
		config.Target = c.String("target")
	}
	if c.IsSet("workers") {
		config.Workers = c.Int("workers")
	}
	if c.IsSet("chunk-size") {
		config.ChunkSize = c.Int("chunk-size")
	}
	if c.IsSet("timeout") {
		config.Timeout = c.String("timeout")
	}
	if c.IsSet("detect-language") {
		config.DetectLanguage = c.Bool("detect-language")
	}
	if c.IsSet("format") {
		config.Format = c.String("format")
	}
	if c.IsSet("history-db") {
		config.HistoryDB = c.String("history-db")
	}
	return config, nil
}

// sourceRefFor validates the source configuration and returns the reference
// recorded in run history.
func sourceRefFor(config *models.Config) (string, error) {
	switch config.Source {
	case "file", "html":
		if config.Input == "" {
			return "", fmt.Errorf("no input provided for %s source", config.Source)
		}
		return config.Input, nil
	case "db":
		if config.Query == "" {
			return "", fmt.Errorf("no query provided for db source")
		}
		if config.SourceDB == "" {
			return "", fmt.Errorf("no source database provided for db source")
		}
		return config.SourceDB + ": " + config.Query, nil
	default:
		return "", fmt.Errorf("unknown source kind: %s (use: file, db, or html)", config.Source)
	}
}

func buildSource(config *models.Config) (*source.Bytes, error) {
	switch config.Source {
	case "file":
		return source.NewFile(config.Input)
	case "db":
		return source.NewQuery(config.SourceDB, config.Query)
	case "html":
		return source.NewHTML(config.Input)
	default:
		return nil, fmt.Errorf("unknown source kind: %s", config.Source)
	}
}
