package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jwickham/text-sanitizer/pkg/analytics"
	dbpkg "github.com/jwickham/text-sanitizer/pkg/db"
)

func RunsAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	limit := c.Int("limit")
	runs, err := database.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-8s %-10s %-10s %-10s %-10s %-8s\n",
		"ID", "Created", "Source", "Bytes", "Segments", "Letters", "Duration", "Status")
	fmt.Println(strings.Repeat("-", 96))

	// Print each run
	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-8s %-10d %-10d %-10d %-10s %-8s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.SourceKind,
			r.InputBytes,
			r.Segments,
			r.LetterTotal,
			r.Duration.Round(time.Millisecond).String(),
			r.Status,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'tsan db run <id>' to see details\n")

	return nil
}

// RunAction shows details for a specific run
func RunAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	// Print run details
	fmt.Printf("Run %d\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Source:      %s (%s)\n", run.SourceKind, run.SourceRef)
	fmt.Printf("Target:      %s\n", run.TargetPath)
	fmt.Printf("Input:       %d bytes (sha256 %s)\n", run.InputBytes, shortHash(run.ContentHash))
	fmt.Printf("Workers:     %d", run.Workers)
	if run.ChunkSize > 0 {
		fmt.Printf(" (chunk size %d)", run.ChunkSize)
	}
	fmt.Println()
	fmt.Printf("Segments:    %d\n", run.Segments)
	fmt.Printf("Duration:    %s\n", run.Duration)
	fmt.Printf("Status:      %s\n", run.Status)
	if run.Status == "failed" {
		fmt.Printf("Error:       %s\n", run.ErrorMessage)
		return nil
	}
	if run.DetectedLanguage != "" {
		fmt.Printf("Language:    %s\n", run.DetectedLanguage)
	}

	fmt.Printf("\nLetters: %d total, %d distinct\n", run.LetterTotal, run.DistinctLetters)
	if top := analytics.TopLetters(run.LetterCounts, 10); len(top) > 0 {
		fmt.Printf("Top letters: %s\n", strings.Join(top, ", "))
	}

	return nil
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
