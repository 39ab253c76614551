package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jwickham/text-sanitizer/pkg/analytics"
)

// Run is one recorded pipeline execution.
type Run struct {
	RunID            int64
	CreatedAt        time.Time
	SourceKind       string
	SourceRef        string
	TargetPath       string
	InputBytes       int64
	ContentHash      string
	Workers          int
	ChunkSize        int
	Segments         int
	Duration         time.Duration
	LetterTotal      int64
	DistinctLetters  int
	LetterCounts     analytics.LetterCounts
	DetectedLanguage string
	Status           string
	ErrorMessage     string
}

// InsertRun records a completed or failed pipeline run and returns its ID.
func (db *DB) InsertRun(run Run) (int64, error) {
	countsJSON, err := json.Marshal(run.LetterCounts.ToMap())
	if err != nil {
		return 0, fmt.Errorf("failed to marshal letter counts: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO runs (source_kind, source_ref, target_path, input_bytes, content_hash,
			workers, chunk_size, segments, duration_ms, letter_total, distinct_letters,
			letter_counts, detected_language, status, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.SourceKind, run.SourceRef, run.TargetPath, run.InputBytes, run.ContentHash,
		run.Workers, run.ChunkSize, run.Segments, run.Duration.Milliseconds(),
		run.LetterTotal, run.DistinctLetters, string(countsJSON),
		run.DetectedLanguage, run.Status, run.ErrorMessage)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// GetRunByID returns a single recorded run.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	row := db.QueryRow(`
		SELECT run_id, created_at, source_kind, source_ref, COALESCE(target_path, ''),
			input_bytes, COALESCE(content_hash, ''), workers, chunk_size, segments,
			duration_ms, letter_total, distinct_letters, COALESCE(letter_counts, ''),
			COALESCE(detected_language, ''), status, COALESCE(error_message, '')
		FROM runs WHERE run_id = ?
	`, runID)

	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run %d not found", runID)
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means all.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, created_at, source_kind, source_ref, COALESCE(target_path, ''),
			input_bytes, COALESCE(content_hash, ''), workers, chunk_size, segments,
			duration_ms, letter_total, distinct_letters, COALESCE(letter_counts, ''),
			COALESCE(detected_language, ''), status, COALESCE(error_message, '')
		FROM runs ORDER BY run_id DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var run Run
	var createdAt string
	var durationMS int64
	var countsJSON string

	err := s.Scan(&run.RunID, &createdAt, &run.SourceKind, &run.SourceRef, &run.TargetPath,
		&run.InputBytes, &run.ContentHash, &run.Workers, &run.ChunkSize, &run.Segments,
		&durationMS, &run.LetterTotal, &run.DistinctLetters, &countsJSON,
		&run.DetectedLanguage, &run.Status, &run.ErrorMessage)
	if err != nil {
		return nil, err
	}

	if t, perr := time.Parse("2006-01-02 15:04:05", createdAt); perr == nil {
		run.CreatedAt = t
	}
	run.Duration = time.Duration(durationMS) * time.Millisecond

	if countsJSON != "" {
		var m map[string]int64
		if uerr := json.Unmarshal([]byte(countsJSON), &m); uerr == nil {
			run.LetterCounts = analytics.FromMap(m)
		}
	}
	return &run, nil
}
