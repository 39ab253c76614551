package db

import (
	"strings"
	"testing"
	"time"

	"github.com/jwickham/text-sanitizer/pkg/analytics"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func sampleRun() Run {
	counter := &analytics.Counter{}
	counts := counter.Count("hello_world")
	return Run{
		SourceKind:      "file",
		SourceRef:       "/tmp/input.txt",
		TargetPath:      "/tmp/output.txt",
		InputBytes:      11,
		ContentHash:     "deadbeef",
		Workers:         4,
		ChunkSize:       0,
		Segments:        4,
		Duration:        125 * time.Millisecond,
		LetterTotal:     counts.Total(),
		DistinctLetters: counts.Distinct(),
		LetterCounts:    counts,
		Status:          "success",
	}
}

func TestInsertAndGetRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	want := sampleRun()
	runID, err := db.InsertRun(want)
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if runID == 0 {
		t.Fatal("InsertRun() returned 0 run ID")
	}

	got, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() error = %v", err)
	}

	if got.SourceKind != want.SourceKind {
		t.Errorf("run.SourceKind = %q, want %q", got.SourceKind, want.SourceKind)
	}
	if got.SourceRef != want.SourceRef {
		t.Errorf("run.SourceRef = %q, want %q", got.SourceRef, want.SourceRef)
	}
	if got.InputBytes != want.InputBytes {
		t.Errorf("run.InputBytes = %d, want %d", got.InputBytes, want.InputBytes)
	}
	if got.Workers != want.Workers {
		t.Errorf("run.Workers = %d, want %d", got.Workers, want.Workers)
	}
	if got.Duration != want.Duration {
		t.Errorf("run.Duration = %v, want %v", got.Duration, want.Duration)
	}
	if got.LetterTotal != want.LetterTotal {
		t.Errorf("run.LetterTotal = %d, want %d", got.LetterTotal, want.LetterTotal)
	}
	if got.LetterCounts != want.LetterCounts {
		t.Errorf("run.LetterCounts = %v, want %v", got.LetterCounts, want.LetterCounts)
	}
	if got.Status != "success" {
		t.Errorf("run.Status = %q, want %q", got.Status, "success")
	}
}

func TestInsertFailedRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	run := sampleRun()
	run.Status = "failed"
	run.ErrorMessage = "segment 2: source read failed"
	run.LetterCounts = analytics.LetterCounts{}
	run.LetterTotal = 0

	runID, err := db.InsertRun(run)
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	got, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() error = %v", err)
	}
	if got.Status != "failed" {
		t.Errorf("run.Status = %q, want %q", got.Status, "failed")
	}
	if !strings.Contains(got.ErrorMessage, "segment 2") {
		t.Errorf("run.ErrorMessage = %q, want segment reference", got.ErrorMessage)
	}
}

func TestGetRunByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetRunByID(999); err == nil {
		t.Fatal("GetRunByID(999) error = nil, want not-found error")
	}
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 3; i++ {
		if _, err := db.InsertRun(sampleRun()); err != nil {
			t.Fatalf("InsertRun() error = %v", err)
		}
	}

	runs, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns(0) error = %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("ListRuns(0) returned %d runs, want 3", len(runs))
	}

	// Newest first.
	if runs[0].RunID < runs[1].RunID || runs[1].RunID < runs[2].RunID {
		t.Errorf("ListRuns() not ordered newest first: %d, %d, %d",
			runs[0].RunID, runs[1].RunID, runs[2].RunID)
	}

	limited, err := db.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns(2) error = %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("ListRuns(2) returned %d runs, want 2", len(limited))
	}
}
