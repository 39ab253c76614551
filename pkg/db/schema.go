package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs table: one row per pipeline execution
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    source_kind TEXT NOT NULL,            -- file, db, html
    source_ref TEXT NOT NULL,             -- path, query, or URL
    target_path TEXT,
    input_bytes INTEGER NOT NULL,
    content_hash TEXT,
    workers INTEGER NOT NULL,
    chunk_size INTEGER NOT NULL DEFAULT 0,
    segments INTEGER NOT NULL DEFAULT 0,
    duration_ms INTEGER NOT NULL DEFAULT 0,
    letter_total INTEGER NOT NULL DEFAULT 0,
    distinct_letters INTEGER NOT NULL DEFAULT 0,
    letter_counts TEXT,                   -- JSON letter->count map
    detected_language TEXT,
    status TEXT NOT NULL DEFAULT 'success',
    error_message TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
`
