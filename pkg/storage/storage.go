// Package storage wraps local-file access for input acquisition and output
// writing.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

type Storage struct{}

// ReadFile loads the entire file at path into memory. The pipeline needs
// random access to a stable byte sequence, so the whole input is
// materialized up front.
func (s *Storage) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// SaveFile writes content to path, creating parent directories and
// replacing any existing file.
func (s *Storage) SaveFile(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

// HasFile reports whether a file exists at path.
func (s *Storage) HasFile(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}
