package source

import (
	"fmt"

	"github.com/jwickham/text-sanitizer/pkg/storage"
)

// NewFile reads the file at path into an in-memory source.
func NewFile(path string) (*Bytes, error) {
	s := &storage.Storage{}
	data, err := s.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load input file %s: %w", path, err)
	}
	return NewBytes(string(data)), nil
}
