package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidPartition rejects a worker/chunk configuration before any work
// is dispatched.
var ErrInvalidPartition = errors.New("invalid partition configuration")

// ErrIncompleteAggregation reports a segment missing at merge time. It is an
// internal invariant violation and always fails the run.
var ErrIncompleteAggregation = errors.New("aggregation is missing a segment result")

// SourceReadError reports that a segment's slice of the source could not be
// read. The whole run fails; no partial result is returned.
type SourceReadError struct {
	Segment int
	Err     error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("segment %d: source read failed: %v", e.Segment, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}
