package pipeline

import "fmt"

// Segment is a contiguous byte range of the source text, tagged with a
// stable 0-based index assigned in offset order. Segments produced by
// Partition are non-overlapping, non-empty, and cover the source exactly.
type Segment struct {
	Index  int
	Start  int
	Length int
}

// End returns the exclusive end offset of the segment.
func (s Segment) End() int {
	return s.Start + s.Length
}

// Partition splits [0, total) into an ordered sequence of segments.
//
// When chunkSize > 0 each segment is at most chunkSize bytes. Otherwise the
// range is divided into at most workers near-equal segments; when total is
// smaller than workers, fewer segments are produced rather than empty ones.
// total == 0 yields no segments. Boundaries are a pure function of the
// arguments, so a given input always partitions the same way.
func Partition(total, workers, chunkSize int) ([]Segment, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: negative source length %d", ErrInvalidPartition, total)
	}
	if chunkSize < 0 {
		return nil, fmt.Errorf("%w: negative chunk size %d", ErrInvalidPartition, chunkSize)
	}
	if workers < 1 {
		return nil, fmt.Errorf("%w: worker count %d, need at least 1", ErrInvalidPartition, workers)
	}
	if total == 0 {
		return nil, nil
	}

	if chunkSize > 0 {
		n := (total + chunkSize - 1) / chunkSize
		segments := make([]Segment, 0, n)
		for start := 0; start < total; start += chunkSize {
			length := chunkSize
			if start+length > total {
				length = total - start
			}
			segments = append(segments, Segment{Index: len(segments), Start: start, Length: length})
		}
		return segments, nil
	}

	n := workers
	if total < n {
		n = total
	}

	// The first (total % n) segments carry one extra byte so lengths differ
	// by at most one.
	base := total / n
	rem := total % n
	segments := make([]Segment, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		length := base
		if i < rem {
			length++
		}
		segments = append(segments, Segment{Index: i, Start: start, Length: length})
		start += length
	}
	return segments, nil
}
