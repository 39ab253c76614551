// Package pipeline partitions a text source into segments, sanitizes and
// counts each segment concurrently, and merges the partial results into one
// deterministic aggregate.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/jwickham/text-sanitizer/pkg/analytics"
	"github.com/jwickham/text-sanitizer/pkg/sanitize"
)

// Source is the read-only view of the input text handed to the pipeline by
// the acquisition layer. The underlying bytes must stay stable for the
// lifetime of a run; the pipeline only reads disjoint slices.
type Source interface {
	// Len returns the total length in bytes.
	Len() int
	// ReadSlice returns the [start, start+length) slice of the text.
	ReadSlice(start, length int) (string, error)
}

// Options configures a pipeline run. The zero value picks one worker per CPU
// with no chunk-size hint and no deadline.
type Options struct {
	// Workers bounds concurrent segment processing. 0 means NumCPU.
	Workers int
	// ChunkSize, when > 0, caps segment size in bytes; segments beyond the
	// worker count queue until a worker frees up.
	ChunkSize int
	// Timeout, when > 0, is the overall deadline for the run.
	Timeout time.Duration
}

// Result is the aggregate of a run: the sanitized text in source order and
// the merged letter counts. It is identical whether produced by one worker
// or many.
type Result struct {
	Text     string
	Counts   analytics.LetterCounts
	Segments int
}

// Job defines a segment for a worker to process.
type Job struct {
	Segment Segment
}

// segmentResult carries one worker's output back to the collector.
type segmentResult struct {
	Index  int
	Text   string
	Counts analytics.LetterCounts
	Err    error
}

// Pipeline wires the stateless sanitizer and counter to the worker pool.
type Pipeline struct {
	sanitizer *sanitize.Sanitizer
	counter   *analytics.Counter
	logger    *slog.Logger
}

// New creates a pipeline. A nil logger disables logging.
func New(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{
		sanitizer: &sanitize.Sanitizer{},
		counter:   &analytics.Counter{},
		logger:    logger,
	}
}

// Run executes the sanitize-and-count pipeline over src.
//
// The source is partitioned, segments are processed by a bounded worker
// pool, and results are merged by segment index, so the output is a pure
// function of (source, partitioning) and never of scheduling. Any segment
// failure aborts the run after in-flight workers drain; no partial result
// is ever returned.
func (p *Pipeline) Run(ctx context.Context, src Source, opts Options) (*Result, error) {
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	segments, err := Partition(src.Len(), workers, opts.ChunkSize)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		p.logger.Info("Empty source, no workers dispatched")
		return &Result{}, nil
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	poolSize := workers
	if len(segments) < poolSize {
		poolSize = len(segments)
	}

	p.logger.Info("Starting concurrent sanitize phase",
		"source_bytes", src.Len(), "segments", len(segments), "workers", poolSize)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(segments))
	results := make(chan segmentResult, len(segments))

	for w := 1; w <= poolSize; w++ {
		wg.Add(1)
		go p.worker(ctx, w, src, &wg, jobs, results)
	}

	// Dispatch stops as soon as the run is cancelled; queued segments are
	// simply never sent.
	go func() {
		defer close(jobs)
		for _, seg := range segments {
			select {
			case <-ctx.Done():
				return
			case jobs <- Job{Segment: seg}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Single collector goroutine: workers never touch shared state, so the
	// merge needs no locks. Completion order is non-deterministic; the map
	// is re-read in segment order below.
	collected := make(map[int]segmentResult, len(segments))
	var firstErr error
	firstErrSegment := -1
	for res := range results {
		if res.Err != nil {
			// Surface the failure with the lowest segment index.
			if firstErr == nil || res.Index < firstErrSegment {
				firstErr = res.Err
				firstErrSegment = res.Index
			}
			cancel()
			continue
		}
		collected[res.Index] = res
	}

	if firstErr != nil {
		p.logger.Error("Pipeline run failed", "segment", firstErrSegment, "error", firstErr)
		return nil, firstErr
	}
	if ctx.Err() != nil && len(collected) < len(segments) {
		p.logger.Error("Pipeline run cancelled", "completed", len(collected), "segments", len(segments), "error", ctx.Err())
		return nil, fmt.Errorf("pipeline stopped after %d/%d segments: %w",
			len(collected), len(segments), ctx.Err())
	}

	return p.merge(segments, collected)
}

// worker processes segments until the jobs channel closes. Each segment is a
// single synchronous transformation with no partial emission: on a read
// failure only the tagged error is reported.
func (p *Pipeline) worker(ctx context.Context, id int, src Source, wg *sync.WaitGroup, jobs <-chan Job, results chan<- segmentResult) {
	defer wg.Done()
	for job := range jobs {
		if ctx.Err() != nil {
			return
		}
		seg := job.Segment
		p.logger.Debug("Worker started segment", "worker_id", id, "segment", seg.Index, "start", seg.Start, "length", seg.Length)

		text, err := src.ReadSlice(seg.Start, seg.Length)
		if err != nil {
			results <- segmentResult{Index: seg.Index, Err: &SourceReadError{Segment: seg.Index, Err: err}}
			continue
		}

		clean := p.sanitizer.Sanitize(text)
		results <- segmentResult{
			Index:  seg.Index,
			Text:   clean,
			Counts: p.counter.Count(clean),
		}
		p.logger.Debug("Worker finished segment", "worker_id", id, "segment", seg.Index)
	}
}

// merge re-sorts collected results by segment index and combines them,
// guaranteeing byte-identical output to sequential processing.
func (p *Pipeline) merge(segments []Segment, collected map[int]segmentResult) (*Result, error) {
	var sb strings.Builder
	partials := make([]analytics.LetterCounts, 0, len(segments))
	for _, seg := range segments {
		res, ok := collected[seg.Index]
		if !ok {
			return nil, fmt.Errorf("%w: segment %d", ErrIncompleteAggregation, seg.Index)
		}
		sb.WriteString(res.Text)
		partials = append(partials, res.Counts)
	}

	return &Result{
		Text:     sb.String(),
		Counts:   analytics.Merge(partials),
		Segments: len(segments),
	}, nil
}
