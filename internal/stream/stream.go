// Package stream applies ULID operations to large inputs in batches.
package stream

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Flyrell/ulidkit/internal/engine"
	"github.com/Flyrell/ulidkit/internal/logging"
	"github.com/Flyrell/ulidkit/internal/value"
	"github.com/gammazero/workerpool"
)

// DefaultBatchSize is used when Options.BatchSize is not positive.
const DefaultBatchSize = 1000

// minParallelChunk is the smallest batch worth fanning out.
const minParallelChunk = 10

// minParallelWorkers is the pool size used when Parallel is set with fewer
// workers.
const minParallelWorkers = 2

// Operation is applied to every item.
type Operation string

const (
	OpValidate         Operation = "validate"
	OpParse            Operation = "parse"
	OpExtractTimestamp Operation = "extract-timestamp"
	OpTransform        Operation = "transform"
)

// ParseOperation validates an operation name.
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(s); op {
	case OpValidate, OpParse, OpExtractTimestamp, OpTransform:
		return op, nil
	}
	return "", fmt.Errorf("unknown operation '%s'. Valid operations: validate, parse, extract-timestamp, transform", s)
}

// Format shapes parse and transform results.
type Format string

const (
	FormatFull          Format = "full"
	FormatCompact       Format = "compact"
	FormatTimestampOnly Format = "timestamp-only"
)

// ParseFormat validates a format name; empty means full.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatFull, nil
	case FormatFull, FormatCompact, FormatTimestampOnly:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format '%s'. Valid formats: full, compact, timestamp-only", s)
}

// Options controls Process.
type Options struct {
	Operation       Operation
	Format          Format
	BatchSize       int
	ContinueOnError bool
	Parallel        bool
	Workers         int
}

// ItemError reports the item that stopped processing.
type ItemError struct {
	Index int
	Input any
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// idFields are checked in order when an item is a record.
var idFields = []string{"ulid", "id", "identifier", "uuid"}

var errNoIDField = errors.New("no ULID field found: record must contain a ULID in 'ulid', 'id', 'identifier', or 'uuid' field")

// Process applies opts.Operation to every item and returns the results in
// input order. Items are strings or map[string]any records. A failing item
// aborts the run unless ContinueOnError is set, in which case its result is
// replaced by {error, input}.
func Process(ctx context.Context, items []any, opts Options) ([]any, error) {
	if _, err := ParseOperation(string(opts.Operation)); err != nil {
		return nil, err
	}
	if opts.Format == "" {
		opts.Format = FormatFull
	}
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	log := logging.Ctx(ctx)

	var pool *workerpool.WorkerPool
	if opts.Parallel {
		if opts.Workers < minParallelWorkers {
			log.Debug().
				Int("requested", opts.Workers).
				Int("workers", minParallelWorkers).
				Msg("raising worker count for parallel processing")
			opts.Workers = minParallelWorkers
		}
		pool = workerpool.New(opts.Workers)
		defer pool.StopWait()
	}

	total := (len(items) + batchSize - 1) / batchSize
	results := make([]any, 0, len(items))

	for b := 0; b < total; b++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logProgress(log, "Processing", b, total)

		start := b * batchSize
		end := min(start+batchSize, len(items))

		var (
			out []any
			err error
		)
		if pool != nil && end-start > minParallelChunk {
			out, err = processParallel(ctx, pool, items[start:end], start, opts)
		} else {
			out, err = processChunk(ctx, items[start:end], start, opts)
		}
		if err != nil {
			return nil, err
		}
		results = append(results, out...)
	}

	return results, nil
}

// processParallel splits a batch across the pool and reassembles the
// chunk results by index.
func processParallel(ctx context.Context, pool *workerpool.WorkerPool, batch []any, offset int, opts Options) ([]any, error) {
	chunkSize := (len(batch) + opts.Workers - 1) / opts.Workers
	chunks := (len(batch) + chunkSize - 1) / chunkSize

	outs := make([][]any, chunks)
	errs := make([]error, chunks)
	var wg sync.WaitGroup

	for c := 0; c < chunks; c++ {
		c := c // per-iteration copy; the module targets go 1.21 loop semantics
		start := c * chunkSize
		end := min(start+chunkSize, len(batch))
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			outs[c], errs[c] = processChunk(ctx, batch[start:end], offset+start, opts)
		})
	}
	wg.Wait()

	results := make([]any, 0, len(batch))
	for c := range outs {
		if errs[c] != nil {
			return nil, errs[c]
		}
		results = append(results, outs[c]...)
	}
	return results, nil
}

func processChunk(ctx context.Context, chunk []any, offset int, opts Options) ([]any, error) {
	out := make([]any, 0, len(chunk))
	for i, item := range chunk {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := processItem(item, opts)
		if err != nil {
			if !opts.ContinueOnError {
				return nil, &ItemError{Index: offset + i, Input: item, Err: err}
			}
			res = value.New("error", err.Error(), "input", item)
		}
		out = append(out, res)
	}
	return out, nil
}

func processItem(item any, opts Options) (any, error) {
	id, err := extractID(item)
	if err != nil {
		return nil, err
	}

	switch opts.Operation {
	case OpValidate:
		return engine.Validate(id), nil

	case OpParse:
		c, err := engine.Parse(id)
		if err != nil {
			return nil, err
		}
		switch opts.Format {
		case FormatCompact:
			return c.Compact(), nil
		case FormatTimestampOnly:
			return c.TimestampMs, nil
		}
		return c.Record(), nil

	case OpExtractTimestamp:
		return engine.ExtractTimestamp(id)

	case OpTransform:
		if !engine.Validate(id) {
			return nil, fmt.Errorf("'%s' is not a valid ULID", id)
		}
		if opts.Format == FormatCompact {
			return value.New("ulid", id), nil
		}
		return id, nil
	}

	return nil, fmt.Errorf("unknown operation '%s'", opts.Operation)
}

func extractID(item any) (string, error) {
	switch v := item.(type) {
	case string:
		return v, nil
	case value.Record:
		for _, f := range idFields {
			if raw, ok := v.Get(f); ok {
				if s, ok := raw.(string); ok {
					return s, nil
				}
			}
		}
		return "", errNoIDField
	case map[string]any:
		for _, f := range idFields {
			if s, ok := v[f].(string); ok {
				return s, nil
			}
		}
		return "", errNoIDField
	}
	return "", fmt.Errorf("invalid value type: expected string or record containing ULID, got %T", item)
}
