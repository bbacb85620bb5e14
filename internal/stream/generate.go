package stream

import (
	"context"
	"fmt"

	"github.com/Flyrell/ulidkit/internal/engine"
	"github.com/Flyrell/ulidkit/internal/logging"
	"github.com/rs/zerolog"
)

// DefaultLimit caps a single streaming generation.
const DefaultLimit = 100_000

// GenerateOptions controls Generate.
type GenerateOptions struct {
	BatchSize int
	Limit     int
	// Timestamp pins generation to a base millisecond instead of the clock.
	Timestamp *uint64
	// UniqueTimestamps advances the base timestamp by one per ULID.
	UniqueTimestamps bool
}

// Generate produces count ULIDs in batches. Batches never exceed the
// engine's bulk limit, so the stream limit can be larger than it.
func Generate(ctx context.Context, eng *engine.Engine, count int, opts GenerateOptions) ([]string, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if count < 0 {
		return nil, &engine.InvalidInputError{Message: "count must not be negative"}
	}
	if count > limit {
		return nil, &engine.InvalidInputError{
			Message: fmt.Sprintf("maximum count is %d for streaming generation", limit),
		}
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	batchSize = min(batchSize, eng.BulkLimit())

	var ts uint64
	if opts.Timestamp != nil {
		ts = *opts.Timestamp
	}

	log := logging.Ctx(ctx)
	total := (count + batchSize - 1) / batchSize
	out := make([]string, 0, count)

	for b := 0; b < total; b++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logProgress(log, "Generating", b, total)

		n := min(batchSize, count-b*batchSize)
		if opts.Timestamp == nil {
			ids, err := eng.GenerateBulk(n)
			if err != nil {
				return nil, err
			}
			for _, id := range ids {
				out = append(out, id.String())
			}
			continue
		}

		for i := 0; i < n; i++ {
			id, err := eng.GenerateWithTimestamp(ts)
			if err != nil {
				return nil, err
			}
			out = append(out, id.String())
			if opts.UniqueTimestamps {
				ts++
			}
		}
	}

	return out, nil
}

// logProgress reports roughly every tenth batch of a run longer than ten.
func logProgress(log *zerolog.Logger, verb string, batch, total int) {
	if total <= 10 || batch%max(total/10, 1) != 0 {
		return
	}
	log.Info().
		Int("batch", batch+1).
		Int("total", total).
		Msgf("%s batch %d/%d (%.1f%%)", verb, batch+1, total, float64(batch)/float64(total)*100)
}
