package bitkit

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/bitkit/word"
)

// ParallelCount counts the bits in the flat range [first, last) of words
// equal to value, splitting the range into word-aligned chunks counted by
// concurrent goroutines.
//
// The result equals Count(IteratorAt(words, first), IteratorAt(words, last), value).
// Words must not be mutated while the count is running. Cancelling ctx stops
// scheduling new chunks and returns the context error.
func ParallelCount[W word.Word](ctx context.Context, words []W, first, last int, value Value, optFns ...Option) (int, error) {
	opts := applyOptions(optFns)
	d := int(word.Digits[W]())
	logger := opts.logger.WithWordBits(uint(d))
	start := time.Now()

	n := len(words) * d
	if first < 0 || last < first || last > n {
		err := &ErrInvalidRange{First: first, Last: last, Len: n}
		logger.LogParallelCount(ctx, last-first, 0, 0, err)
		opts.metricsCollector.RecordParallelCount(last-first, 0, time.Since(start), err)
		return 0, err
	}
	if opts.workers <= 0 {
		err := errors.Wrapf(ErrInvalidWorkers, "got %d", opts.workers)
		logger.LogParallelCount(ctx, last-first, 0, 0, err)
		opts.metricsCollector.RecordParallelCount(last-first, 0, time.Since(start), err)
		return 0, err
	}

	chunkBits := opts.chunkWords * d
	chunkBytes := opts.chunkWords * d / 8

	var limiter *rate.Limiter
	if opts.scanRate > 0 {
		// Burst must cover one chunk or WaitN can never succeed.
		limiter = rate.NewLimiter(rate.Limit(opts.scanRate), max(int(opts.scanRate), chunkBytes))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers)

	var total atomic.Int64
	chunks := 0
	for lo := first; lo < last; {
		if err := gctx.Err(); err != nil {
			break
		}
		// Chunk ends are aligned to chunkBits so every word belongs to one task.
		hi := min((lo/chunkBits+1)*chunkBits, last)
		chunkLo := lo
		g.Go(func() error {
			if limiter != nil {
				if err := limiter.WaitN(gctx, chunkBytes); err != nil {
					return err
				}
			} else if err := gctx.Err(); err != nil {
				return err
			}
			c := Count(IteratorAt(words, chunkLo), IteratorAt(words, hi), value)
			total.Add(int64(c))
			return nil
		})
		chunks++
		lo = hi
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	result := 0
	if err == nil {
		result = int(total.Load())
	}

	logger.LogParallelCount(ctx, last-first, chunks, result, err)
	opts.metricsCollector.RecordParallelCount(last-first, chunks, time.Since(start), err)
	if err != nil {
		return 0, errors.Wrap(err, "parallel count")
	}
	return result, nil
}
