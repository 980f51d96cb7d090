package bitkit

import (
	"log/slog"
	"runtime"
)

// DefaultChunkWords is the default number of words counted by one task in
// ParallelCount.
const DefaultChunkWords = 4096

type options struct {
	workers          int
	chunkWords       int
	logger           *Logger
	metricsCollector MetricsCollector
	scanRate         int64 // bytes per second, 0 = unlimited
}

// Option configures the parallel range operations.
type Option func(*options)

// WithWorkers limits the number of goroutines counting concurrently.
// Defaults to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithChunkWords sets the number of words per task. Chunks always start at
// word boundaries, so no two tasks ever touch the same word.
//
// Values <= 0 select DefaultChunkWords.
func WithChunkWords(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultChunkWords
		}
		o.chunkWords = n
	}
}

// WithScanRate throttles ParallelCount to roughly bytesPerSec bytes of words
// per second across all workers. Useful for background scans that must not
// starve foreground work of memory bandwidth. Values <= 0 disable the limit.
func WithScanRate(bytesPerSec int64) Option {
	return func(o *options) {
		o.scanRate = max(bytesPerSec, 0)
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bitkit.NewJSONLogger(slog.LevelDebug)
//	n, err := bitkit.ParallelCount(ctx, words, 0, len(words)*64, bitkit.One, bitkit.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workers:          runtime.GOMAXPROCS(0),
		chunkWords:       DefaultChunkWords,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
