package bitkit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordParallelCount is called after each parallel count.
	// bits is the length of the range, chunks the number of tasks started,
	// err is nil if successful.
	RecordParallelCount(bits, chunks int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordParallelCount(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CountCalls      atomic.Int64
	CountErrors     atomic.Int64
	CountBits       atomic.Int64
	CountChunks     atomic.Int64
	CountTotalNanos atomic.Int64
}

// RecordParallelCount implements MetricsCollector.
func (b *BasicMetricsCollector) RecordParallelCount(bits, chunks int, duration time.Duration, err error) {
	b.CountCalls.Add(1)
	b.CountBits.Add(int64(bits))
	b.CountChunks.Add(int64(chunks))
	b.CountTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CountErrors.Add(1)
	}
}

// MetricsStats is a snapshot of BasicMetricsCollector.
type MetricsStats struct {
	CountCalls    int64
	CountErrors   int64
	CountBits     int64
	CountChunks   int64
	CountAvgNanos int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	calls := b.CountCalls.Load()
	stats := MetricsStats{
		CountCalls:  calls,
		CountErrors: b.CountErrors.Load(),
		CountBits:   b.CountBits.Load(),
		CountChunks: b.CountChunks.Load(),
	}
	if calls > 0 {
		stats.CountAvgNanos = b.CountTotalNanos.Load() / calls
	}
	return stats
}
