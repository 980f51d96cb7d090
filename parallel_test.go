package bitkit

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitkit/testutil"
)

func TestParallelCount(t *testing.T) {
	rng := testutil.NewRNG(2024)
	words := testutil.RandomWords[uint64](rng, 1000)
	ctx := context.Background()

	tests := []struct {
		name        string
		first, last int
		opts        []Option
	}{
		{"full default", 0, 64000, nil},
		{"small chunks", 3, 63997, []Option{WithChunkWords(7), WithWorkers(3)}},
		{"single chunk", 100, 200, []Option{WithChunkWords(1 << 20)}},
		{"one word chunks", 65, 6400, []Option{WithChunkWords(1), WithWorkers(1)}},
		{"empty", 500, 500, []Option{WithChunkWords(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := IteratorAt(words, tt.first), IteratorAt(words, tt.last)
			for _, v := range []Value{Zero, One} {
				got, err := ParallelCount(ctx, words, tt.first, tt.last, v, tt.opts...)
				require.NoError(t, err)
				assert.Equal(t, Count(first, last, v), got)
			}
		})
	}
}

func TestParallelCountInvalidRange(t *testing.T) {
	words := make([]uint8, 4)
	ctx := context.Background()

	for _, r := range [][2]int{{-1, 4}, {5, 4}, {0, 33}} {
		_, err := ParallelCount(ctx, words, r[0], r[1], One)
		require.Error(t, err)

		var rangeErr *ErrInvalidRange
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, 32, rangeErr.Len)
		assert.Equal(t, r[0], rangeErr.First)
	}
}

func TestParallelCountInvalidWorkers(t *testing.T) {
	words := make([]uint8, 4)

	_, err := ParallelCount(context.Background(), words, 0, 32, One, WithWorkers(0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidWorkers))
}

func TestParallelCountCanceled(t *testing.T) {
	words := make([]uint32, 64)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParallelCount(ctx, words, 0, 64*32, One, WithChunkWords(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestParallelCountScanRate(t *testing.T) {
	words := make([]uint64, 64)
	for i := range words {
		words[i] = 0x0F
	}

	got, err := ParallelCount(context.Background(), words, 0, 64*64, One, WithScanRate(1<<30), WithChunkWords(8))
	require.NoError(t, err)
	assert.Equal(t, 64*4, got)

	// 8 bytes per second with one-word chunks cannot finish before the deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = ParallelCount(ctx, words, 0, 64*64, One, WithScanRate(8), WithChunkWords(1), WithWorkers(2))
	require.Error(t, err)
}

func TestParallelCountObservability(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mc := &BasicMetricsCollector{}
	words := []uint16{0xFFFF, 0x00FF, 0x0001}

	got, err := ParallelCount(context.Background(), words, 0, 48, One,
		WithLogger(logger), WithMetricsCollector(mc), WithChunkWords(1))
	require.NoError(t, err)
	assert.Equal(t, 25, got)

	assert.Contains(t, buf.String(), "parallel count completed")
	assert.Contains(t, buf.String(), `"word_bits":16`)

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.CountCalls)
	assert.Equal(t, int64(0), stats.CountErrors)
	assert.Equal(t, int64(48), stats.CountBits)
	assert.Equal(t, int64(3), stats.CountChunks)

	_, err = ParallelCount(context.Background(), words, 0, 49, One, WithLogger(logger), WithMetricsCollector(mc))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "parallel count failed")
	assert.Equal(t, int64(1), mc.GetStats().CountErrors)
}

func TestOptionsDefaults(t *testing.T) {
	o := applyOptions([]Option{nil, WithChunkWords(-3), WithLogger(nil), WithMetricsCollector(nil)})

	assert.Positive(t, o.workers)
	assert.Equal(t, DefaultChunkWords, o.chunkWords)
	assert.NotNil(t, o.logger)
	assert.Equal(t, NoopMetricsCollector{}, o.metricsCollector)
}
