package parallel

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForRunsEveryIndex(t *testing.T) {
	n := 500
	seen := make([]int32, n)
	err := For(n, func(i int) error {
		atomic.AddInt32(&seen[i], 1)
		return nil
	})
	require.NoError(t, err)
	for i, v := range seen {
		require.EqualValues(t, 1, v, "index %d should run exactly once", i)
	}
}

func TestForPropagatesFirstError(t *testing.T) {
	sentinel := errors.New("boom")
	err := For(10, func(i int) error {
		if i == 5 {
			return sentinel
		}
		return nil
	})
	require.ErrorIs(t, err, sentinel)
}

func TestForZeroItemsIsNoop(t *testing.T) {
	called := false
	err := For(0, func(i int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	require.False(t, called)
}

func TestChunksCoverRangeExactlyOnce(t *testing.T) {
	for _, tc := range []struct{ n, parts int }{
		{100, 4}, {10, 3}, {1, 1}, {7, 16}, {0, 4},
	} {
		chunks := Chunks(tc.n, tc.parts)
		covered := make([]bool, tc.n)
		for _, c := range chunks {
			for i := c[0]; i < c[1]; i++ {
				require.False(t, covered[i], "n=%d parts=%d: index %d covered twice", tc.n, tc.parts, i)
				covered[i] = true
			}
		}
		for i, c := range covered {
			require.True(t, c, "n=%d parts=%d: index %d never covered", tc.n, tc.parts, i)
		}
	}
}

func TestChunksNeverExceedsPartCount(t *testing.T) {
	chunks := Chunks(100, 8)
	require.LessOrEqual(t, len(chunks), 8)
}
