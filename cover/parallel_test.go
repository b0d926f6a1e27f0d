// Package cover_test: WithParallelDistance, confirming the worker-pool
// dispatch path produces identical query results to the serial path.
package cover_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/covertree/cover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParallelDistance_MatchesSerial builds two identical trees, one with
// WithParallelDistance enabled at a low threshold, and checks KNN agrees.
func TestParallelDistance_MatchesSerial(t *testing.T) {
	serial, err := cover.New(absDist, cover.WithSeed[float64](77))
	require.NoError(t, err)
	parallel, err := cover.New(absDist, cover.WithSeed[float64](77), cover.WithParallelDistance[float64](2))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(321))
	for i := 0; i < 100; i++ {
		p := rng.Float64() * 100
		serial.Insert(p)
		parallel.Insert(p)
	}

	for _, query := range []float64{0, 50, 99} {
		wantRes, err := serial.KNN(5, query)
		require.NoError(t, err)
		gotRes, err := parallel.KNN(5, query)
		require.NoError(t, err)

		want := make([]float64, len(wantRes))
		got := make([]float64, len(gotRes))
		for i := range wantRes {
			want[i] = wantRes[i].Distance
		}
		for i := range gotRes {
			got[i] = gotRes[i].Distance
		}
		sort.Float64s(want)
		sort.Float64s(got)
		assert.InDeltaSlice(t, want, got, 1e-9)
	}
}
