package core

import (
	"math"
	"testing"

	"github.com/motifscan/gcplot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSummarize checks mean, population SD and threshold against hand
// computed values.
func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		scores    []float64
		sdFold    float64
		mean      float64
		sd        float64
		threshold float64
	}{
		{
			name:      "two scores one fold",
			scores:    []float64{2.0, -1.0},
			sdFold:    1,
			mean:      0.5,
			sd:        1.5,
			threshold: 2.0,
		},
		{
			name:      "single score",
			scores:    []float64{4.2},
			sdFold:    2,
			mean:      4.2,
			sd:        0,
			threshold: 4.2,
		},
		{
			name:      "identical scores",
			scores:    []float64{3, 3, 3, 3},
			sdFold:    3,
			mean:      3,
			sd:        0,
			threshold: 3,
		},
		{
			name:      "negative z scores",
			scores:    []float64{-2, -4, -6},
			sdFold:    1,
			mean:      -4,
			sd:        math.Sqrt(8.0 / 3.0),
			threshold: -4 + math.Sqrt(8.0/3.0),
		},
		{
			name:      "p values",
			scores:    []float64{0.25, 0.75},
			sdFold:    2,
			mean:      0.5,
			sd:        0.25,
			threshold: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := Summarize(tt.scores, tt.sdFold)
			require.NoError(t, err)
			assert.Equal(t, len(tt.scores), stats.N)
			assert.InDelta(t, tt.mean, stats.Mean, 1e-9)
			assert.InDelta(t, tt.sd, stats.SD, 1e-9)
			assert.InDelta(t, tt.threshold, stats.Threshold, 1e-9)
		})
	}
}

// TestSummarizeMatchesTwoPass cross-checks the SD against an independent
// textbook two-pass variance computation.
func TestSummarizeMatchesTwoPass(t *testing.T) {
	scores := []float64{1.5, -3.25, 7.75, 0.125, 42.0, -19.5, 3.1415}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))
	var variance float64
	for _, s := range scores {
		variance += (s - mean) * (s - mean)
	}
	variance /= float64(len(scores))

	stats, err := Summarize(scores, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(variance), stats.SD, 1e-12)
}

// TestSummarizeThresholdMonotonic checks that a larger fold always yields a
// higher threshold when the spread is nonzero.
func TestSummarizeThresholdMonotonic(t *testing.T) {
	scores := []float64{1, 2, 3, 4, 5}

	prev := math.Inf(-1)
	for _, fold := range []float64{0.5, 1, 1.5, 2, 3} {
		stats, err := Summarize(scores, fold)
		require.NoError(t, err)
		assert.Greater(t, stats.Threshold, prev, "fold %g", fold)
		prev = stats.Threshold
	}
}

// TestSummarizeErrors covers the empty-input and bad-fold policies.
func TestSummarizeErrors(t *testing.T) {
	_, err := Summarize(nil, 1)
	assert.ErrorIs(t, err, schema.ErrNoScores)
	assert.ErrorIs(t, err, schema.ErrValidation)

	_, err = Summarize([]float64{}, 1)
	assert.ErrorIs(t, err, schema.ErrNoScores)

	_, err = Summarize([]float64{1, 2}, 0)
	assert.ErrorIs(t, err, schema.ErrBadSDFold)

	_, err = Summarize([]float64{1, 2}, -1.5)
	assert.ErrorIs(t, err, schema.ErrBadSDFold)
}
