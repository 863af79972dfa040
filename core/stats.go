// Package core holds the summarization, thresholding and render request
// building logic for gcplot.
package core

import (
	"math"

	"github.com/motifscan/gcplot/schema"
)

// Summarize computes the distributional statistics and the significance
// threshold over a set of present scores. The standard deviation is the
// population form (divisor n), matching the upstream analysis convention.
// An empty score set is a validation error rather than a silent zero, since
// a threshold over nothing is meaningless.
func Summarize(scores []float64, sdFold float64) (schema.SummaryStatistics, error) {
	if sdFold <= 0 {
		return schema.SummaryStatistics{}, schema.ErrBadSDFold
	}
	n := len(scores)
	if n == 0 {
		return schema.SummaryStatistics{}, schema.ErrNoScores
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(n)

	var sqDiff float64
	for _, s := range scores {
		d := s - mean
		sqDiff += d * d
	}
	sd := math.Sqrt(sqDiff / float64(n))

	return schema.SummaryStatistics{
		N:         n,
		Mean:      mean,
		SD:        sd,
		Threshold: mean + sd*sdFold,
	}, nil
}
