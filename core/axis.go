package core

import "math"

// Axis bounds snap to "nice" values so the threshold line and labels stay
// inside the frame: small magnitudes round to the next multiple of 10,
// large ones to the next multiple of 100. The bound is always strictly
// beyond the extreme score, so a score sitting exactly on a multiple still
// gets headroom.

// axisCeil returns the upper Y bound for the given maximum score.
func axisCeil(maxScore float64) float64 {
	step := 10.0
	if maxScore > 100 {
		step = 100.0
	}
	return (math.Floor(maxScore/step) + 1) * step
}

// axisFloor returns the lower Y bound for the given minimum score.
func axisFloor(minScore float64) float64 {
	step := 10.0
	if minScore < -100 {
		step = 100.0
	}
	return (math.Ceil(minScore/step) - 1) * step
}
