package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPlotKindScore checks that each kind extracts its own field.
func TestPlotKindScore(t *testing.T) {
	z, f, k := 1.0, 2.0, 3.0
	record := ScoreRecord{ID: "M00001", ZScore: &z, FisherP: &f, KSP: &k}

	assert.Equal(t, &z, ZScoreKind.Score(&record))
	assert.Equal(t, &f, FisherKind.Score(&record))
	assert.Equal(t, &k, KSKind.Score(&record))

	empty := ScoreRecord{ID: "M00002"}
	assert.Nil(t, ZScoreKind.Score(&empty))
	assert.Nil(t, FisherKind.Score(&empty))
	assert.Nil(t, KSKind.Score(&empty))
}

// TestPlotKindTitle checks the fixed title per kind.
func TestPlotKindTitle(t *testing.T) {
	assert.Equal(t, "Z-score vs. TF profile %GC composition", ZScoreKind.Title())
	assert.Equal(t, "Fisher p-value vs. TF profile %GC composition", FisherKind.Title())
	assert.Equal(t, "KS p-value vs. TF profile %GC composition", KSKind.Title())
}

// TestValidMaps keeps the constant lists and the valid maps in sync.
func TestValidMaps(t *testing.T) {
	for _, kind := range AllPlotKinds {
		_, ok := ValidPlotKinds[kind]
		assert.True(t, ok, "kind %s", kind)
	}
	assert.Len(t, ValidPlotKinds, len(AllPlotKinds))
}

// TestErrorClassification checks that concrete errors map onto exactly one
// category.
func TestErrorClassification(t *testing.T) {
	assert.ErrorIs(t, ErrNoScores, ErrValidation)
	assert.ErrorIs(t, ErrBothTargets, ErrIO)
	assert.ErrorIs(t, ErrBadRow, ErrFormat)
	assert.NotErrorIs(t, ErrBadRow, ErrIO)
	assert.NotErrorIs(t, ErrNoScores, ErrIO)
}
