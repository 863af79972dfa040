package scorefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/motifscan/gcplot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempScores(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scores.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoad parses present, absent and commented entries.
func TestLoad(t *testing.T) {
	path := writeTempScores(t, "# id\tz\tfisher\tks\nM00001\t2.5\t0.01\tNA\nM00002\tNA\t\t0.2\n")

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "M00001", records[0].ID)
	require.NotNil(t, records[0].ZScore)
	assert.InDelta(t, 2.5, *records[0].ZScore, 1e-9)
	require.NotNil(t, records[0].FisherP)
	assert.InDelta(t, 0.01, *records[0].FisherP, 1e-9)
	assert.Nil(t, records[0].KSP)

	assert.Nil(t, records[1].ZScore)
	assert.Nil(t, records[1].FisherP)
	require.NotNil(t, records[1].KSP)
	assert.InDelta(t, 0.2, *records[1].KSP, 1e-9)
}

// TestLoadErrors covers missing files and malformed lines.
func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.tsv"))
	assert.ErrorIs(t, err, schema.ErrIO)

	_, err = Load(writeTempScores(t, "M00001\t2.5\n"))
	assert.ErrorIs(t, err, schema.ErrBadRow)

	_, err = Load(writeTempScores(t, "M00001\thigh\t0.01\t0.2\n"))
	assert.ErrorIs(t, err, schema.ErrBadRow)
}
