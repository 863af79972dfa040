package internal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motifscan/gcplot/schema"
)

// TestTruncateName checks ellipsis behavior at the width boundary.
func TestTruncateName(t *testing.T) {
	assert.Equal(t, "TF1", TruncateName("TF1", 12))
	assert.Equal(t, "ABCDEFGHI...", TruncateName("ABCDEFGHIJKLMNOP", 12))
	assert.Equal(t, "ABCDEFGHIJKL", TruncateName("ABCDEFGHIJKL", 12))
}

// TestSignificanceLabel checks the threshold is inclusive.
func TestSignificanceLabel(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	assert.Equal(t, "Significant", SignificanceLabel(2.0, 2.0))
	assert.Equal(t, "Significant", SignificanceLabel(3.0, 2.0))
	assert.Equal(t, "Background", SignificanceLabel(1.99, 2.0))
}

// TestPrintPlotSummary smoke-tests the table output.
func TestPrintPlotSummary(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	req := &schema.RenderRequest{
		Title:         "Z-score vs. TF profile %GC composition",
		LegendText:    "mean + 2 * sd",
		XMin:          0,
		XMax:          100,
		YMin:          -10,
		YMax:          10,
		ThresholdLine: 2.0,
		NameAbove:     []string{"TF1"},
		GCAbove:       []float64{60},
		ScoreAbove:    []float64{2.5},
	}
	stats := schema.SummaryStatistics{N: 4, Mean: 0.5, SD: 1.0, Threshold: 2.0}

	var buf bytes.Buffer
	require.NoError(t, PrintPlotSummary(&buf, stats, req, 2))

	out := buf.String()
	assert.Contains(t, out, "n=4")
	assert.Contains(t, out, "TF1")
	assert.Contains(t, out, "Significant")
	assert.True(t, strings.HasPrefix(out, req.Title))
}
