package core

import (
	"fmt"

	"github.com/motifscan/gcplot/schema"
)

// BuildRenderRequest prepares the scatter payload for one plot invocation.
//
// Records whose selected score is absent are skipped entirely; a record
// whose attributes cannot be resolved aborts the whole call, since plotting
// a partial factor set would silently misrepresent the analysis. The
// "above" slices keep the encounter order of the "all" slices.
func BuildRenderRequest(records []schema.ScoreRecord, attrs schema.AttributeLookup, kind schema.PlotKind, sdFold float64, outputPath string) (*schema.RenderRequest, error) {
	if len(records) == 0 {
		return nil, schema.ErrNoRecords
	}
	if _, ok := schema.ValidPlotKinds[kind]; !ok {
		return nil, fmt.Errorf("%w: %q", schema.ErrUnknownPlotKind, kind)
	}
	if sdFold <= 0 {
		return nil, schema.ErrBadSDFold
	}
	if outputPath == "" {
		return nil, schema.ErrNoOutputPath
	}

	var (
		scores []float64
		gc     []float64
		names  []string
	)
	for i := range records {
		score := kind.Score(&records[i])
		if score == nil {
			continue
		}
		attr, ok := attrs.Lookup(records[i].ID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", schema.ErrUnknownFactor, records[i].ID)
		}
		scores = append(scores, *score)
		gc = append(gc, attr.GCContent*100.0)
		names = append(names, attr.Name)
	}

	stats, err := Summarize(scores, sdFold)
	if err != nil {
		return nil, err
	}

	minScore, maxScore := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < minScore {
			minScore = s
		}
		if s > maxScore {
			maxScore = s
		}
	}

	req := &schema.RenderRequest{
		GCAll:         gc,
		ScoreAll:      scores,
		Title:         kind.Title(),
		LegendText:    fmt.Sprintf("mean + %g * sd", sdFold),
		XMin:          0,
		XMax:          100,
		YMin:          axisFloor(minScore),
		YMax:          axisCeil(maxScore),
		ThresholdLine: stats.Threshold,
		OutputPath:    outputPath,
	}
	for i, s := range scores {
		if s >= stats.Threshold {
			req.GCAbove = append(req.GCAbove, gc[i])
			req.ScoreAbove = append(req.ScoreAbove, s)
			req.NameAbove = append(req.NameAbove, names[i])
		}
	}
	return req, nil
}
