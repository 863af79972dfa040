package internal

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"

	"github.com/motifscan/gcplot/schema"
)

var (
	SignificantColor = color.New(color.FgRed, color.Bold) // factors at or above threshold
	BackgroundColor  = color.New(color.FgCyan)            // everything below threshold
)

// nameWidth computes the factor column width from the terminal width,
// reserving space for the numeric columns, label column and table borders.
func nameWidth() int {
	w := TermWidth(0) - 44
	if w < 12 {
		w = 12
	}
	if w > 40 {
		w = 40
	}
	return w
}

// SignificanceLabel returns a colored label for console output.
func SignificanceLabel(score, threshold float64) string {
	if score >= threshold {
		return SignificantColor.Sprint("Significant")
	}
	return BackgroundColor.Sprint("Background")
}

// TermWidth returns the terminal width, or a conservative default when it
// cannot be detected (pipes, CI).
func TermWidth(override int) int {
	if override > 0 {
		return override
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// TruncateName truncates a factor name to a maximum width with an ellipsis
// suffix.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// PrintPlotSummary writes a human-readable table of the plot invocation:
// the distribution statistics, the axis window and each labeled factor.
func PrintPlotSummary(w io.Writer, stats schema.SummaryStatistics, req *schema.RenderRequest, precision int) error {
	fmtFloat := func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}

	fmt.Fprintf(w, "%s\n", req.Title)
	fmt.Fprintf(w, "n=%d mean=%s sd=%s threshold=%s (%s)\n",
		stats.N, fmtFloat(stats.Mean), fmtFloat(stats.SD), fmtFloat(stats.Threshold), req.LegendText)
	fmt.Fprintf(w, "axes: x [%g, %g], y [%g, %g]\n\n", req.XMin, req.XMax, req.YMin, req.YMax)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Factor", "%GC", "Score", "Label"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, name := range req.NameAbove {
		data = append(data, []string{
			TruncateName(name, nameWidth()),
			fmtFloat(req.GCAbove[i]),
			fmtFloat(req.ScoreAbove[i]),
			SignificanceLabel(req.ScoreAbove[i], req.ThresholdLine),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// PrintFactorSummaries writes one row per factor of a value table check.
func PrintFactorSummaries(w io.Writer, ids []string, summaries map[string]schema.SummaryStatistics, precision int) error {
	fmtFloat := func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Factor", "Rows", "Mean", "SD"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, id := range ids {
		s := summaries[id]
		data = append(data, []string{
			TruncateName(id, nameWidth()),
			strconv.Itoa(s.N),
			fmtFloat(s.Mean),
			fmtFloat(s.SD),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
