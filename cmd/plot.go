package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/motifscan/gcplot/core"
	"github.com/motifscan/gcplot/internal"
	"github.com/motifscan/gcplot/internal/attrstore"
	"github.com/motifscan/gcplot/internal/scorefile"
	"github.com/motifscan/gcplot/render"
	"github.com/motifscan/gcplot/schema"
)

// loadAttributes builds the attribute lookup from the configured backend.
func loadAttributes() (*attrstore.Store, error) {
	backend := schema.AttrBackend(viper.GetString("attr-backend"))
	if backend == schema.TSVAttrBackend {
		path := viper.GetString("attrs")
		if path == "" {
			return nil, fmt.Errorf("%w: --attrs is required with the tsv attribute backend", schema.ErrValidation)
		}
		return attrstore.LoadTSV(path)
	}
	return attrstore.LoadDB(backend, viper.GetString("attr-db-connect"))
}

// plotCmd builds and renders one scatter plot.
var plotCmd = &cobra.Command{
	Use:   "plot <scores-file>",
	Short: "Render a score vs. %GC scatter plot with threshold labels.",
	Long: `Summarize one score kind across all factors, compute the
mean + sdFold*sd significance threshold, and render a 1024x1024 PNG
scatter plot. Factors at or above the threshold are labeled by name.

Examples:
  # Z-score plot with the default threshold (mean + 2*sd)
  gcplot plot results.tsv --attrs factors.tsv --plot-output zscore.png

  # Fisher p-value plot with a tighter threshold
  gcplot plot results.tsv --attrs factors.tsv --kind fisher --sd-fold 3 --plot-output fisher.png

  # Factor metadata from the pipeline database
  gcplot plot results.tsv --attr-backend sqlite --attr-db-connect pipeline.db --plot-output zscore.png`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfigFile()
	},
	Run: func(_ *cobra.Command, args []string) {
		records, err := scorefile.Load(args[0])
		if err != nil {
			internal.FatalError("Cannot load score records", err)
		}
		attrs, err := loadAttributes()
		if err != nil {
			internal.FatalError("Cannot load factor attributes", err)
		}

		kind := schema.PlotKind(viper.GetString("kind"))
		sdFold := viper.GetFloat64("sd-fold")
		outputPath := viper.GetString("plot-output")

		req, err := core.BuildRenderRequest(records, attrs, kind, sdFold, outputPath)
		if err != nil {
			internal.FatalError("Cannot build render request", err)
		}
		stats, err := core.Summarize(req.ScoreAll, sdFold)
		if err != nil {
			internal.FatalError("Cannot summarize scores", err)
		}

		if err := internal.PrintPlotSummary(os.Stdout, stats, req, viper.GetInt("precision")); err != nil {
			internal.FatalError("Cannot print summary", err)
		}

		// A render diagnostic is surfaced but does not abort the run; the
		// summary above is still the caller's main artifact.
		if err := render.NewChartEngine().Render(req); err != nil {
			internal.Warning(fmt.Sprintf("plot not written: %v", err))
			return
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote plot to %s\n", outputPath)
	},
}
