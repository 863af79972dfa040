package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/motifscan/gcplot/core"
	"github.com/motifscan/gcplot/internal"
	"github.com/motifscan/gcplot/schema"
	"github.com/motifscan/gcplot/valuetab"
)

// valuesCmd groups value table operations.
var valuesCmd = &cobra.Command{
	Use:   "values",
	Short: "Inspect and convert per-factor value tables",
	Long: `Work with the tab-delimited value tables that checkpoint raw
per-factor observations between analysis stages.

Subcommands:
  check   - Summarize a table per factor
  convert - Rewrite a table into another format

Examples:
  # Per-factor row counts and statistics
  gcplot values check observations.tsv

  # Columnar checkpoint for DuckDB/pandas
  gcplot values convert observations.tsv observations.parquet --to parquet`,
}

// valuesCheckCmd summarizes a value table per factor.
var valuesCheckCmd = &cobra.Command{
	Use:   "check <table>",
	Short: "Summarize a value table per factor.",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfigFile()
	},
	Run: func(_ *cobra.Command, args []string) {
		handle, err := valuetab.Open(args[0], nil, valuetab.ReadMode, schema.TableFormat(viper.GetString("format")))
		if err != nil {
			internal.FatalError("Cannot open value table", err)
		}
		defer func() { _ = handle.Close() }()

		rows, err := handle.ReadAll()
		if err != nil {
			internal.FatalError("Cannot read value table", err)
		}

		values := make(map[string][]float64)
		for _, row := range rows {
			values[row.FactorID] = append(values[row.FactorID], row.Value)
		}
		ids := make([]string, 0, len(values))
		summaries := make(map[string]schema.SummaryStatistics, len(values))
		for id, vs := range values {
			stats, err := core.Summarize(vs, DefaultSDFold)
			if err != nil {
				internal.FatalError("Cannot summarize factor "+id, err)
			}
			ids = append(ids, id)
			summaries[id] = stats
		}
		sort.Strings(ids)

		fmt.Printf("%d rows across %d factors\n\n", len(rows), len(ids))
		if err := internal.PrintFactorSummaries(os.Stdout, ids, summaries, viper.GetInt("precision")); err != nil {
			internal.FatalError("Cannot print summaries", err)
		}
	},
}

// valuesConvertCmd rewrites a table into another format.
var valuesConvertCmd = &cobra.Command{
	Use:   "convert <table> <output>",
	Short: "Rewrite a value table into another format.",
	Long: `Read a value table in the configured --format and rewrite it at
the output path in the --to format, preserving row order.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfigFile()
	},
	Run: func(_ *cobra.Command, args []string) {
		in, err := valuetab.Open(args[0], nil, valuetab.ReadMode, schema.TableFormat(viper.GetString("format")))
		if err != nil {
			internal.FatalError("Cannot open value table", err)
		}
		defer func() { _ = in.Close() }()

		rows, err := in.ReadAll()
		if err != nil {
			internal.FatalError("Cannot read value table", err)
		}

		out, err := valuetab.Open(args[1], nil, valuetab.WriteMode, schema.TableFormat(viper.GetString("to")))
		if err != nil {
			internal.FatalError("Cannot open output table", err)
		}
		if err := out.WriteRows(rows); err != nil {
			_ = out.Close()
			internal.FatalError("Cannot write output table", err)
		}
		if err := out.Close(); err != nil {
			internal.FatalError("Cannot finalize output table", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote %d rows to %s\n", len(rows), args[1])
	},
}
