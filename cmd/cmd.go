// Package cmd defines the command-line interface for gcplot.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/motifscan/gcplot/internal"
	"github.com/motifscan/gcplot/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(valuesCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the values subcommands to the parent values command
	valuesCmd.AddCommand(valuesCheckCmd)
	valuesCmd.AddCommand(valuesConvertCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("format", string(schema.TSVFormat), "Value table format: tsv or parquet")
	rootCmd.PersistentFlags().Int("precision", DefaultPrecision, "Decimal precision for numeric columns")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		internal.FatalError("Error binding root flags", err)
	}

	// Bind all flags of plotCmd to Viper
	plotCmd.Flags().String("kind", string(schema.ZScoreKind), "Score kind: zscore or fisher or ks")
	plotCmd.Flags().Float64("sd-fold", DefaultSDFold, "SD multiplier for the significance threshold")
	plotCmd.Flags().String("plot-output", "", "Path of the PNG artifact to write")
	plotCmd.Flags().String("attrs", "", "Path to the factor attributes file (tsv backend)")
	plotCmd.Flags().String("attr-backend", string(schema.TSVAttrBackend), "Attribute backend: tsv or sqlite or mysql or postgresql")
	plotCmd.Flags().String("attr-db-connect", "", "Database connection string for the attribute backend")
	if err := viper.BindPFlags(plotCmd.Flags()); err != nil {
		internal.FatalError("Error binding plot flags", err)
	}

	// Bind all flags of valuesConvertCmd to Viper
	valuesConvertCmd.Flags().String("to", string(schema.ParquetFormat), "Output format: tsv or parquet")
	if err := viper.BindPFlags(valuesConvertCmd.Flags()); err != nil {
		internal.FatalError("Error binding values convert flags", err)
	}
}
