// Package schema has models, constants and errors shared by all parts of gcplot.
package schema

// ScoreRecord carries the per-factor enrichment scores produced by the
// upstream analysis stage. A nil score means the factor was not scored
// for that measure and is excluded from the corresponding plot.
type ScoreRecord struct {
	ID      string   // Factor identifier, unique within one analysis
	ZScore  *float64 // Z-score against the background model
	FisherP *float64 // Fisher exact test p-value
	KSP     *float64 // Kolmogorov-Smirnov test p-value
}

// FactorAttributes holds the sequence-composition metadata for a factor.
type FactorAttributes struct {
	GCContent float64 // Fraction in [0,1]; plotted as a percentage
	Name      string  // Display label used for point annotations
}

// AttributeLookup resolves factor attributes by id. The boolean reports
// whether the id is known to the store.
type AttributeLookup interface {
	Lookup(id string) (FactorAttributes, bool)
}

// SummaryStatistics describes the score distribution of one plot invocation.
// Immutable once computed.
type SummaryStatistics struct {
	N         int     // Number of scores summarized
	Mean      float64 // Arithmetic mean
	SD        float64 // Population standard deviation (divisor n)
	Threshold float64 // Mean + SD * sdFold
}

// RenderRequest is the fully prepared, engine-agnostic payload describing
// one scatter plot. The Above slices are an order-preserving subsequence of
// the All slices, filtered by Score >= ThresholdLine, and always have equal
// lengths among themselves.
type RenderRequest struct {
	GCAll    []float64 // GC percentage per plotted factor
	ScoreAll []float64 // Selected score per plotted factor

	GCAbove    []float64 // GC percentage of factors at or above threshold
	ScoreAbove []float64 // Score of factors at or above threshold
	NameAbove  []string  // Label of factors at or above threshold

	Title      string
	LegendText string

	XMin, XMax    float64
	YMin, YMax    float64
	ThresholdLine float64

	OutputPath string
}
