package schema

// Custom string types for type safety.
type (
	// PlotKind selects which score field a plot summarizes.
	PlotKind string

	// TableFormat represents the serialization format of a value table.
	TableFormat string

	// AttrBackend represents the storage backend for factor attributes.
	AttrBackend string
)

// All plot kinds supported.
const (
	ZScoreKind PlotKind = "zscore" // default
	FisherKind PlotKind = "fisher"
	KSKind     PlotKind = "ks"
)

// All value table formats supported.
const (
	TSVFormat     TableFormat = "tsv" // default
	ParquetFormat TableFormat = "parquet"
)

// All attribute backends supported.
const (
	TSVAttrBackend        AttrBackend = "tsv" // default
	SQLiteAttrBackend     AttrBackend = "sqlite"
	MySQLAttrBackend      AttrBackend = "mysql"
	PostgreSQLAttrBackend AttrBackend = "postgresql"
)

// AllPlotKinds returns a list of all supported plot kinds.
var AllPlotKinds = []PlotKind{ZScoreKind, FisherKind, KSKind}

// ValidPlotKinds lists all valid plot kinds.
var ValidPlotKinds = map[PlotKind]struct{}{
	ZScoreKind: {},
	FisherKind: {},
	KSKind:     {},
}

// ValidTableFormats lists all valid value table formats.
var ValidTableFormats = map[TableFormat]struct{}{
	TSVFormat:     {},
	ParquetFormat: {},
}

// ValidAttrBackends lists all valid attribute backends.
var ValidAttrBackends = map[AttrBackend]struct{}{
	TSVAttrBackend:        {},
	SQLiteAttrBackend:     {},
	MySQLAttrBackend:      {},
	PostgreSQLAttrBackend: {},
}

// Title returns the fixed plot title for a kind.
func (k PlotKind) Title() string {
	switch k {
	case FisherKind:
		return "Fisher p-value vs. TF profile %GC composition"
	case KSKind:
		return "KS p-value vs. TF profile %GC composition"
	default: // ZScoreKind
		return "Z-score vs. TF profile %GC composition"
	}
}

// Score extracts the score field selected by the kind. A nil return means
// the factor was not scored for this measure.
func (k PlotKind) Score(r *ScoreRecord) *float64 {
	switch k {
	case FisherKind:
		return r.FisherP
	case KSKind:
		return r.KSP
	default: // ZScoreKind
		return r.ZScore
	}
}
