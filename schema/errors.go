package schema

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by gcplot wraps exactly one of
// these, so callers can classify failures with errors.Is without matching
// message text.
var (
	// ErrValidation covers missing or invalid required arguments, including
	// unresolved attribute lookups and unrecognized kind/format strings.
	ErrValidation = errors.New("validation error")

	// ErrIO covers stream open/write failures and invalid handle modes.
	ErrIO = errors.New("io error")

	// ErrFormat covers malformed serialized rows.
	ErrFormat = errors.New("format error")

	// ErrRender covers diagnostics reported by the rendering engine.
	ErrRender = errors.New("render error")
)

// Validation failures.
var (
	ErrNoRecords       = fmt.Errorf("%w: no score records provided", ErrValidation)
	ErrNoScores        = fmt.Errorf("%w: no scores present for the selected kind", ErrValidation)
	ErrUnknownPlotKind = fmt.Errorf("%w: unknown plot kind", ErrValidation)
	ErrUnknownFormat   = fmt.Errorf("%w: unknown table format", ErrValidation)
	ErrBadSDFold       = fmt.Errorf("%w: sd fold must be positive", ErrValidation)
	ErrNoOutputPath    = fmt.Errorf("%w: output path is required", ErrValidation)
	ErrUnknownFactor   = fmt.Errorf("%w: factor has no attribute entry", ErrValidation)
	ErrUnknownBackend  = fmt.Errorf("%w: unknown attribute backend", ErrValidation)
)

// Value table failures.
var (
	ErrBothTargets = fmt.Errorf("%w: both a path and a stream were supplied", ErrIO)
	ErrNoTarget    = fmt.Errorf("%w: neither a path nor a stream was supplied", ErrIO)
	ErrNotOpen     = fmt.Errorf("%w: handle is not open", ErrIO)
	ErrNotWritable = fmt.Errorf("%w: handle was not opened for writing", ErrIO)
	ErrNotReadable = fmt.Errorf("%w: handle was not opened for reading", ErrIO)
	ErrBadRow      = fmt.Errorf("%w: malformed value table row", ErrFormat)
)
