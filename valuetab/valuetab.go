// Package valuetab reads and writes per-factor value tables.
//
// The canonical serialization is a headerless tab-delimited text layout,
// one observation per line:
//
//	M00001\t0.873
//
// Rows are never aggregated; a factor repeats once per observation. A
// parquet layout is available for columnar checkpoints consumed by
// analytics tools, behind the same handle API.
package valuetab

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/motifscan/gcplot/schema"
)

// Mode represents how a handle accesses its stream.
type Mode string

// All handle modes supported.
const (
	ReadMode   Mode = "read"
	WriteMode  Mode = "write"
	AppendMode Mode = "append"
)

// Row is a single (factor, value) observation.
type Row struct {
	FactorID string  `parquet:"factor_id,snappy"`
	Value    float64 `parquet:"value,snappy"`
}

// Handle owns one stream for the duration of its open lifetime. It is not
// safe for concurrent use. The stream is closed on Close only when the
// handle opened it from a path; externally supplied streams stay open.
type Handle struct {
	format schema.TableFormat
	mode   Mode

	file   *os.File      // set when opened from a path
	stream io.ReadWriter // set when an external stream was supplied
	owned  bool          // decided at construction, never inferred later
	closed bool

	br   *bufio.Reader // tsv reads
	line int           // current line number, for row diagnostics

	pw      *parquet.GenericWriter[Row] // parquet writes
	prows   []Row                       // parquet reads, decoded up front
	ploaded bool
	pnext   int
}

// Open prepares a handle on exactly one target: a file path or an
// already-open stream. Supplying both or neither is an error, as is an
// unspecified or unrecognized format or mode. Parquet tables cannot be
// appended to, since the format closes with a footer.
func Open(path string, stream io.ReadWriter, mode Mode, format schema.TableFormat) (*Handle, error) {
	if path != "" && stream != nil {
		return nil, schema.ErrBothTargets
	}
	if path == "" && stream == nil {
		return nil, schema.ErrNoTarget
	}
	if format == "" {
		return nil, fmt.Errorf("%w: format is unspecified", schema.ErrUnknownFormat)
	}
	if _, ok := schema.ValidTableFormats[format]; !ok {
		return nil, fmt.Errorf("%w: %q", schema.ErrUnknownFormat, format)
	}
	switch mode {
	case ReadMode, WriteMode, AppendMode:
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", schema.ErrIO, mode)
	}
	if format == schema.ParquetFormat && mode == AppendMode {
		return nil, fmt.Errorf("%w: parquet tables cannot be appended to", schema.ErrIO)
	}

	h := &Handle{format: format, mode: mode, stream: stream}
	if path != "" {
		var flags int
		switch mode {
		case ReadMode:
			flags = os.O_RDONLY
		case WriteMode:
			flags = os.O_CREATE | os.O_TRUNC | os.O_WRONLY
		case AppendMode:
			flags = os.O_CREATE | os.O_APPEND | os.O_WRONLY
		}
		file, err := os.OpenFile(path, flags, 0o644)
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %v", schema.ErrIO, path, err)
		}
		h.file = file
		h.owned = true
	}
	return h, nil
}

// writer returns the underlying write target.
func (h *Handle) writer() io.Writer {
	if h.file != nil {
		return h.file
	}
	return h.stream
}

// reader returns the underlying read target.
func (h *Handle) reader() io.Reader {
	if h.file != nil {
		return h.file
	}
	return h.stream
}

// WriteRows appends one line (or parquet row group) per row, in input
// order. There is no transactionality: a failed write may leave a partial
// table behind, and the caller detects that through the returned error.
func (h *Handle) WriteRows(rows []Row) error {
	if h.closed {
		return schema.ErrNotOpen
	}
	if h.mode == ReadMode {
		return schema.ErrNotWritable
	}

	switch h.format {
	case schema.TSVFormat:
		for _, row := range rows {
			line := row.FactorID + "\t" + strconv.FormatFloat(row.Value, 'g', -1, 64) + "\n"
			if _, err := io.WriteString(h.writer(), line); err != nil {
				return fmt.Errorf("%w: write row: %v", schema.ErrIO, err)
			}
		}
	case schema.ParquetFormat:
		if h.pw == nil {
			h.pw = parquet.NewGenericWriter[Row](h.writer())
		}
		if _, err := h.pw.Write(rows); err != nil {
			return fmt.Errorf("%w: write parquet rows: %v", schema.ErrIO, err)
		}
	default:
		return fmt.Errorf("%w: %q", schema.ErrUnknownFormat, h.format)
	}
	return nil
}

// ReadRow returns the next observation, or io.EOF at end of table. The
// sequence is single-pass and non-restartable. A malformed tsv line yields
// a row-scoped error wrapping schema.ErrBadRow; the reader stays usable, so
// callers choose between aborting and continuing past bad rows.
func (h *Handle) ReadRow() (Row, error) {
	if h.closed {
		return Row{}, schema.ErrNotOpen
	}
	if h.mode != ReadMode {
		return Row{}, schema.ErrNotReadable
	}

	switch h.format {
	case schema.TSVFormat:
		return h.readTSVRow()
	case schema.ParquetFormat:
		return h.readParquetRow()
	default:
		return Row{}, fmt.Errorf("%w: %q", schema.ErrUnknownFormat, h.format)
	}
}

// ReadAll drains the table, stopping at the first malformed row or stream
// failure.
func (h *Handle) ReadAll() ([]Row, error) {
	var rows []Row
	for {
		row, err := h.ReadRow()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
}

func (h *Handle) readTSVRow() (Row, error) {
	if h.br == nil {
		h.br = bufio.NewReader(h.reader())
	}
	line, err := h.br.ReadString('\n')
	if err != nil && err != io.EOF {
		return Row{}, fmt.Errorf("%w: read row: %v", schema.ErrIO, err)
	}
	if line == "" && err == io.EOF {
		return Row{}, io.EOF
	}
	h.line++

	trimmed := strings.TrimSuffix(line, "\n")
	id, value, found := strings.Cut(trimmed, "\t")
	if !found {
		return Row{}, fmt.Errorf("%w: line %d: missing tab separator", schema.ErrBadRow, h.line)
	}
	v, perr := strconv.ParseFloat(value, 64)
	if perr != nil {
		return Row{}, fmt.Errorf("%w: line %d: bad value %q", schema.ErrBadRow, h.line, value)
	}
	return Row{FactorID: id, Value: v}, nil
}

func (h *Handle) readParquetRow() (Row, error) {
	if !h.ploaded {
		var (
			rows []Row
			err  error
		)
		if h.file != nil {
			info, serr := h.file.Stat()
			if serr != nil {
				return Row{}, fmt.Errorf("%w: stat parquet table: %v", schema.ErrIO, serr)
			}
			rows, err = parquet.Read[Row](h.file, info.Size())
		} else {
			data, rerr := io.ReadAll(h.stream)
			if rerr != nil {
				return Row{}, fmt.Errorf("%w: read parquet table: %v", schema.ErrIO, rerr)
			}
			rows, err = parquet.Read[Row](bytes.NewReader(data), int64(len(data)))
		}
		if err != nil {
			return Row{}, fmt.Errorf("%w: decode parquet table: %v", schema.ErrFormat, err)
		}
		h.prows = rows
		h.ploaded = true
	}
	if h.pnext >= len(h.prows) {
		return Row{}, io.EOF
	}
	row := h.prows[h.pnext]
	h.pnext++
	return row, nil
}

// Close releases the handle. It is idempotent, and it closes the underlying
// stream only when the handle owns it. A pending parquet writer is always
// finalized first so the footer lands even on external streams.
func (h *Handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true

	if h.pw != nil {
		if err := h.pw.Close(); err != nil {
			if h.owned {
				_ = h.file.Close()
			}
			return fmt.Errorf("%w: finalize parquet table: %v", schema.ErrIO, err)
		}
	}
	if h.owned {
		if err := h.file.Close(); err != nil {
			return fmt.Errorf("%w: close table: %v", schema.ErrIO, err)
		}
	}
	return nil
}
