// Package attrstore resolves factor attributes (display name, GC content)
// by factor id. Attributes come from the upstream pipeline either as a
// tab-delimited metadata file or as a table in the pipeline database.
package attrstore

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/motifscan/gcplot/schema"
)

// attributesTable is the expected table name in database backends.
const attributesTable = "factor_attributes"

// Store is an in-memory snapshot of factor attributes. Lookups after load
// never touch the source again, so one Store serves a whole plot run.
type Store struct {
	attrs map[string]schema.FactorAttributes
}

var _ schema.AttributeLookup = &Store{} // Compile-time check

// Lookup resolves attributes by factor id.
func (s *Store) Lookup(id string) (schema.FactorAttributes, bool) {
	attr, ok := s.attrs[id]
	return attr, ok
}

// Len returns the number of factors known to the store.
func (s *Store) Len() int {
	return len(s.attrs)
}

// LoadTSV reads a three-column metadata file: factor id, display name and
// GC content fraction, tab-delimited, no header.
func LoadTSV(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open attributes %s: %v", schema.ErrIO, path, err)
	}
	defer func() { _ = file.Close() }()

	attrs := make(map[string]schema.FactorAttributes)
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %s line %d: expected 3 fields, got %d", schema.ErrBadRow, path, line, len(fields))
		}
		gc, perr := strconv.ParseFloat(fields[2], 64)
		if perr != nil {
			return nil, fmt.Errorf("%w: %s line %d: bad gc content %q", schema.ErrBadRow, path, line, fields[2])
		}
		attrs[fields[0]] = schema.FactorAttributes{Name: fields[1], GCContent: gc}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read attributes %s: %v", schema.ErrIO, path, err)
	}
	return &Store{attrs: attrs}, nil
}

// LoadDB snapshots the factor_attributes table from the configured backend.
func LoadDB(backend schema.AttrBackend, connStr string) (*Store, error) {
	var driverName string
	switch backend {
	case schema.SQLiteAttrBackend:
		driverName = "sqlite"
	case schema.MySQLAttrBackend:
		driverName = "mysql"
	case schema.PostgreSQLAttrBackend:
		driverName = "pgx"
	default:
		return nil, fmt.Errorf("%w: %q", schema.ErrUnknownBackend, backend)
	}

	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s database: %v", schema.ErrIO, backend, err)
	}
	defer func() { _ = db.Close() }()
	if backend == schema.SQLiteAttrBackend {
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
	}

	return loadRows(db)
}

func loadRows(db *sql.DB) (*Store, error) {
	rows, err := db.Query(fmt.Sprintf("SELECT factor_id, name, gc_content FROM %s", attributesTable))
	if err != nil {
		return nil, fmt.Errorf("%w: query attributes: %v", schema.ErrIO, err)
	}
	defer func() { _ = rows.Close() }()

	attrs := make(map[string]schema.FactorAttributes)
	for rows.Next() {
		var (
			id   string
			name string
			gc   float64
		)
		if err := rows.Scan(&id, &name, &gc); err != nil {
			return nil, fmt.Errorf("%w: scan attributes: %v", schema.ErrIO, err)
		}
		attrs[id] = schema.FactorAttributes{Name: name, GCContent: gc}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read attributes: %v", schema.ErrIO, err)
	}
	return &Store{attrs: attrs}, nil
}
