// Package sqlite registers the lexsort comparison modes as SQLite collations
// and functions, for both the pure Go (modernc.org/sqlite) and the CGO
// (mattn/go-sqlite3) driver.
//
// Build modes:
//   - Default: uses pure Go modernc.org/sqlite
//   - CGO mode (CGO_ENABLED=1 -tags cgo_sqlite): uses mattn/go-sqlite3
//
// Every mode is available as a collation named after [lexsort.Mode.CollationName]:
//
//	SELECT title FROM tracks ORDER BY title COLLATE LEXSORT_NATURAL_LEXICAL
//
// Two scalar functions are registered as well:
//
//	lexsort_translit(text)            -- lowercase ASCII transliteration
//	lexsort_compare(mode, left, right) -- -1, 0, or 1
//
// Use Open() instead of sql.Open() so that the collations are registered
// before the first connection is made.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/scalecode-solutions/lexsort"
)

// Names of the scalar SQL functions.
const (
	TranslitFunction = "lexsort_translit"
	CompareFunction  = "lexsort_compare"
)

// ErrRegister is returned when the collations or functions could not be
// registered with the driver.
var ErrRegister = errors.New("sqlite: register lexsort collations")

var (
	registerOnce sync.Once
	registerErr  error
)

// Register registers the collations and functions with the driver. It is
// called by [Open] and only needs to be called directly when the database is
// opened with [sql.Open] and [DriverName]. Calling it again has no effect.
func Register() error {
	registerOnce.Do(func() {
		if err := registerDriver(); err != nil {
			registerErr = fmt.Errorf("%w: %w", ErrRegister, err)
		}
	})
	return registerErr
}

// DriverName returns the SQL driver name to use with [sql.Open].
func DriverName() string {
	return driverName
}

// DriverType returns a string identifying the underlying implementation.
// Returns "cgo" for mattn/go-sqlite3, "purego" for modernc.org/sqlite.
func DriverType() string {
	return driverType
}

// IsCGO returns true if the CGO implementation is being used.
func IsCGO() bool {
	return driverType == "cgo"
}

// Open registers the collations and opens a SQLite database using the
// appropriate driver.
func Open(dataSourceName string) (*sql.DB, error) {
	if err := Register(); err != nil {
		return nil, err
	}
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", dataSourceName, err)
	}
	return db, nil
}

// MustOpen opens a SQLite database and panics on error.
func MustOpen(dataSourceName string) *sql.DB {
	db, err := Open(dataSourceName)
	if err != nil {
		panic(err)
	}
	return db
}

// Collations returns the names of all registered collations.
func Collations() []string {
	modes := lexsort.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.CollationName()
	}
	return names
}

// Info contains information about the SQLite driver configuration.
type Info struct {
	DriverName string   `json:"driver_name"`
	DriverType string   `json:"driver_type"`
	IsCGO      bool     `json:"is_cgo"`
	Package    string   `json:"package"`
	Collations []string `json:"collations"`
}

// GetInfo returns information about the current SQLite configuration.
func GetInfo() Info {
	return Info{
		DriverName: driverName,
		DriverType: driverType,
		IsCGO:      IsCGO(),
		Package:    driverPackage,
		Collations: Collations(),
	}
}

// translit implements the lexsort_translit function.
func translit(s string) string {
	return lexsort.Transliterate(s, lexsort.KeepNonAlnum)
}

// compare implements the lexsort_compare function.
func compare(mode, left, right string) (int64, error) {
	m, err := lexsort.ParseMode(mode)
	if err != nil {
		return 0, err
	}
	return int64(m.Func()(left, right)), nil
}
