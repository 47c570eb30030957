//go:build cgo_sqlite

// CGO SQLite driver using mattn/go-sqlite3.
// This is used when the cgo_sqlite build tag is set.
//
// Build with: go build -tags cgo_sqlite
// Requires: CGO_ENABLED=1
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/scalecode-solutions/lexsort"
)

const (
	driverName    = "sqlite3_lexsort"
	driverType    = "cgo"
	driverPackage = "github.com/mattn/go-sqlite3"
)

// registerDriver registers a dedicated driver whose connect hook installs the
// collations and functions on every new connection.
func registerDriver() error {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			for _, m := range lexsort.Modes() {
				if err := conn.RegisterCollation(m.CollationName(), m.Func()); err != nil {
					return fmt.Errorf("collation %s: %w", m.CollationName(), err)
				}
			}
			if err := conn.RegisterFunc(TranslitFunction, translit, true); err != nil {
				return fmt.Errorf("function %s: %w", TranslitFunction, err)
			}
			if err := conn.RegisterFunc(CompareFunction, compare, true); err != nil {
				return fmt.Errorf("function %s: %w", CompareFunction, err)
			}
			return nil
		},
	})
	return nil
}
