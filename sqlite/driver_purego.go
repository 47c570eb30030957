//go:build !cgo_sqlite

package sqlite

import (
	"database/sql/driver"
	"fmt"

	msqlite "modernc.org/sqlite"

	"github.com/scalecode-solutions/lexsort"
)

const (
	driverName    = "sqlite"
	driverType    = "purego"
	driverPackage = "modernc.org/sqlite"
)

// registerDriver registers the collations and functions on the modernc
// driver. They are available to all connections opened afterwards.
func registerDriver() error {
	for _, m := range lexsort.Modes() {
		if err := msqlite.RegisterCollationUtf8(m.CollationName(), m.Func()); err != nil {
			return fmt.Errorf("collation %s: %w", m.CollationName(), err)
		}
	}

	err := msqlite.RegisterDeterministicScalarFunction(TranslitFunction, 1,
		func(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			s, ok := textArg(args[0])
			if !ok {
				return nil, nil
			}
			return translit(s), nil
		})
	if err != nil {
		return fmt.Errorf("function %s: %w", TranslitFunction, err)
	}

	err = msqlite.RegisterDeterministicScalarFunction(CompareFunction, 3,
		func(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			var s [3]string
			for i, arg := range args {
				v, ok := textArg(arg)
				if !ok {
					return nil, nil
				}
				s[i] = v
			}
			return compare(s[0], s[1], s[2])
		})
	if err != nil {
		return fmt.Errorf("function %s: %w", CompareFunction, err)
	}
	return nil
}

// textArg converts a function argument to a string. NULL yields false.
func textArg(v driver.Value) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return fmt.Sprint(v), true
	}
}
