package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// PostgreSQL error codes relevant to query-layer classification.
const (
	codeUndefinedTable    = "42P01"
	codeUndefinedColumn   = "42703"
	codeUndefinedFunction = "42883"
)

// IsSchemaMismatch reports whether the error indicates that the database
// schema does not match what the query layer expects (missing table, column
// or function). Such failures are fatal and must not surface as an empty
// result set.
func IsSchemaMismatch(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case codeUndefinedTable, codeUndefinedColumn, codeUndefinedFunction:
		return true
	}
	return false
}
