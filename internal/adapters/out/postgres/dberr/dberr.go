// Package dberr classifies driver errors shared by the gorm repositories.
// Postgres reports unique violations as SQLSTATE 23505 with the index name;
// sqlite (used by tests) reports them in the message as "table.column".
package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// UniqueViolation reports whether err is a unique constraint violation and
// returns the violated constraint or column description. Postgres details
// carry the offending values, so only the constraint name is returned.
func UniqueViolation(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != uniqueViolation {
			return "", false
		}
		return pgErr.ConstraintName, true
	}

	const sqliteMarker = "UNIQUE constraint failed: "
	msg := err.Error()
	if i := strings.Index(msg, sqliteMarker); i >= 0 {
		return msg[i+len(sqliteMarker):], true
	}
	return "", false
}

// Column pairs a fragment of an index or column name with the request field
// it guards.
type Column struct {
	Fragment string
	Field    string
}

// ViolatedColumn maps a unique violation onto the field of the first column
// whose fragment appears in the constraint description. The second result is
// false when err is not a unique violation; the field is empty when no column
// matched.
func ViolatedColumn(err error, columns []Column) (string, bool) {
	constraint, ok := UniqueViolation(err)
	if !ok {
		return "", false
	}
	for _, col := range columns {
		if strings.Contains(constraint, col.Fragment) {
			return col.Field, true
		}
	}
	return "", true
}
