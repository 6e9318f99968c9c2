package dbx

import (
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/Camilo-Usuga/xxi-storage/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidText         = "22P02"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique_violation.
func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign_key_violation.
func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation
}

// IsInvalidText reports whether PostgreSQL rejected a value that does not
// parse as the column type, such as "abc" for a uuid column.
func IsInvalidText(err error) bool {
	return pgCode(err) == pgInvalidText
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// Classify marks connection-level database failures as common.ErrTransient.
// Constraint violations and sql.ErrNoRows are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return common.Transient(err)
	}
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return common.Transient(err)
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return common.Transient(err)
	}
	return common.Classify(err)
}
