// Package common defines shared constants and sentinel errors used across
// the server, the transports and the CLI client. Callers should use
// errors.Is / errors.As to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Access-control errors.
	ErrorNotOwner = errors.New("requester is not the file owner")

	// Service-level errors (generic/internal flow control).
	ErrorInternal        = errors.New("internal error")
	ErrorUnauthorized    = errors.New("unauthorized")
	ErrorInvalidArgument = errors.New("invalid argument")

	// ErrTransient marks failures of an external capability (database,
	// object storage, network) that the caller may retry as a whole.
	ErrTransient = errors.New("service temporarily unavailable")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// PartialDeleteError reports a delete that removed the stored bytes but not
// the metadata record. The record still references StorageKey and must be
// reconciled, typically by retrying the delete.
type PartialDeleteError struct {
	FileID     string
	StorageKey string
	Err        error
}

func (e *PartialDeleteError) Error() string {
	return fmt.Sprintf("partial delete of file %s: bytes at %q removed, record kept: %v", e.FileID, e.StorageKey, e.Err)
}

func (e *PartialDeleteError) Unwrap() error {
	return e.Err
}

// IsPartialDelete reports whether err carries a *PartialDeleteError.
func IsPartialDelete(err error) bool {
	var pde *PartialDeleteError
	return errors.As(err, &pde)
}
