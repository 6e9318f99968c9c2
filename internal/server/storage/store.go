// Package storage holds the object stores that keep file bytes. A file
// record references its bytes by storage key only; stores know nothing
// about ownership or sharing.
package storage

import (
	"context"
	"io"
)

// ObjectStore stores bytes under opaque keys.
//
// Open returns common.ErrorNotFound for a missing key. Delete of a missing
// key succeeds so a retried delete completes. Failures caused by the
// backend being unreachable or overloaded are wrapped with
// common.ErrTransient.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL for reading key. name is the
	// file name a browser should use when saving it.
	PresignGet(ctx context.Context, key string, name string) (string, error)
}
