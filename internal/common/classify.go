package common

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Transient wraps err with ErrTransient unless it is nil or already marked.
func Transient(err error) error {
	if err == nil || errors.Is(err, ErrTransient) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrTransient, err)
}

// Classify marks infrastructure failures (deadline exceeded, network
// timeouts, refused connections) as transient. Domain errors and
// cancellations requested by the caller pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Transient(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return Transient(err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return Transient(err)
	}
	return err
}
