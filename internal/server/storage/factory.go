package storage

import (
	"context"
	"fmt"

	sc "github.com/Camilo-Usuga/xxi-storage/internal/server/config"
)

// NewFromConfig returns the backend named by cfg.StorageBackend.
func NewFromConfig(ctx context.Context, cfg *sc.Config) (ObjectStore, error) {
	switch cfg.StorageBackend {
	case sc.StorageBackendS3:
		s, err := NewS3Store(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case sc.StorageBackendMemory:
		return NewMemoryStore(cfg.PresignExpiry), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
