// Package users declares and implements persistence of user identities.
package users

import (
	"context"

	"github.com/Camilo-Usuga/xxi-storage/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// FindByEmail returns every identity whose email matches, oldest first.
	// An empty slice means no match.
	FindByEmail(ctx context.Context, email string) ([]*models.User, error)
}
