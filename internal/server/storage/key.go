package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewStorageKey returns a fresh key of the form
// users/<owner>/<yyyy>/<mm>/<dd>/<uuid>.
func NewStorageKey(now time.Time, ownerID string) string {
	d := now.UTC()
	return fmt.Sprintf("users/%s/%04d/%02d/%02d/%v", ownerID, d.Year(), int(d.Month()), d.Day(), uuid.New())
}
