package cart

import (
	"context"
	"time"

	"github.com/medinathreads/medina-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for session carts.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListLines(ctx context.Context, sessionID string) ([]cartLineRecord, error)
	InsertItems(ctx context.Context, items []models.CartItem) error
	Clear(ctx context.Context, sessionID string) error
	DeleteOrphaned(ctx context.Context) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
