package products

import (
	"context"

	"github.com/google/uuid"
	"github.com/medinathreads/medina-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the product catalog.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountCartReferences(ctx context.Context, productID uuid.UUID) (int64, error)
	PurgeCartReferences(ctx context.Context, productID uuid.UUID) (int64, error)
	ClearTodaysOffers(ctx context.Context) error
	MarkTodaysOffers(ctx context.Context, ids []uuid.UUID) error
}
