package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/medinathreads/medina-backend/pkg/db/models"
	"github.com/medinathreads/medina-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository defines persistence operations for orders.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (int64, error)
	DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) (bool, error)
}
