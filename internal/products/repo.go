package products

import (
	"context"

	"github.com/google/uuid"
	"github.com/medinathreads/medina-backend/pkg/db/models"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a product repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// List returns the full catalog newest-first.
func (r *repository) List(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).
		Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Update overwrites every mutable column of the row.
func (r *repository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes the row. The cart_items foreign key is non-cascading, so
// this surfaces a constraint violation when cart rows still reference the
// product.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}).Error
}

func (r *repository) CountCartReferences(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("product_id = ?", productID).
		Count(&count).
		Error
	return count, err
}

// PurgeCartReferences removes every cart row that points at the product and
// reports how many were removed.
func (r *repository) PurgeCartReferences(ctx context.Context, productID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *repository) ClearTodaysOffers(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("is_todays_offer = ?", true).
		Update("is_todays_offer", false).
		Error
}

func (r *repository) MarkTodaysOffers(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id IN ?", ids).
		Update("is_todays_offer", true).
		Error
}
