package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/medinathreads/medina-backend/pkg/db/models"
	"github.com/medinathreads/medina-backend/pkg/enums"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a cart repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// cartLineRecord is the join row of a cart item and its current product.
type cartLineRecord struct {
	ID            uuid.UUID
	Size          string
	Color         string
	Quantity      int
	ProductID     uuid.UUID
	Name          string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Images        pq.StringArray `gorm:"type:text[]"`
	Category      enums.ProductCategory
	Subcategory   string
	Sizes         pq.StringArray `gorm:"type:text[]"`
	Colors        pq.StringArray `gorm:"type:text[]"`
	StockQuantity int
	Description   string
}

// ListLines returns the session's cart joined to current product rows.
// Lines whose product was deleted after being added drop out of the join
// on purpose; the storefront treats them as gone, not as errors.
func (r *repository) ListLines(ctx context.Context, sessionID string) ([]cartLineRecord, error) {
	var records []cartLineRecord
	err := r.db.WithContext(ctx).
		Table("cart_items ci").
		Select(`ci.id, ci.size, ci.color, ci.quantity,
			p.id AS product_id, p.name, p.price, p.original_price, p.images,
			p.category, p.subcategory, p.sizes, p.colors, p.stock_quantity, p.description`).
		Joins("JOIN products p ON p.id = ci.product_id").
		Where("ci.session_id = ?", sessionID).
		Order("ci.created_at ASC").
		Scan(&records).
		Error
	return records, err
}

func (r *repository) InsertItems(ctx context.Context, items []models.CartItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *repository) Clear(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.CartItem{}).
		Error
}

// DeleteOrphaned removes cart rows whose product no longer exists. The live
// product delete path cannot create these (the FK blocks it), but rows
// written before the constraint existed still linger.
func (r *repository) DeleteOrphaned(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("product_id NOT IN (?)", r.db.Model(&models.Product{}).Select("id")).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

// DeleteOlderThan removes abandoned session carts created before the cutoff.
func (r *repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}
