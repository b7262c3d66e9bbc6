package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/medinathreads/medina-backend/pkg/enums"
)

// Product represents a catalog row. The colors column is text[] for
// historical reasons: elements may be bare color names, JSON-encoded
// {name,hex} objects, or double-encoded JSON strings depending on which
// revision wrote them. The products repository normalizes on read and
// writes only the JSON object form.
type Product struct {
	ID            uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string                `gorm:"column:name;not null"`
	Description   string                `gorm:"column:description"`
	Price         decimal.Decimal       `gorm:"column:price;type:numeric(10,2);not null"`
	OriginalPrice *decimal.Decimal      `gorm:"column:original_price;type:numeric(10,2)"`
	Category      enums.ProductCategory `gorm:"column:category;not null"`
	Subcategory   string                `gorm:"column:subcategory"`
	Sizes         pq.StringArray        `gorm:"column:sizes;type:text[]"`
	Colors        pq.StringArray        `gorm:"column:colors;type:text[]"`
	Images        pq.StringArray        `gorm:"column:images;type:text[]"`
	StockQuantity int                   `gorm:"column:stock_quantity;not null;default:0"`
	IsFeatured    bool                  `gorm:"column:is_featured;not null;default:false"`
	IsTodaysOffer bool                  `gorm:"column:is_todays_offer;not null;default:false"`
	LowStockLeft  *int                  `gorm:"column:low_stock_left"`
	CreatedAt     time.Time             `gorm:"column:created_at;autoCreateTime"`
}

func (Product) TableName() string {
	return "products"
}
