package products

import (
	"time"

	"github.com/medinathreads/medina-backend/pkg/db/models"
	"github.com/medinathreads/medina-backend/pkg/types"
	"github.com/google/uuid"
)

const placeholderImage = "/placeholder.svg"

// Badge values surfaced on storefront product cards.
const (
	badgeSale    = "Sale"
	badgePopular = "Popular"
)

// ProductDTO is the storefront/admin product payload.
type ProductDTO struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Price         float64       `json:"price"`
	OriginalPrice *float64      `json:"original_price,omitempty"`
	Category      string        `json:"category"`
	Subcategory   string        `json:"subcategory"`
	Sizes         []string      `json:"sizes"`
	Colors        []types.Color `json:"colors"`
	Images        []string      `json:"images"`
	Image         string        `json:"image"`
	Badge         string        `json:"badge"`
	InStock       bool          `json:"in_stock"`
	StockQuantity int           `json:"stock_quantity"`
	IsFeatured    bool          `json:"is_featured"`
	IsTodaysOffer bool          `json:"is_todays_offer"`
	LowStockLeft  *int          `json:"low_stock_left"`
	CreatedAt     time.Time     `json:"created_at"`
}

// NewProductDTO derives the display fields the storefront expects:
// thumbnail falls back to the placeholder, badge prefers the offer flag
// over featured, and in_stock is computed from the stock count.
func NewProductDTO(product *models.Product) *ProductDTO {
	dto := &ProductDTO{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price.InexactFloat64(),
		Category:      product.Category.String(),
		Subcategory:   product.Subcategory,
		Sizes:         append([]string{}, product.Sizes...),
		Colors:        DecodeStoredColors(product.Colors),
		Images:        append([]string{}, product.Images...),
		Image:         placeholderImage,
		InStock:       product.StockQuantity > 0,
		StockQuantity: product.StockQuantity,
		IsFeatured:    product.IsFeatured,
		IsTodaysOffer: product.IsTodaysOffer,
		LowStockLeft:  product.LowStockLeft,
		CreatedAt:     product.CreatedAt,
	}

	if product.OriginalPrice != nil {
		v := product.OriginalPrice.InexactFloat64()
		dto.OriginalPrice = &v
	}
	if len(product.Images) > 0 {
		dto.Image = product.Images[0]
	}

	switch {
	case product.IsTodaysOffer:
		dto.Badge = badgeSale
	case product.IsFeatured:
		dto.Badge = badgePopular
	}

	return dto
}

// DeleteResult reports what a product delete removed.
type DeleteResult struct {
	Deleted          bool  `json:"deleted"`
	RemovedCartItems int64 `json:"removed_cart_items"`
}
