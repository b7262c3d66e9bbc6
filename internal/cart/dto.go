package cart

import (
	"github.com/google/uuid"
	"github.com/medinathreads/medina-backend/pkg/types"
)

// CartProductDTO is the denormalized product snapshot attached to each
// cart line in responses. It reflects the product's current state, not the
// state at add time.
type CartProductDTO struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Price         float64       `json:"price"`
	OriginalPrice *float64      `json:"original_price,omitempty"`
	Image         string        `json:"image"`
	Category      string        `json:"category"`
	Subcategory   string        `json:"subcategory"`
	Sizes         []string      `json:"sizes"`
	Colors        []types.Color `json:"colors"`
	InStock       bool          `json:"in_stock"`
	Description   string        `json:"description"`
}

// CartLineDTO is one line of a session's cart.
type CartLineDTO struct {
	Product  CartProductDTO `json:"product"`
	Size     string         `json:"size"`
	Color    string         `json:"color"`
	Quantity int            `json:"quantity"`
}

// CleanupResult reports what a maintenance sweep removed.
type CleanupResult struct {
	OrphanedRemoved int64 `json:"orphaned_removed"`
	ExpiredRemoved  int64 `json:"expired_removed"`
}
