package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one line of an anonymous session's cart. The session id is a
// client-generated opaque string, not a user account reference. The product
// foreign key is non-cascading: deleting a product that cart rows reference
// fails unless the rows are purged first.
type CartItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SessionID string    `gorm:"column:session_id;not null;index"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Size      string    `gorm:"column:size"`
	Color     string    `gorm:"column:color"`
	Quantity  int       `gorm:"column:quantity;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
