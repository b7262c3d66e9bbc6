package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/medinathreads/medina-backend/pkg/enums"
)

// OrderItem is one denormalized line inside an order's jsonb document.
// Name, price, and image are captured at order time so later product edits
// never rewrite order history.
type OrderItem struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Size         string          `json:"size"`
	Color        string          `json:"color"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Image        *string         `json:"image"`
	Images       []string        `json:"images"`
}

// Order is an order header plus its line items as a single jsonb blob.
type Order struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerName    string            `gorm:"column:customer_name;not null"`
	CustomerPhone   string            `gorm:"column:customer_phone;not null"`
	CustomerAddress string            `gorm:"column:customer_address;not null"`
	CustomerCity    string            `gorm:"column:customer_city;not null"`
	CustomerNotes   *string           `gorm:"column:customer_notes"`
	OrderItems      []OrderItem       `gorm:"column:order_items;type:jsonb;serializer:json"`
	TotalAmount     decimal.Decimal   `gorm:"column:total_amount;type:numeric(10,2);not null"`
	Status          enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime"`
}

func (Order) TableName() string {
	return "orders"
}
