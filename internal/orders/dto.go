package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/medinathreads/medina-backend/pkg/db/models"
)

const placeholderImage = "/placeholder.svg"

// OrderItemDTO is one denormalized line of an order as returned to the
// admin dashboard. Values reflect the product at order time.
type OrderItemDTO struct {
	ProductID    string   `json:"product_id"`
	ProductName  string   `json:"product_name"`
	ProductPrice float64  `json:"product_price"`
	Size         string   `json:"size"`
	Color        string   `json:"color"`
	Quantity     int      `json:"quantity"`
	Subtotal     float64  `json:"subtotal"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
}

// OrderDTO is the order payload returned to clients.
type OrderDTO struct {
	ID           uuid.UUID      `json:"id"`
	CustomerName string         `json:"customer_name"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	Notes        *string        `json:"notes,omitempty"`
	Items        []OrderItemDTO `json:"items"`
	Total        float64        `json:"total"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

// NewOrderDTO maps a stored order. Lines without a captured image fall back
// to the first of the captured image list, then the placeholder, so rows
// written before the image column existed still render.
func NewOrderDTO(order *models.Order) *OrderDTO {
	items := make([]OrderItemDTO, 0, len(order.OrderItems))
	for _, line := range order.OrderItems {
		image := placeholderImage
		switch {
		case line.Image != nil && *line.Image != "":
			image = *line.Image
		case len(line.Images) > 0:
			image = line.Images[0]
		}

		items = append(items, OrderItemDTO{
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			ProductPrice: line.ProductPrice.InexactFloat64(),
			Size:         line.Size,
			Color:        line.Color,
			Quantity:     line.Quantity,
			Subtotal:     line.Subtotal.InexactFloat64(),
			Image:        image,
			Images:       append([]string{}, line.Images...),
		})
	}

	return &OrderDTO{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Phone:        order.CustomerPhone,
		Address:      order.CustomerAddress,
		City:         order.CustomerCity,
		Notes:        order.CustomerNotes,
		Items:        items,
		Total:        order.TotalAmount.InexactFloat64(),
		Status:       order.Status.String(),
		CreatedAt:    order.CreatedAt,
	}
}
