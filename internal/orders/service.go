package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/medinathreads/medina-backend/pkg/db/models"
	"github.com/medinathreads/medina-backend/pkg/enums"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes checkout and order management operations.
type Service interface {
	List(ctx context.Context) ([]OrderDTO, error)
	Create(ctx context.Context, input CreateOrderInput) (*OrderDTO, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

// OrderItemInput is one checkout line. Name, price, and image are supplied
// by the client and stored as-is so order history survives product edits.
type OrderItemInput struct {
	ProductID    uuid.UUID
	ProductName  string
	ProductPrice decimal.Decimal
	Size         string
	Color        string
	Quantity     int
	Subtotal     decimal.Decimal
	Image        *string
	Images       []string
}

// CreateOrderInput is the checkout submission payload.
type CreateOrderInput struct {
	CustomerName string
	Phone        string
	Address      string
	City         string
	Notes        *string
	Items        []OrderItemInput
	Total        decimal.Decimal
}

type service struct {
	repo Repository
	tx   txRunner

	// decrementStock is a deployment policy: when enabled, checkout reduces
	// each referenced product's stock inside the order transaction and
	// aborts on insufficient stock.
	decrementStock bool
}

// NewService constructs an orders service instance.
func NewService(repo Repository, tx txRunner, decrementStock bool) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx, decrementStock: decrementStock}, nil
}

func (s *service) List(ctx context.Context) ([]OrderDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}

	dtos := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *NewOrderDTO(&rows[i]))
	}
	return dtos, nil
}

// Create validates the submission, inserts the order header with its lines
// as one jsonb document, and (policy permitting) decrements stock for each
// line in the same transaction.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*OrderDTO, error) {
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.Phone,
		CustomerAddress: input.Address,
		CustomerCity:    input.City,
		CustomerNotes:   input.Notes,
		OrderItems:      buildOrderItems(input.Items),
		TotalAmount:     input.Total,
		Status:          enums.OrderStatusPending,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.Create(ctx, order); err != nil {
			return err
		}
		if !s.decrementStock {
			return nil
		}
		for _, line := range input.Items {
			ok, err := txRepo.DecrementStock(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return pkgerrors.New(pkgerrors.CodeConflict,
					fmt.Sprintf("insufficient stock for product %s", line.ProductID)).
					WithDetails(map[string]any{
						"product_id": line.ProductID.String(),
						"quantity":   line.Quantity,
					})
			}
		}
		return nil
	})
	if err != nil {
		if appErr := pkgerrors.As(err); appErr != nil {
			return nil, appErr
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
	}

	return NewOrderDTO(order), nil
}

// UpdateStatus sets an order's status. Any status may replace any other.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	parsed, err := enums.ParseOrderStatus(status)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid order status %q", status))
	}

	affected, err := s.repo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update order status")
	}
	if affected == 0 {
		if _, findErr := s.repo.FindByID(ctx, id); errors.Is(findErr, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
	}
	return nil
}

func validateOrderInput(input CreateOrderInput) error {
	missing := make([]string, 0, 4)
	if strings.TrimSpace(input.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	if strings.TrimSpace(input.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(input.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(input.City) == "" {
		missing = append(missing, "city")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing required fields").
			WithDetails(map[string]any{"missing": missing})
	}

	if len(input.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.ProductID == uuid.Nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "product id required on every order line")
		}
		if item.Quantity <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
		}
	}
	if input.Total.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "total cannot be negative")
	}
	return nil
}

func buildOrderItems(items []OrderItemInput) []models.OrderItem {
	lines := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		images := item.Images
		if images == nil {
			images = []string{}
		}
		lines = append(lines, models.OrderItem{
			ProductID:    item.ProductID.String(),
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			Size:         item.Size,
			Color:        item.Color,
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal,
			Image:        item.Image,
			Images:       images,
		})
	}
	return lines
}
