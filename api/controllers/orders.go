package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/medinathreads/medina-backend/api/middleware"
	"github.com/medinathreads/medina-backend/api/responses"
	"github.com/medinathreads/medina-backend/api/validators"
	ordersvc "github.com/medinathreads/medina-backend/internal/orders"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
	"github.com/medinathreads/medina-backend/pkg/logger"
)

// ListOrders returns every order, newest first.
func ListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		orders, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, orders)
	}
}

type orderItemRequest struct {
	ProductID    string   `json:"product_id" validate:"required,uuid"`
	ProductName  string   `json:"product_name" validate:"required"`
	ProductPrice float64  `json:"product_price" validate:"min=0"`
	Size         string   `json:"size"`
	Color        string   `json:"color"`
	Quantity     int      `json:"quantity" validate:"required,min=1"`
	Subtotal     float64  `json:"subtotal" validate:"min=0"`
	Image        *string  `json:"image,omitempty"`
	Images       []string `json:"images,omitempty"`
}

type createOrderRequest struct {
	CustomerName string             `json:"customer_name" validate:"required"`
	Phone        string             `json:"phone" validate:"required"`
	Address      string             `json:"address" validate:"required"`
	City         string             `json:"city" validate:"required"`
	Notes        *string            `json:"notes,omitempty"`
	Items        []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	Total        float64            `json:"total" validate:"min=0"`
}

func (p createOrderRequest) toInput() (ordersvc.CreateOrderInput, error) {
	items := make([]ordersvc.OrderItemInput, 0, len(p.Items))
	for _, item := range p.Items {
		id, err := uuid.Parse(item.ProductID)
		if err != nil {
			return ordersvc.CreateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
		}
		items = append(items, ordersvc.OrderItemInput{
			ProductID:    id,
			ProductName:  item.ProductName,
			ProductPrice: decimal.NewFromFloat(item.ProductPrice),
			Size:         item.Size,
			Color:        item.Color,
			Quantity:     item.Quantity,
			Subtotal:     decimal.NewFromFloat(item.Subtotal),
			Image:        item.Image,
			Images:       item.Images,
		})
	}

	return ordersvc.CreateOrderInput{
		CustomerName: p.CustomerName,
		Phone:        p.Phone,
		Address:      p.Address,
		City:         p.City,
		Notes:        p.Notes,
		Items:        items,
		Total:        decimal.NewFromFloat(p.Total),
	}, nil
}

// CreateOrder places a checkout submission.
func CreateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

type updateOrderStatusRequest struct {
	OrderID string `json:"order_id" validate:"required,uuid"`
	Status  string `json:"status" validate:"required"`
}

// UpdateOrderStatus moves an order to the requested status. Any valid
// status is accepted from any current one.
func UpdateOrderStatus(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := uuid.Parse(payload.OrderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id"))
			return
		}

		if err := svc.UpdateStatus(r.Context(), id, payload.Status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithFields(r.Context(), map[string]any{
				"order_id": id.String(),
				"status":   payload.Status,
				"admin":    middleware.AdminEmailFromContext(r.Context()),
			})
			logg.Info(ctx, "order.status_updated")
		}

		responses.WriteSuccess(w, map[string]string{"status": payload.Status})
	}
}
