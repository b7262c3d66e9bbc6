package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	ordersvc "github.com/medinathreads/medina-backend/internal/orders"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
)

type stubOrderService struct {
	listFn   func(ctx context.Context) ([]ordersvc.OrderDTO, error)
	createFn func(ctx context.Context, input ordersvc.CreateOrderInput) (*ordersvc.OrderDTO, error)
	statusFn func(ctx context.Context, id uuid.UUID, status string) error
}

func (s stubOrderService) List(ctx context.Context) ([]ordersvc.OrderDTO, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []ordersvc.OrderDTO{}, nil
}

func (s stubOrderService) Create(ctx context.Context, input ordersvc.CreateOrderInput) (*ordersvc.OrderDTO, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return &ordersvc.OrderDTO{ID: uuid.New()}, nil
}

func (s stubOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if s.statusFn != nil {
		return s.statusFn(ctx, id, status)
	}
	return nil
}

func checkoutBody(productID uuid.UUID) string {
	return `{
		"customer_name": "Amira Hassan",
		"phone": "+20100000000",
		"address": "12 Nile St",
		"city": "Cairo",
		"items": [{
			"product_id": "` + productID.String() + `",
			"product_name": "Linen Shirt",
			"product_price": 49.99,
			"size": "M",
			"color": "Navy",
			"quantity": 2,
			"subtotal": 99.98
		}],
		"total": 99.98
	}`
}

func TestCreateOrderSuccess(t *testing.T) {
	productID := uuid.New()
	var captured ordersvc.CreateOrderInput
	handler := CreateOrder(stubOrderService{
		createFn: func(ctx context.Context, input ordersvc.CreateOrderInput) (*ordersvc.OrderDTO, error) {
			captured = input
			return &ordersvc.OrderDTO{ID: uuid.New(), CustomerName: input.CustomerName}, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(checkoutBody(productID)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if captured.CustomerName != "Amira Hassan" {
		t.Fatalf("unexpected customer: %q", captured.CustomerName)
	}
	if len(captured.Items) != 1 || captured.Items[0].ProductID != productID {
		t.Fatalf("unexpected items: %+v", captured.Items)
	}
	if captured.Items[0].Quantity != 2 {
		t.Fatalf("unexpected quantity: %d", captured.Items[0].Quantity)
	}
}

func TestCreateOrderRejectsMissingItems(t *testing.T) {
	handler := CreateOrder(stubOrderService{}, nil)

	body := `{"customer_name":"A","phone":"1","address":"x","city":"y","items":[],"total":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCreateOrderInsufficientStockConflict(t *testing.T) {
	productID := uuid.New()
	handler := CreateOrder(stubOrderService{
		createFn: func(ctx context.Context, input ordersvc.CreateOrderInput) (*ordersvc.OrderDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "insufficient stock").
				WithDetails(map[string]any{"product_id": productID.String(), "quantity": 2})
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(checkoutBody(productID)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Details["product_id"] != productID.String() {
		t.Fatalf("expected product_id detail, got %+v", envelope.Error.Details)
	}
}

func TestUpdateOrderStatusForwards(t *testing.T) {
	orderID := uuid.New()
	var gotID uuid.UUID
	var gotStatus string
	handler := UpdateOrderStatus(stubOrderService{
		statusFn: func(ctx context.Context, id uuid.UUID, status string) error {
			gotID = id
			gotStatus = status
			return nil
		},
	}, nil)

	body := `{"order_id":"` + orderID.String() + `","status":"shipped"}`
	req := httptest.NewRequest(http.MethodPut, "/api/orders", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if gotID != orderID || gotStatus != "shipped" {
		t.Fatalf("unexpected forward: id=%s status=%q", gotID, gotStatus)
	}
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	handler := UpdateOrderStatus(stubOrderService{
		statusFn: func(ctx context.Context, id uuid.UUID, status string) error {
			return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		},
	}, nil)

	body := `{"order_id":"` + uuid.NewString() + `","status":"shipped"}`
	req := httptest.NewRequest(http.MethodPut, "/api/orders", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
