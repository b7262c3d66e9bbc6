package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	cartsvc "github.com/medinathreads/medina-backend/internal/cart"
)

type stubCartService struct {
	getFn   func(ctx context.Context, sessionID string) ([]cartsvc.CartLineDTO, error)
	saveFn  func(ctx context.Context, sessionID string, items []cartsvc.LineInput) error
	clearFn func(ctx context.Context, sessionID string) error
}

func (s stubCartService) Get(ctx context.Context, sessionID string) ([]cartsvc.CartLineDTO, error) {
	if s.getFn != nil {
		return s.getFn(ctx, sessionID)
	}
	return []cartsvc.CartLineDTO{}, nil
}

func (s stubCartService) Save(ctx context.Context, sessionID string, items []cartsvc.LineInput) error {
	if s.saveFn != nil {
		return s.saveFn(ctx, sessionID, items)
	}
	return nil
}

func (s stubCartService) Clear(ctx context.Context, sessionID string) error {
	if s.clearFn != nil {
		return s.clearFn(ctx, sessionID)
	}
	return nil
}

func (s stubCartService) Cleanup(ctx context.Context, maxAge time.Duration) (*cartsvc.CleanupResult, error) {
	return &cartsvc.CleanupResult{}, nil
}

func TestGetCartRequiresSession(t *testing.T) {
	handler := GetCart(stubCartService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetCartEmptySessionReturnsEmptyList(t *testing.T) {
	handler := GetCart(stubCartService{
		getFn: func(ctx context.Context, sessionID string) ([]cartsvc.CartLineDTO, error) {
			if sessionID != "sess-1" {
				t.Fatalf("unexpected session id %q", sessionID)
			}
			return []cartsvc.CartLineDTO{}, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/cart?sessionId=sess-1", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []cartsvc.CartLineDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data == nil || len(envelope.Data) != 0 {
		t.Fatalf("expected empty array, got %+v", envelope.Data)
	}
}

func TestSaveCartForwardsLines(t *testing.T) {
	productID := uuid.New()
	var captured []cartsvc.LineInput
	handler := SaveCart(stubCartService{
		saveFn: func(ctx context.Context, sessionID string, items []cartsvc.LineInput) error {
			captured = items
			return nil
		},
	}, nil)

	body := `{"items":[{"product_id":"` + productID.String() + `","size":"M","color":"Navy","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart?sessionId=sess-1", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if len(captured) != 1 {
		t.Fatalf("expected 1 line, got %d", len(captured))
	}
	if captured[0].ProductID != productID || captured[0].Quantity != 2 {
		t.Fatalf("unexpected line: %+v", captured[0])
	}
}

func TestSaveCartRejectsBadProductID(t *testing.T) {
	handler := SaveCart(stubCartService{}, nil)

	body := `{"items":[{"product_id":"nope","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart?sessionId=sess-1", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestSaveCartEmptyListEmptiesCart(t *testing.T) {
	var captured []cartsvc.LineInput
	saveCalled := false
	handler := SaveCart(stubCartService{
		saveFn: func(ctx context.Context, sessionID string, items []cartsvc.LineInput) error {
			saveCalled = true
			captured = items
			return nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/cart?sessionId=sess-1", strings.NewReader(`{"items":[]}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !saveCalled || len(captured) != 0 {
		t.Fatalf("expected save with zero lines, called=%v lines=%d", saveCalled, len(captured))
	}
}

func TestClearCart(t *testing.T) {
	cleared := ""
	handler := ClearCart(stubCartService{
		clearFn: func(ctx context.Context, sessionID string) error {
			cleared = sessionID
			return nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart?sessionId=sess-9", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if cleared != "sess-9" {
		t.Fatalf("unexpected session %q", cleared)
	}
}
