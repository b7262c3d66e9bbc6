package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	gallerysvc "github.com/medinathreads/medina-backend/internal/gallery"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
)

type stubGalleryService struct {
	createFn func(ctx context.Context, input gallerysvc.CreateItemInput) (*gallerysvc.GalleryItemDTO, error)
	updateFn func(ctx context.Context, id uuid.UUID, input gallerysvc.UpdateItemInput) error
}

func (s stubGalleryService) List(ctx context.Context) ([]gallerysvc.GalleryItemDTO, error) {
	return []gallerysvc.GalleryItemDTO{}, nil
}

func (s stubGalleryService) Create(ctx context.Context, input gallerysvc.CreateItemInput) (*gallerysvc.GalleryItemDTO, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return &gallerysvc.GalleryItemDTO{ID: uuid.New(), Title: input.Title}, nil
}

func (s stubGalleryService) Update(ctx context.Context, id uuid.UUID, input gallerysvc.UpdateItemInput) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, input)
	}
	return nil
}

func (s stubGalleryService) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func TestCreateGalleryItemDefaultsActive(t *testing.T) {
	var captured gallerysvc.CreateItemInput
	handler := CreateGalleryItem(stubGalleryService{
		createFn: func(ctx context.Context, input gallerysvc.CreateItemInput) (*gallerysvc.GalleryItemDTO, error) {
			captured = input
			return &gallerysvc.GalleryItemDTO{ID: uuid.New(), Title: input.Title}, nil
		},
	}, nil)

	body := `{"title":"Summer Drop","image_url":"https://cdn.example.com/summer.jpg","display_order":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/gallery", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if !captured.IsActive {
		t.Fatalf("expected is_active to default true")
	}
}

func TestCreateGalleryItemRequiresImage(t *testing.T) {
	handler := CreateGalleryItem(stubGalleryService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/gallery", strings.NewReader(`{"title":"No Image"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestUpdateGalleryItemPartialPatch(t *testing.T) {
	itemID := uuid.New()
	var captured gallerysvc.UpdateItemInput
	handler := UpdateGalleryItem(stubGalleryService{
		updateFn: func(ctx context.Context, id uuid.UUID, input gallerysvc.UpdateItemInput) error {
			if id != itemID {
				t.Fatalf("unexpected id %s", id)
			}
			captured = input
			return nil
		},
	}, nil)

	body := `{"id":"` + itemID.String() + `","is_active":false}`
	req := httptest.NewRequest(http.MethodPut, "/api/gallery", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if captured.IsActive == nil || *captured.IsActive {
		t.Fatalf("expected is_active=false patch, got %+v", captured)
	}
	if captured.Title != nil {
		t.Fatalf("title must stay nil when omitted")
	}
}

func TestUpdateGalleryItemNotFound(t *testing.T) {
	handler := UpdateGalleryItem(stubGalleryService{
		updateFn: func(ctx context.Context, id uuid.UUID, input gallerysvc.UpdateItemInput) error {
			return pkgerrors.New(pkgerrors.CodeNotFound, "gallery item not found")
		},
	}, nil)

	body := `{"id":"` + uuid.NewString() + `","title":"x"}`
	req := httptest.NewRequest(http.MethodPut, "/api/gallery", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestDeleteGalleryItemRequiresID(t *testing.T) {
	handler := DeleteGalleryItem(stubGalleryService{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/gallery", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
