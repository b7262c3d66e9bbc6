package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medinathreads/medina-backend/internal/products"
	"github.com/medinathreads/medina-backend/pkg/db/models"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
	"gorm.io/gorm"
)

const placeholderImage = "/placeholder.svg"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes session cart operations.
type Service interface {
	Get(ctx context.Context, sessionID string) ([]CartLineDTO, error)
	Save(ctx context.Context, sessionID string, items []LineInput) error
	Clear(ctx context.Context, sessionID string) error
	Cleanup(ctx context.Context, maxAge time.Duration) (*CleanupResult, error)
}

// LineInput is one cart line submitted by the client.
type LineInput struct {
	ProductID uuid.UUID
	Size      string
	Color     string
	Quantity  int
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService constructs a cart service instance.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// Get returns the session's cart. Unknown sessions yield an empty list.
func (s *service) Get(ctx context.Context, sessionID string) ([]CartLineDTO, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}

	records, err := s.repo.ListLines(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}

	lines := make([]CartLineDTO, 0, len(records))
	for _, rec := range records {
		lines = append(lines, newCartLineDTO(rec))
	}
	return lines, nil
}

// Save replaces the session's entire cart with the submitted lines. Lines
// sharing (product, size, color) merge by summing quantities. The delete
// and reinsert run in one transaction so a failure cannot lose the cart.
func (s *service) Save(ctx context.Context, sessionID string, items []LineInput) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	for _, item := range items {
		if item.ProductID == uuid.Nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "product id required on every cart line")
		}
		if item.Quantity <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
		}
	}

	merged := mergeLines(sessionID, items)

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Clear(ctx, sessionID); err != nil {
			return err
		}
		return txRepo.InsertItems(ctx, merged)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save cart")
	}
	return nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	if err := s.repo.Clear(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
	}
	return nil
}

// Cleanup removes orphaned rows and carts older than maxAge.
func (s *service) Cleanup(ctx context.Context, maxAge time.Duration) (*CleanupResult, error) {
	orphaned, err := s.repo.DeleteOrphaned(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete orphaned cart items")
	}

	expired, err := s.repo.DeleteOlderThan(ctx, time.Now().UTC().Add(-maxAge))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete expired cart items")
	}

	return &CleanupResult{OrphanedRemoved: orphaned, ExpiredRemoved: expired}, nil
}

func mergeLines(sessionID string, items []LineInput) []models.CartItem {
	type key struct {
		product uuid.UUID
		size    string
		color   string
	}

	index := map[key]int{}
	merged := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		k := key{product: item.ProductID, size: item.Size, color: item.Color}
		if i, ok := index[k]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[k] = len(merged)
		merged = append(merged, models.CartItem{
			SessionID: sessionID,
			ProductID: item.ProductID,
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  item.Quantity,
		})
	}
	return merged
}

func newCartLineDTO(rec cartLineRecord) CartLineDTO {
	product := CartProductDTO{
		ID:          rec.ProductID,
		Name:        rec.Name,
		Price:       rec.Price.InexactFloat64(),
		Image:       placeholderImage,
		Category:    rec.Category.String(),
		Subcategory: rec.Subcategory,
		Sizes:       append([]string{}, rec.Sizes...),
		Colors:      products.DecodeStoredColors(rec.Colors),
		InStock:     rec.StockQuantity > 0,
		Description: rec.Description,
	}
	if rec.OriginalPrice != nil {
		v := rec.OriginalPrice.InexactFloat64()
		product.OriginalPrice = &v
	}
	if len(rec.Images) > 0 {
		product.Image = rec.Images[0]
	}

	return CartLineDTO{
		Product:  product,
		Size:     rec.Size,
		Color:    rec.Color,
		Quantity: rec.Quantity,
	}
}
