package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/medinathreads/medina-backend/pkg/db"
	"github.com/medinathreads/medina-backend/pkg/db/models"
	"github.com/medinathreads/medina-backend/pkg/enums"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
	"github.com/medinathreads/medina-backend/pkg/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const defaultStockQuantity = 10

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes catalog management operations.
type Service interface {
	List(ctx context.Context) ([]ProductDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, id uuid.UUID, force bool) (*DeleteResult, error)
	SetTodaysOffers(ctx context.Context, ids []uuid.UUID) error
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name            string
	Description     string
	Price           decimal.Decimal
	OriginalPrice   *decimal.Decimal
	Category        enums.ProductCategory
	Subcategory     string
	Sizes           []string
	Colors          []types.Color
	Images          []string
	StockQuantity   *int
	IsFeatured      bool
	IsTodaysOffer   bool
	LowStockEnabled bool
	LowStockLeft    *int
}

// UpdateProductInput is a full-column overwrite; there is no partial patch.
type UpdateProductInput struct {
	Name            string
	Description     string
	Price           decimal.Decimal
	OriginalPrice   *decimal.Decimal
	Category        enums.ProductCategory
	Subcategory     string
	Sizes           []string
	Colors          []types.Color
	Images          []string
	StockQuantity   int
	IsFeatured      bool
	IsTodaysOffer   bool
	LowStockEnabled bool
	LowStockLeft    *int
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService constructs a product service instance.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) List(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}

	dtos := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *NewProductDTO(&rows[i]))
	}
	return dtos, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewProductDTO(product), nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if !input.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid category %q", input.Category))
	}

	images := input.Images
	if len(images) == 0 {
		images = []string{placeholderImage}
	}

	stock := defaultStockQuantity
	if input.StockQuantity != nil {
		stock = *input.StockQuantity
	}

	originalPrice := input.OriginalPrice
	if originalPrice == nil {
		p := input.Price
		originalPrice = &p
	}

	product := &models.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: originalPrice,
		Category:      input.Category,
		Subcategory:   input.Subcategory,
		Sizes:         input.Sizes,
		Colors:        EncodeColors(input.Colors),
		Images:        images,
		StockQuantity: stock,
		IsFeatured:    input.IsFeatured,
		IsTodaysOffer: input.IsTodaysOffer,
		LowStockLeft:  lowStockValue(input.LowStockEnabled, input.LowStockLeft),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "insert product")
	}
	return NewProductDTO(created), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	if !input.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid category %q", input.Category))
	}

	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.OriginalPrice = input.OriginalPrice
	product.Category = input.Category
	product.Subcategory = input.Subcategory
	product.Sizes = input.Sizes
	product.Colors = EncodeColors(input.Colors)
	product.Images = input.Images
	product.StockQuantity = input.StockQuantity
	product.IsFeatured = input.IsFeatured
	product.IsTodaysOffer = input.IsTodaysOffer
	// disabling the low-stock label must clear the stale counter
	product.LowStockLeft = lowStockValue(input.LowStockEnabled, input.LowStockLeft)

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}
	return NewProductDTO(updated), nil
}

// Delete removes a product. Without force, a product still referenced by
// cart rows surfaces a conflict telling the caller a force option exists.
// With force, the referencing cart rows are purged in the same transaction
// and the response reports how many were removed.
func (s *service) Delete(ctx context.Context, id uuid.UUID, force bool) (*DeleteResult, error) {
	if _, err := s.findProduct(ctx, id); err != nil {
		return nil, err
	}

	if !force {
		if err := s.repo.Delete(ctx, id); err != nil {
			if db.IsForeignKeyViolation(err) {
				return nil, s.cartConflict(ctx, id, err)
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
		}
		return &DeleteResult{Deleted: true}, nil
	}

	var purged int64
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		n, err := txRepo.PurgeCartReferences(ctx, id)
		if err != nil {
			return err
		}
		purged = n
		return txRepo.Delete(ctx, id)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "force delete product")
	}
	return &DeleteResult{Deleted: true, RemovedCartItems: purged}, nil
}

// SetTodaysOffers replaces the offer set: clear every flag, then set it for
// exactly the given ids. Runs in one transaction so readers never observe
// the transient empty set between the two statements.
func (s *service) SetTodaysOffers(ctx context.Context, ids []uuid.UUID) error {
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.ClearTodaysOffers(ctx); err != nil {
			return err
		}
		return txRepo.MarkTodaysOffers(ctx, ids)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "set todays offers")
	}
	return nil
}

func (s *service) findProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return product, nil
}

func (s *service) cartConflict(ctx context.Context, id uuid.UUID, cause error) error {
	references, countErr := s.repo.CountCartReferences(ctx, id)
	if countErr != nil {
		references = 0
	}
	return pkgerrors.Wrap(pkgerrors.CodeConflict, cause, "product is referenced by cart items").
		WithDetails(map[string]any{
			"can_force_delete": true,
			"cart_references":  references,
		})
}

func lowStockValue(enabled bool, left *int) *int {
	if !enabled {
		return nil
	}
	if left == nil {
		zero := 0
		return &zero
	}
	v := *left
	return &v
}
