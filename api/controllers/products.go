package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/medinathreads/medina-backend/api/middleware"
	"github.com/medinathreads/medina-backend/api/responses"
	"github.com/medinathreads/medina-backend/api/validators"
	productsvc "github.com/medinathreads/medina-backend/internal/products"
	"github.com/medinathreads/medina-backend/pkg/enums"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
	"github.com/medinathreads/medina-backend/pkg/logger"
	"github.com/medinathreads/medina-backend/pkg/types"
)

// ListProducts returns the full catalog, newest first.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// GetProduct returns one product by its path id.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		// Malformed ids are indistinguishable from unknown ones to the
		// storefront, so both read as a miss.
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found"))
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

type colorRequest struct {
	Name string `json:"name" validate:"required"`
	Hex  string `json:"hex,omitempty"`
}

type createProductRequest struct {
	Name            string         `json:"name" validate:"required"`
	Description     string         `json:"description"`
	Price           float64        `json:"price" validate:"required,gt=0"`
	OriginalPrice   *float64       `json:"original_price,omitempty" validate:"omitempty,gt=0"`
	Category        string         `json:"category" validate:"required"`
	Subcategory     string         `json:"subcategory"`
	Sizes           []string       `json:"sizes"`
	Colors          []colorRequest `json:"colors" validate:"omitempty,dive"`
	Images          []string       `json:"images"`
	StockQuantity   *int           `json:"stock_quantity,omitempty" validate:"omitempty,min=0"`
	IsFeatured      bool           `json:"is_featured"`
	IsTodaysOffer   bool           `json:"is_todays_offer"`
	LowStockEnabled bool           `json:"low_stock_enabled"`
	LowStockLeft    *int           `json:"low_stock_left,omitempty" validate:"omitempty,min=0"`
}

func (p createProductRequest) toInput() (productsvc.CreateProductInput, error) {
	category, err := enums.ParseProductCategory(strings.TrimSpace(p.Category))
	if err != nil {
		return productsvc.CreateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}

	input := productsvc.CreateProductInput{
		Name:            strings.TrimSpace(p.Name),
		Description:     p.Description,
		Price:           decimal.NewFromFloat(p.Price),
		Category:        category,
		Subcategory:     p.Subcategory,
		Sizes:           p.Sizes,
		Colors:          toColors(p.Colors),
		Images:          p.Images,
		StockQuantity:   p.StockQuantity,
		IsFeatured:      p.IsFeatured,
		IsTodaysOffer:   p.IsTodaysOffer,
		LowStockEnabled: p.LowStockEnabled,
		LowStockLeft:    p.LowStockLeft,
	}
	if p.OriginalPrice != nil {
		v := decimal.NewFromFloat(*p.OriginalPrice)
		input.OriginalPrice = &v
	}
	return input, nil
}

// CreateProduct adds a catalog entry.
func CreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

type updateProductRequest struct {
	ID              string         `json:"id" validate:"required,uuid"`
	Name            string         `json:"name" validate:"required"`
	Description     string         `json:"description"`
	Price           float64        `json:"price" validate:"required,gt=0"`
	OriginalPrice   *float64       `json:"original_price,omitempty" validate:"omitempty,gt=0"`
	Category        string         `json:"category" validate:"required"`
	Subcategory     string         `json:"subcategory"`
	Sizes           []string       `json:"sizes"`
	Colors          []colorRequest `json:"colors" validate:"omitempty,dive"`
	Images          []string       `json:"images"`
	StockQuantity   int            `json:"stock_quantity" validate:"min=0"`
	IsFeatured      bool           `json:"is_featured"`
	IsTodaysOffer   bool           `json:"is_todays_offer"`
	LowStockEnabled bool           `json:"low_stock_enabled"`
	LowStockLeft    *int           `json:"low_stock_left,omitempty" validate:"omitempty,min=0"`
}

func (p updateProductRequest) toInput() (productsvc.UpdateProductInput, error) {
	category, err := enums.ParseProductCategory(strings.TrimSpace(p.Category))
	if err != nil {
		return productsvc.UpdateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}

	input := productsvc.UpdateProductInput{
		Name:            strings.TrimSpace(p.Name),
		Description:     p.Description,
		Price:           decimal.NewFromFloat(p.Price),
		Category:        category,
		Subcategory:     p.Subcategory,
		Sizes:           p.Sizes,
		Colors:          toColors(p.Colors),
		Images:          p.Images,
		StockQuantity:   p.StockQuantity,
		IsFeatured:      p.IsFeatured,
		IsTodaysOffer:   p.IsTodaysOffer,
		LowStockEnabled: p.LowStockEnabled,
		LowStockLeft:    p.LowStockLeft,
	}
	if p.OriginalPrice != nil {
		v := decimal.NewFromFloat(*p.OriginalPrice)
		input.OriginalPrice = &v
	}
	return input, nil
}

// UpdateProduct overwrites a product. The body carries the id; every
// column is replaced, there is no partial patch.
func UpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := uuid.Parse(payload.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// DeleteProduct removes a product. Without force=true, a product still
// referenced by cart rows is refused with a conflict the caller can
// retry with force.
func DeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.RequireQueryUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		force := validators.QueryBool(r, "force")
		result, err := svc.Delete(r.Context(), id, force)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithFields(r.Context(), map[string]any{
				"product_id":         id.String(),
				"force":              force,
				"removed_cart_items": result.RemovedCartItems,
				"admin":              middleware.AdminEmailFromContext(r.Context()),
			})
			logg.Info(ctx, "product.deleted")
		}

		responses.WriteSuccess(w, result)
	}
}

type todaysOffersRequest struct {
	ProductIDs []string `json:"product_ids" validate:"dive,uuid"`
}

// SetTodaysOffers replaces the offer set with the submitted product ids.
// An empty list clears the section.
func SetTodaysOffers(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload todaysOffersRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ids := make([]uuid.UUID, 0, len(payload.ProductIDs))
		for _, raw := range payload.ProductIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
				return
			}
			ids = append(ids, id)
		}

		if err := svc.SetTodaysOffers(r.Context(), ids); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]int{"todays_offers": len(ids)})
	}
}

func toColors(reqs []colorRequest) []types.Color {
	colors := make([]types.Color, 0, len(reqs))
	for _, c := range reqs {
		colors = append(colors, types.Color{Name: c.Name, Hex: c.Hex})
	}
	return colors
}
