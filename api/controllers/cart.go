package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/medinathreads/medina-backend/api/responses"
	"github.com/medinathreads/medina-backend/api/validators"
	cartsvc "github.com/medinathreads/medina-backend/internal/cart"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
	"github.com/medinathreads/medina-backend/pkg/logger"
)

// GetCart returns the session's cart lines joined with live product data.
func GetCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := validators.RequireQuery(r, "sessionId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithSessionID(ctx, sessionID)
		}

		lines, err := svc.Get(ctx, sessionID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, lines)
	}
}

type cartLineRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type saveCartRequest struct {
	Items []cartLineRequest `json:"items" validate:"dive"`
}

// SaveCart replaces the session's cart with the submitted lines. An empty
// list empties the cart.
func SaveCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := validators.RequireQuery(r, "sessionId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload saveCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := make([]cartsvc.LineInput, 0, len(payload.Items))
		for _, line := range payload.Items {
			id, err := uuid.Parse(line.ProductID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
				return
			}
			items = append(items, cartsvc.LineInput{
				ProductID: id,
				Size:      line.Size,
				Color:     line.Color,
				Quantity:  line.Quantity,
			})
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithSessionID(ctx, sessionID)
		}

		if err := svc.Save(ctx, sessionID, items); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]int{"items": len(items)})
	}
}

// ClearCart removes every line for the session.
func ClearCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := validators.RequireQuery(r, "sessionId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithSessionID(ctx, sessionID)
		}

		if err := svc.Clear(ctx, sessionID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"cleared": true})
	}
}
