package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/medinathreads/medina-backend/api/responses"
	"github.com/medinathreads/medina-backend/api/validators"
	gallerysvc "github.com/medinathreads/medina-backend/internal/gallery"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
	"github.com/medinathreads/medina-backend/pkg/logger"
)

// ListGallery returns carousel items by display order.
func ListGallery(svc gallerysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "gallery service unavailable"))
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

type createGalleryItemRequest struct {
	Title        string `json:"title" validate:"required"`
	TitleAr      string `json:"title_ar"`
	ImageURL     string `json:"image_url" validate:"required"`
	IsActive     *bool  `json:"is_active,omitempty"`
	DisplayOrder int    `json:"display_order" validate:"min=0"`
}

// CreateGalleryItem adds a carousel entry. is_active defaults to true.
func CreateGalleryItem(svc gallerysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "gallery service unavailable"))
			return
		}

		var payload createGalleryItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		active := true
		if payload.IsActive != nil {
			active = *payload.IsActive
		}

		item, err := svc.Create(r.Context(), gallerysvc.CreateItemInput{
			Title:        payload.Title,
			TitleAr:      payload.TitleAr,
			ImageURL:     payload.ImageURL,
			IsActive:     active,
			DisplayOrder: payload.DisplayOrder,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

type updateGalleryItemRequest struct {
	ID           string  `json:"id" validate:"required,uuid"`
	Title        *string `json:"title,omitempty"`
	TitleAr      *string `json:"title_ar,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty" validate:"omitempty,min=0"`
}

// UpdateGalleryItem patches the provided fields only.
func UpdateGalleryItem(svc gallerysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "gallery service unavailable"))
			return
		}

		var payload updateGalleryItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := uuid.Parse(payload.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid gallery item id"))
			return
		}

		input := gallerysvc.UpdateItemInput{
			Title:        payload.Title,
			TitleAr:      payload.TitleAr,
			ImageURL:     payload.ImageURL,
			IsActive:     payload.IsActive,
			DisplayOrder: payload.DisplayOrder,
		}
		if err := svc.Update(r.Context(), id, input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"updated": true})
	}
}

// DeleteGalleryItem removes one carousel entry by id.
func DeleteGalleryItem(svc gallerysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "gallery service unavailable"))
			return
		}

		id, err := validators.RequireQueryUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}
