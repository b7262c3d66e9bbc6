package controllers

import (
	"net/http"

	"github.com/medinathreads/medina-backend/api/responses"
	"github.com/medinathreads/medina-backend/api/validators"
	"github.com/medinathreads/medina-backend/pkg/db"
	"github.com/medinathreads/medina-backend/pkg/db/models"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
	"github.com/medinathreads/medina-backend/pkg/logger"
)

const (
	debugProductsLimit = 50
	debugSearchLimit   = 20
)

type debugColumn struct {
	TableName  string `json:"table_name"`
	ColumnName string `json:"column_name"`
	DataType   string `json:"data_type"`
	IsNullable string `json:"is_nullable"`
}

// DebugSchema dumps the live column catalog of the application tables.
// Used to diagnose drift between migrations and the running database.
func DebugSchema(client *db.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if client == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "database unavailable"))
			return
		}

		var columns []debugColumn
		err := client.DB().WithContext(r.Context()).
			Raw(`SELECT table_name, column_name, data_type, is_nullable
				FROM information_schema.columns
				WHERE table_schema = 'public'
				  AND table_name IN ('products', 'cart_items', 'orders', 'gallery')
				ORDER BY table_name, ordinal_position`).
			Scan(&columns).
			Error
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "schema introspection failed"))
			return
		}

		responses.WriteSuccess(w, columns)
	}
}

// DebugProducts returns raw product rows without DTO shaping, so stored
// color encodings and array columns can be inspected as persisted.
func DebugProducts(client *db.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if client == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "database unavailable"))
			return
		}

		var rows []models.Product
		err := client.DB().WithContext(r.Context()).
			Order("created_at DESC").
			Limit(debugProductsLimit).
			Find(&rows).
			Error
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "product dump failed"))
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

// DebugProductByName searches raw product rows by case-insensitive name.
func DebugProductByName(client *db.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if client == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "database unavailable"))
			return
		}

		name, err := validators.RequireQuery(r, "name")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var rows []models.Product
		err = client.DB().WithContext(r.Context()).
			Where("name ILIKE ?", "%"+name+"%").
			Order("created_at DESC").
			Limit(debugSearchLimit).
			Find(&rows).
			Error
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "product search failed"))
			return
		}

		responses.WriteSuccess(w, rows)
	}
}
