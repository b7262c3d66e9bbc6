package validators

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
)

// RequireQuery returns the trimmed query value or a validation error when
// the parameter is missing or blank.
func RequireQuery(r *http.Request, key string) (string, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "query parameter required").
			WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// RequireQueryUUID parses a required query parameter as a UUID.
func RequireQueryUUID(r *http.Request, key string) (uuid.UUID, error) {
	raw, err := RequireQuery(r, key)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "query parameter must be a uuid").
			WithDetails(map[string]any{"field": key})
	}
	return id, nil
}

// QueryBool reads an optional boolean flag; "true" and "1" enable it.
func QueryBool(r *http.Request, key string) bool {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key)))
	return raw == "true" || raw == "1"
}
