package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"hello": "world"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "world", payload["data"]["hello"])
}

func TestWriteErrorTypedCode(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	WriteError(context.Background(), nil, rec, err)

	assert.Equal(t, 404, rec.Code)

	var payload map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "NOT_FOUND", payload["error"]["code"])
	assert.Equal(t, "product not found", payload["error"]["message"])
}

func TestWriteErrorConflictIncludesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeConflict, "product is referenced by cart items").
		WithDetails(map[string]any{"can_force_delete": true})
	WriteError(context.Background(), nil, rec, err)

	assert.Equal(t, 409, rec.Code)

	var payload map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	details, ok := payload["error"]["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, details["can_force_delete"])
}

func TestWriteErrorDatabaseFailureIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.Wrap(pkgerrors.CodeInternal, errors.New("pq: connection refused"), "list products")
	WriteError(context.Background(), nil, rec, err)

	// Storage failures answer 500, never 503; 503 is reserved for the
	// readiness probe.
	assert.Equal(t, 500, rec.Code)

	var payload map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "INTERNAL_ERROR", payload["error"]["code"])
	assert.Equal(t, "internal server error", payload["error"]["message"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestWriteErrorUntypedBecomesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, assert.AnError)

	assert.Equal(t, 500, rec.Code)

	var payload map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "INTERNAL_ERROR", payload["error"]["code"])
	// internal errors never leak the raw message
	assert.Equal(t, "internal server error", payload["error"]["message"])
}
