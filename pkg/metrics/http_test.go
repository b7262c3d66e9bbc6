package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe(http.MethodGet, "/api/products", http.StatusOK, 30*time.Millisecond)
	m.Observe(http.MethodGet, "/api/products", http.StatusOK, 10*time.Millisecond)
	m.Observe(http.MethodDelete, "/api/products", http.StatusConflict, 5*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/products", "200"))
	assert.Equal(t, 2.0, got)

	got = testutil.ToFloat64(m.requests.WithLabelValues(http.MethodDelete, "/api/products", "409"))
	assert.Equal(t, 1.0, got)
}

func TestObserveNormalizesEmptyRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "unmatched", "404"))
	assert.Equal(t, 1.0, got)
}

func TestNilRegistererIsSafe(t *testing.T) {
	m := NewHTTPMetrics(nil)
	m.Observe(http.MethodGet, "/x", http.StatusOK, time.Millisecond)

	var zero *HTTPMetrics
	zero.Observe(http.MethodGet, "/x", http.StatusOK, time.Millisecond)
}
