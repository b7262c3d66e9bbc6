package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/medinathreads/medina-backend/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags every request with a correlation id and echoes it back
// to the client. An id forwarded by the proxy is kept as-is so a trace
// can span hops; otherwise one is minted here.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, id)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, id)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
