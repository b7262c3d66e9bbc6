package middleware

import "context"

type contextKey string

const (
	ctxAdminEmail contextKey = "admin_email"
)

// AdminEmailFromContext returns the authenticated admin's email, or "".
func AdminEmailFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxAdminEmail).(string); ok {
		return v
	}
	return ""
}
