package common

import "context"

// contextKey is the type for context keys used in shared request plumbing.
type contextKey string

const csrfTokenKey contextKey = "csrf_token"

// WithCSRFToken returns a context carrying the CSRF token for this request,
// so server-rendered forms can embed it as a hidden field.
func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, csrfTokenKey, token)
}

// CSRFToken extracts the CSRF token from the request context, or "".
func CSRFToken(ctx context.Context) string {
	v, _ := ctx.Value(csrfTokenKey).(string)
	return v
}
