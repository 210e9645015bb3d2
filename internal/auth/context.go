package auth

import (
	"context"
	"net/http"
)

// SessionCookie is the name of the admin session cookie.
const SessionCookie = "dept_admin_session"

// contextKey is the type for context keys used by this package.
type contextKey string

const authenticatedKey contextKey = "admin_authenticated"

// WithAuthenticated returns a context carrying the admin-authenticated flag.
// The flag is request-scoped; handlers never consult ambient state.
func WithAuthenticated(ctx context.Context, authenticated bool) context.Context {
	return context.WithValue(ctx, authenticatedKey, authenticated)
}

// IsAuthenticated reports whether the request context carries a valid admin
// session.
func IsAuthenticated(ctx context.Context) bool {
	v, _ := ctx.Value(authenticatedKey).(bool)
	return v
}

// SessionToken extracts the session token from the request cookie, or "".
func SessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetSessionCookie sets the admin session cookie for the given session.
func SetSessionCookie(w http.ResponseWriter, sess Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the admin session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
