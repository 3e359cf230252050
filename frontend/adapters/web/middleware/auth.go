package middleware

import (
	"context"
	"keyword-service/frontend/core"
	"net/http"
	"strings"
)

const (
	CookieName = "keywords_token"

	loginPath = "/login"
)

// RequireToken lets through requests carrying the admin session cookie and
// stores its token in the request context. The analyzer verifies the token
// itself when the admin pages call it.
func RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := r.Cookie(CookieName)
		if err != nil || strings.TrimSpace(token.Value) == "" {
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}
		r = r.WithContext(context.WithValue(r.Context(), core.JwtTokenContextKey, token.Value))
		next.ServeHTTP(w, r)
	})
}
