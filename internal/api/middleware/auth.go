package middleware

import (
	"context"
	"net/http"

	"dormidine/internal/api/util"
)

type contextKey string

// UserEmailKey is the request-context key carrying the verified caller
// email.
const UserEmailKey contextKey = "user_email"

type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// Authenticate verifies the bearer token and stores the caller's email on
// the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, err := util.EmailFromRequest(m.secret, r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserEmailKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
