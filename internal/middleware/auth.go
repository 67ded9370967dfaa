package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sns-consultancy/Travel-Planner-Backend/internal/crypto"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/model"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/repository"
)

type contextKey string

const userKey contextKey = "user"

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header and resolves its subject against the user store.
//
// A token whose subject no longer resolves to a user is rejected with the
// same response as an invalid token, so callers cannot probe which
// identifiers exist. All rejections carry a WWW-Authenticate: Bearer header.
func JWTAuth(secret string, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeUnauthorized(w, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeUnauthorized(w, "invalid authorization format")
				return
			}

			subject, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			user, err := users.GetByName(r.Context(), subject)
			if err != nil {
				// Unknown subject is indistinguishable from a bad token.
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(userKey).(*model.User)
	return u, ok
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
