package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/203225014/WB-calc/internal/model"
	"github.com/203225014/WB-calc/internal/service"
)

type contextKey string

const userKey contextKey = "user"

// UserResolver turns a bearer token into the account it belongs to.
type UserResolver interface {
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

// Authenticate returns middleware that validates the Authorization header and
// loads the referenced user into the request context. Every rejection is a
// 401 carrying a WWW-Authenticate challenge.
func Authenticate(resolver UserResolver) func(http.Handler) http.Handler {
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

			user, err := resolver.ResolveToken(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, service.ErrTokenExpired):
					writeUnauthorized(w, "token expired")
				case errors.Is(err, service.ErrUnknownUser):
					writeUnauthorized(w, "unknown user")
				default:
					writeUnauthorized(w, "invalid token")
				}
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
