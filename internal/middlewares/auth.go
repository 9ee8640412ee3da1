package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ashokchittari/dentoCare/internal/jwt"
	"github.com/Ashokchittari/dentoCare/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// contextKey is an unexported type for keys in context.
type contextKey struct{}

var claimsKey = contextKey{}

// GetClaimsFromContext retrieves the verified claims stored by AuthMiddleware.
// Returns nil if the request did not pass through it.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}

// WithClaims returns a context carrying the given claims, as AuthMiddleware
// would store them.
func WithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

type authErrorResponse struct {
	Message string `json:"message"`
}

// AuthMiddleware returns a middleware that verifies the token cookie and
// stores the caller's claims in the request context. Missing, expired and
// invalid tokens all answer 401; anything else is a 500.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "No token, authorization denied")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				switch {
				case errors.Is(err, jwt.ErrTokenExpired):
					writeAuthError(w, http.StatusUnauthorized, "Token has expired")
				case errors.Is(err, jwt.ErrTokenInvalid), errors.Is(err, jwt.ErrTokenMissing):
					writeAuthError(w, http.StatusUnauthorized, "Invalid token")
				default:
					logger.Log.Errorw("token verification failed", "err", err)
					writeAuthError(w, http.StatusInternalServerError, "Server error")
				}
				return
			}

			ctx = context.WithValue(ctx, claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(authErrorResponse{Message: msg})
}
