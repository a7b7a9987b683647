package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/pass-vault/internal/jwt"
	"github.com/sbilibin2017/pass-vault/internal/logger"
)

// Identity is the verified identity attached to authenticated requests.
type Identity struct {
	UserID int64
	Email  string
}

// Tokener defines the minimal interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware verifies the session token and stores the resulting
// identity in the request context. Missing, tampered and expired
// tokens all produce the same bare 401.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = SetIdentityToContext(ctx, Identity{
				UserID: claims.UserID,
				Email:  claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var identityKey = contextKey{}

// SetIdentityToContext stores a verified identity in the context
func SetIdentityToContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentityFromContext retrieves the verified identity from the
// context. ok is false on requests that did not pass AuthMiddleware.
func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
