package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/DevKaiky/appfit-API/internal/response"
	"github.com/DevKaiky/appfit-API/internal/router"
	"github.com/DevKaiky/appfit-API/internal/token"
)

// userContextKey is the key for the authenticated identity in the request
// context. An empty struct key cannot collide with other packages.
type userContextKey struct{}

// UserContext holds the identity extracted from a verified token.
type UserContext struct {
	UserID uint64
	Email  string
}

var ErrNoUserContext = errors.New("user context not found")

// AuthGate guards protected routes: it extracts the bearer token, verifies
// it, and injects the resulting identity into the request context. Identity
// travels only through the per-request context, never shared state, so
// concurrent requests cannot observe each other's user.
type AuthGate struct {
	tokens *token.Service
}

func NewAuthGate(tokens *token.Service) *AuthGate {
	return &AuthGate{tokens: tokens}
}

// Protect wraps a handler so it only runs for authenticated requests.
func (g *AuthGate) Protect(next router.HandlerFunc) router.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params []string) {
		raw := extractToken(r.Header.Get("Authorization"))
		if raw == "" {
			response.Error(w, http.StatusUnauthorized, "Token não enviado")
			return
		}

		claims, err := g.tokens.Verify(raw)
		if err != nil {
			// Every verification failure collapses to the same
			// client-facing message.
			response.Error(w, http.StatusUnauthorized, "Token inválido ou expirado")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey{}, &UserContext{
			UserID: claims.UserID,
			Email:  claims.Email,
		})
		next(w, r.WithContext(ctx), params)
	}
}

// extractToken pulls the token out of "Bearer <token>". The scheme is
// case-insensitive; anything else yields an empty string.
func extractToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// UserFromContext retrieves the authenticated identity set by Protect.
func UserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(userContextKey{}).(*UserContext)
	if !ok {
		return nil, ErrNoUserContext
	}
	return user, nil
}
