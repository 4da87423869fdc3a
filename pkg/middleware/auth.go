package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// TokenValidator é satisfeito por authenticating.Authenticator
type TokenValidator interface {
	ValidateSession(ctx context.Context, tokenString string) (*domain.Claims, error)
}

type codedError interface {
	ErrorCode() string
}

var publicPaths = map[string]bool{
	"/v1/login":    true,
	"/v1/register": true,
	"/healthcheck": true,
	"/metrics":     true,
}

// websocket não permite headers no navegador, o token vem na query
const websocketPath = "/v1/ws"

func AuthMiddleware(authService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := extractToken(r)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateSession(r.Context(), tokenString)
			if err != nil {
				writeSessionError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeSessionError(w http.ResponseWriter, err error) {
	var coded codedError
	if !errors.As(err, &coded) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
		return
	}

	switch coded.ErrorCode() {
	case apiErrors.ErrUserDisabled:
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)
	case apiErrors.ErrExpiredToken:
		apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expirado", nil)
	case apiErrors.ErrDatabaseOperation:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao validar sessão", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
	}
}

func extractToken(r *http.Request) (string, bool) {
	if r.URL.Path == websocketPath {
		if token := r.URL.Query().Get("token"); token != "" {
			return token, true
		}
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}

// ClaimsFromContext devolve o usuário autenticado da requisição
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}

// WithClaims injeta claims no contexto, usado por testes e pelo websocket
func WithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyUser, claims)
}
