package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
)

type fakeValidator struct {
	token  string
	claims *domain.Claims
}

type sessionError struct{ code string }

func (e sessionError) Error() string     { return e.code }
func (e sessionError) ErrorCode() string { return e.code }

func (f fakeValidator) ValidateSession(_ context.Context, token string) (*domain.Claims, error) {
	switch token {
	case f.token:
		return f.claims, nil
	case "disabled":
		return nil, sessionError{code: apiErrors.ErrUserDisabled}
	case "db-down":
		return nil, sessionError{code: apiErrors.ErrDatabaseOperation}
	}
	return nil, errors.New("invalid")
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserID: 7, UserRoleID: domain.RoleManager}
	mw := AuthMiddleware(fakeValidator{token: "good", claims: claims})

	var seen *domain.Claims
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantClaims bool
	}{
		{name: "rota pública", path: "/v1/login", wantStatus: http.StatusOK},
		{name: "sem header", path: "/v1/clients", wantStatus: http.StatusUnauthorized},
		{name: "sem prefixo Bearer", path: "/v1/clients", header: "good", wantStatus: http.StatusUnauthorized},
		{name: "token inválido", path: "/v1/clients", header: "Bearer bad", wantStatus: http.StatusUnauthorized},
		{name: "token válido", path: "/v1/clients", header: "Bearer good", wantStatus: http.StatusOK, wantClaims: true},
		{name: "websocket com token na query", path: "/v1/ws?token=good", wantStatus: http.StatusOK, wantClaims: true},
		{name: "query ignorada fora do websocket", path: "/v1/clients?token=good", wantStatus: http.StatusUnauthorized},
		{name: "usuário desativado", path: "/v1/clients", header: "Bearer disabled", wantStatus: http.StatusForbidden},
		{name: "websocket de usuário desativado", path: "/v1/ws?token=disabled", wantStatus: http.StatusForbidden},
		{name: "falha ao consultar usuário", path: "/v1/clients", header: "Bearer db-down", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantClaims {
				assert.Equal(t, claims, seen)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		mw         func(http.Handler) http.Handler
		wantStatus int
	}{
		{name: "sem claims", mw: AllRoles(), wantStatus: http.StatusUnauthorized},
		{name: "cliente em rota de admin", claims: &domain.Claims{UserRoleID: domain.RoleClient}, mw: AdminOnly(), wantStatus: http.StatusForbidden},
		{name: "gerente em rota de gerente", claims: &domain.Claims{UserRoleID: domain.RoleManager}, mw: ManagerOrAdmin(), wantStatus: http.StatusOK},
		{name: "cliente em rota geral", claims: &domain.Claims{UserRoleID: domain.RoleClient}, mw: AllRoles(), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/x", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.mw(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	h := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/clients", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter("login", 1, 2)
	h := rl.Middleware()(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/v1/login", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// outro IP tem o próprio balde
	req := httptest.NewRequest(http.MethodPost, "/v1/login", nil)
	req.RemoteAddr = "10.0.0.2:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 2, rl.Cleanup(time.Now().Add(time.Hour)))
}

func TestClientKeyPrefersUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithClaims(context.Background(), &domain.Claims{UserID: 9}))
	assert.Equal(t, "user:9", clientKey(req))
}

func TestLogPanicMiddleware(t *testing.T) {
	h := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/x", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingMiddlewareSetsCorrelationID(t *testing.T) {
	h := LoggingMiddleware()(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
}
