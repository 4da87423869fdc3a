package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/internal/api/handler/router"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/scheduler"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/alerting"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/campaigning"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/log"
	"github.com/vfg2006/ads-optimizer-api/pkg/middleware"
)

var (
	adminClaims   = &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
	managerClaims = &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager}
	clientClaims  = &domain.Claims{UserID: 3, UserRoleID: domain.RoleClient}
)

func init() {
	log.SetupTestLogger()
}

// serve monta o router com as rotas e executa a requisição como o usuário informado
func serve(routes []router.Route, claims *domain.Claims, method, path, body string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "erro com código",
			err:        &campaigning.DomainError{Err: campaigning.ErrCampaignNotFound, Code: apiErrors.ErrResourceNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrResourceNotFound,
		},
		{
			name:       "sentinela de alerta",
			err:        alerting.ErrAlertNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrResourceNotFound,
		},
		{
			name:       "filtros inválidos embrulhados",
			err:        errors.Join(errors.New("severity"), alerting.ErrInvalidFilters),
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "agendador ocupado",
			err:        scheduler.ErrAlreadyRunning,
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrResourceConflict,
		},
		{
			name:       "erro desconhecido",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(rec, req, tt.err, "falhou")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestHandleErrorHidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	handleError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: senha do banco"), "Erro ao listar")

	apiErr := decodeError(t, rec)
	assert.Equal(t, "Erro ao listar", apiErr.Message)
}

func TestRouterNotFoundIsJSON(t *testing.T) {
	rec := serve(nil, nil, http.MethodGet, "/v1/nada", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceNotFound, decodeError(t, rec).Code)
}

func TestHealthcheck(t *testing.T) {
	rec := serve(Healthcheck(nil), nil, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
