package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/recommending"
	recmocks "github.com/vfg2006/ads-optimizer-api/internal/usecases/recommending/mocks"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func noLimit() *middleware.RateLimiter {
	return middleware.NewRateLimiter("test", 6000, 100)
}

func TestApplyRecommendation(t *testing.T) {
	t.Run("pendente vira aplicada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := recmocks.NewMockRecommendationManager(ctrl)

		service.EXPECT().Apply(gomock.Any(), managerClaims, int64(5)).
			Return(&domain.Recommendation{ID: 5, Status: domain.RecommendationApplied}, nil)

		rec := serve(Recommendations(service, noLimit()), managerClaims, http.MethodPost, "/v1/recommendations/5/apply", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"APPLIED"`)
	})

	t.Run("já aplicada devolve 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := recmocks.NewMockRecommendationManager(ctrl)

		service.EXPECT().Apply(gomock.Any(), managerClaims, int64(5)).
			Return(nil, &recommending.DomainError{Err: recommending.ErrInvalidTransition, Code: apiErrors.ErrInvalidTransition})

		rec := serve(Recommendations(service, noLimit()), managerClaims, http.MethodPost, "/v1/recommendations/5/apply", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidTransition, decodeError(t, rec).Code)
	})
}

func TestRejectRecommendation(t *testing.T) {
	t.Run("com motivo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := recmocks.NewMockRecommendationManager(ctrl)

		service.EXPECT().Reject(gomock.Any(), managerClaims, int64(5), "fora do orçamento").
			Return(&domain.Recommendation{ID: 5, Status: domain.RecommendationRejected}, nil)

		rec := serve(Recommendations(service, noLimit()), managerClaims, http.MethodPost,
			"/v1/recommendations/5/reject", `{"reason":"fora do orçamento"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("sem corpo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := recmocks.NewMockRecommendationManager(ctrl)

		service.EXPECT().Reject(gomock.Any(), managerClaims, int64(5), "").
			Return(&domain.Recommendation{ID: 5, Status: domain.RecommendationRejected}, nil)

		rec := serve(Recommendations(service, noLimit()), managerClaims, http.MethodPost, "/v1/recommendations/5/reject", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGenerateRecommendations(t *testing.T) {
	t.Run("IA não configurada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := recmocks.NewMockRecommendationManager(ctrl)

		service.EXPECT().Generate(gomock.Any(), managerClaims, "abc123").
			Return(nil, &recommending.DomainError{Err: recommending.ErrAdvisorUnavailable, Code: apiErrors.ErrNotConfigured})

		rec := serve(Recommendations(service, noLimit()), managerClaims, http.MethodPost, "/v1/campaigns/abc123/recommendations/generate", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("limite de requisições de IA", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := recmocks.NewMockRecommendationManager(ctrl)

		service.EXPECT().Generate(gomock.Any(), managerClaims, "abc123").
			Return([]*domain.Recommendation{{ID: 1}}, nil).Times(1)

		routes := Recommendations(service, middleware.NewRateLimiter("ai", 1, 1))

		first := serve(routes, managerClaims, http.MethodPost, "/v1/campaigns/abc123/recommendations/generate", "")
		second := serve(routes, managerClaims, http.MethodPost, "/v1/campaigns/abc123/recommendations/generate", "")

		assert.Equal(t, http.StatusCreated, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
	})
}

func TestListRecommendationsInvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := recmocks.NewMockRecommendationManager(ctrl)

	rec := serve(Recommendations(service, noLimit()), clientClaims, http.MethodGet, "/v1/recommendations?status=DONE", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
