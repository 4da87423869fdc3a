package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	auditmocks "github.com/vfg2006/ads-optimizer-api/internal/usecases/auditing/mocks"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestListHistory(t *testing.T) {
	t.Run("repassa filtros e paginação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := auditmocks.NewMockAuditor(ctrl)

		service.EXPECT().
			List(gomock.Any(), adminClaims, gomock.Any()).
			DoAndReturn(func(_ any, _ *domain.Claims, filters domain.HistoryFilters) (*domain.HistoryPage, error) {
				require.NotNil(t, filters.EntityType)
				assert.Equal(t, "CAMPAIGN", *filters.EntityType)
				assert.Equal(t, 3, filters.Page)
				assert.Equal(t, 50, filters.PageSize)
				return &domain.HistoryPage{Items: []*domain.ChangeHistory{}, Page: 3, PageSize: 50}, nil
			})

		rec := serve(History(service), adminClaims, http.MethodGet, "/v1/history?entity_type=campaign&page=3&page_size=50", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	tests := []struct {
		name string
		page string
	}{
		{name: "página gigante", page: "4611686018427387904"},
		{name: "acima do limite", page: "10001"},
		{name: "página zero", page: "0"},
		{name: "não numérica", page: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := auditmocks.NewMockAuditor(ctrl)

			rec := serve(History(service), adminClaims, http.MethodGet, "/v1/history?page="+tt.page, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
		})
	}
}
