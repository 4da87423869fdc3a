package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/campaigning"
	campaignmocks "github.com/vfg2006/ads-optimizer-api/internal/usecases/campaigning/mocks"
	reportmocks "github.com/vfg2006/ads-optimizer-api/internal/usecases/reporting/mocks"
	syncmocks "github.com/vfg2006/ads-optimizer-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestCreateCampaign(t *testing.T) {
	t.Run("cria e devolve 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := campaignmocks.NewMockCampaignManager(ctrl)

		service.EXPECT().
			Create(gomock.Any(), managerClaims, gomock.Any()).
			DoAndReturn(func(_ any, _ *domain.Claims, req *domain.CampaignRequest) (*domain.Campaign, error) {
				require.NotNil(t, req.Name)
				assert.Equal(t, "PMax Verão", *req.Name)
				return &domain.Campaign{ID: "abc123", Name: *req.Name, Status: domain.CampaignStatusEnabled}, nil
			})

		rec := serve(Campaigns(service, nil), managerClaims, http.MethodPost, "/v1/campaigns",
			`{"client_id":"cli001","name":"PMax Verão","daily_budget":100}`)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var campaign domain.Campaign
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &campaign))
		assert.Equal(t, "abc123", campaign.ID)
	})

	t.Run("nome ausente devolve 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := campaignmocks.NewMockCampaignManager(ctrl)

		service.EXPECT().Create(gomock.Any(), managerClaims, gomock.Any()).
			Return(nil, &campaigning.DomainError{Err: campaigning.ErrInvalidCampaign, Code: apiErrors.ErrMissingRequiredData, Details: "Nome é obrigatório"})

		rec := serve(Campaigns(service, nil), managerClaims, http.MethodPost, "/v1/campaigns", `{"client_id":"cli001"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})

	t.Run("usuário cliente não cria campanha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := campaignmocks.NewMockCampaignManager(ctrl)

		rec := serve(Campaigns(service, nil), clientClaims, http.MethodPost, "/v1/campaigns", `{"name":"x"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("corpo inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := campaignmocks.NewMockCampaignManager(ctrl)

		rec := serve(Campaigns(service, nil), managerClaims, http.MethodPost, "/v1/campaigns", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})
}

func TestListCampaignsFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := campaignmocks.NewMockCampaignManager(ctrl)

	service.EXPECT().
		List(gomock.Any(), clientClaims, gomock.Any()).
		DoAndReturn(func(_ any, _ *domain.Claims, filters domain.CampaignFilters) ([]*domain.Campaign, error) {
			require.NotNil(t, filters.Status)
			assert.Equal(t, domain.CampaignStatusPaused, *filters.Status)
			require.NotNil(t, filters.ClientID)
			assert.Equal(t, "cli001", *filters.ClientID)
			return []*domain.Campaign{}, nil
		})

	rec := serve(Campaigns(service, nil), clientClaims, http.MethodGet, "/v1/campaigns?status=paused&client_id=cli001", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(Campaigns(service, nil), clientClaims, http.MethodGet, "/v1/campaigns?status=ARCHIVED", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCampaignMetricsInvalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := campaignmocks.NewMockCampaignManager(ctrl)

	rec := serve(Campaigns(service, nil), managerClaims, http.MethodGet, "/v1/campaigns/abc123/metrics?start_date=01-02-2024", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
}

func TestSyncCampaignMetricsPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	synchronizer := syncmocks.NewMockSynchronizer(ctrl)

	synchronizer.EXPECT().
		SyncMetrics(gomock.Any(), managerClaims, "abc123", domain.DateRange{
			StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
		}).
		Return(7, nil)

	rec := serve(Campaigns(nil, synchronizer), managerClaims, http.MethodPost,
		"/v1/campaigns/abc123/metrics/sync?start_date=2024-03-01&end_date=2024-03-07", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp MetricsSyncResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Days)
	assert.Equal(t, "2024-03-01", resp.StartDate)
}

func TestGetDashboard(t *testing.T) {
	t.Run("repassa filtros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reportmocks.NewMockReporter(ctrl)

		service.EXPECT().
			GetDashboard(gomock.Any(), managerClaims, gomock.Any()).
			DoAndReturn(func(_ any, _ *domain.Claims, filters domain.DashboardFilters) (*domain.Dashboard, error) {
				assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), filters.StartDate)
				assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), filters.EndDate)
				require.NotNil(t, filters.ClientID)
				assert.Nil(t, filters.CampaignID)
				return &domain.Dashboard{StartDate: filters.StartDate, EndDate: filters.EndDate}, nil
			})

		rec := serve(Dashboard(service), managerClaims, http.MethodGet,
			"/v1/dashboard?start_date=2024-03-01&end_date=2024-03-31&client_id=cli001", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("período invertido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reportmocks.NewMockReporter(ctrl)

		rec := serve(Dashboard(service), managerClaims, http.MethodGet,
			"/v1/dashboard?start_date=2024-03-31&end_date=2024-03-01", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
