package campaigning

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	auditmocks "github.com/vfg2006/ads-optimizer-api/internal/usecases/auditing/mocks"
	errorcodes "github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	campaigns   *mocks.MockCampaignRepository
	clients     *mocks.MockClientRepository
	metrics     *mocks.MockCampaignMetricRepository
	assetGroups *mocks.MockAssetGroupRepository
	auditor     *auditmocks.MockAuditor
	svc         CampaignManager
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		campaigns:   mocks.NewMockCampaignRepository(ctrl),
		clients:     mocks.NewMockClientRepository(ctrl),
		metrics:     mocks.NewMockCampaignMetricRepository(ctrl),
		assetGroups: mocks.NewMockAssetGroupRepository(ctrl),
		auditor:     auditmocks.NewMockAuditor(ctrl),
	}
	f.svc = NewService(f.campaigns, f.clients, f.metrics, f.assetGroups, f.auditor)
	return f
}

var (
	manager    = &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager}
	clientUser = &domain.Claims{UserID: 3, UserRoleID: domain.RoleClient}
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func codeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("cria campanha PMax habilitada", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().GetByID(ctx, "cli1", domain.ScopeFor(manager)).Return(&domain.Client{ID: "cli1", Name: "Loja", ManagerID: 2}, nil)
		f.campaigns.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.Campaign) error {
			assert.Equal(t, domain.CampaignStatusEnabled, c.Status)
			assert.Equal(t, domain.CampaignTypePerformanceMax, c.Type)
			assert.Equal(t, 150.0, c.DailyBudget)
			require.NotNil(t, c.StartDate)
			assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *c.StartDate)
			return nil
		})
		f.auditor.EXPECT().Record(ctx, gomock.Any())

		campaign, err := f.svc.Create(ctx, manager, &domain.CampaignRequest{
			ClientID:    strPtr("cli1"),
			Name:        strPtr("PMax Verão"),
			DailyBudget: floatPtr(150),
			StartDate:   strPtr("2024-05-01"),
		})
		require.NoError(t, err)
		assert.Equal(t, "PMax Verão", campaign.Name)
		assert.Equal(t, "Loja", campaign.ClientName)
	})

	t.Run("sem nome retorna erro de validação", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, manager, &domain.CampaignRequest{ClientID: strPtr("cli1")})
		assert.ErrorIs(t, err, ErrInvalidCampaign)
		assert.Equal(t, errorcodes.ErrMissingRequiredData, codeOf(err))
	})

	t.Run("cliente de outro gerente", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().GetByID(ctx, "cli9", domain.ScopeFor(manager)).Return(nil, nil)

		_, err := f.svc.Create(ctx, manager, &domain.CampaignRequest{ClientID: strPtr("cli9"), Name: strPtr("X")})
		assert.ErrorIs(t, err, ErrClientNotFound)
		assert.Equal(t, errorcodes.ErrResourceNotFound, codeOf(err))
	})

	t.Run("datas invertidas", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().GetByID(ctx, "cli1", gomock.Any()).Return(&domain.Client{ID: "cli1"}, nil)

		_, err := f.svc.Create(ctx, manager, &domain.CampaignRequest{
			ClientID: strPtr("cli1"), Name: strPtr("X"),
			StartDate: strPtr("2024-05-10"), EndDate: strPtr("2024-05-01"),
		})
		assert.ErrorIs(t, err, ErrInvalidCampaign)
	})

	t.Run("usuário cliente não cria", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, clientUser, &domain.CampaignRequest{})
		assert.ErrorIs(t, err, ErrForbiddenOperation)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	paused := domain.CampaignStatusPaused
	invalid := domain.CampaignStatus("DRAFT")

	t.Run("pausa campanha e registra histórico", func(t *testing.T) {
		f := newFixture(t)
		f.campaigns.EXPECT().GetByID(ctx, "c1", domain.ScopeFor(manager)).Return(&domain.Campaign{ID: "c1", Name: "X", Status: domain.CampaignStatusEnabled}, nil)
		f.campaigns.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.auditor.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, e *domain.ChangeHistory) {
			assert.Equal(t, domain.CampaignStatusPaused, e.Changes["status"])
			assert.Len(t, e.Changes, 1)
		})

		c, err := f.svc.Update(ctx, manager, "c1", &domain.CampaignRequest{Status: &paused})
		require.NoError(t, err)
		assert.Equal(t, paused, c.Status)
	})

	t.Run("status inválido", func(t *testing.T) {
		f := newFixture(t)
		f.campaigns.EXPECT().GetByID(ctx, "c1", gomock.Any()).Return(&domain.Campaign{ID: "c1", Name: "X"}, nil)

		_, err := f.svc.Update(ctx, manager, "c1", &domain.CampaignRequest{Status: &invalid})
		assert.ErrorIs(t, err, ErrInvalidCampaign)
	})

	t.Run("fora do escopo", func(t *testing.T) {
		f := newFixture(t)
		f.campaigns.EXPECT().GetByID(ctx, "c2", gomock.Any()).Return(nil, nil)

		_, err := f.svc.Update(ctx, manager, "c2", &domain.CampaignRequest{Status: &paused})
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.campaigns.EXPECT().GetByID(ctx, "c1", gomock.Any()).Return(&domain.Campaign{ID: "c1", Name: "X"}, nil)
	f.campaigns.EXPECT().Delete(ctx, "c1").Return(repository.ErrNotFound)

	err := f.svc.Delete(ctx, manager, "c1")
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestService_UpsertMetric(t *testing.T) {
	ctx := context.Background()

	t.Run("deriva indicadores", func(t *testing.T) {
		f := newFixture(t)
		f.campaigns.EXPECT().GetByID(ctx, "c1", gomock.Any()).Return(&domain.Campaign{ID: "c1"}, nil)
		f.metrics.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		f.auditor.EXPECT().Record(ctx, gomock.Any())

		m, err := f.svc.UpsertMetric(ctx, manager, "c1", &domain.MetricRequest{
			Date: "2024-05-02", Impressions: 1000, Clicks: 20, Cost: 40, Conversions: 2, ConversionValue: 200,
		})
		require.NoError(t, err)
		assert.InDelta(t, 2.0, m.CTR, 0.0001)
		assert.InDelta(t, 2.0, m.CPC, 0.0001)
		assert.InDelta(t, 5.0, m.ROAS, 0.0001)
		assert.InDelta(t, 20.0, m.CPA, 0.0001)
	})

	tests := []struct {
		name string
		req  domain.MetricRequest
		code string
	}{
		{name: "sem data", req: domain.MetricRequest{}, code: errorcodes.ErrMissingRequiredData},
		{name: "data inválida", req: domain.MetricRequest{Date: "02/05/2024"}, code: errorcodes.ErrInvalidFormat},
		{name: "valor negativo", req: domain.MetricRequest{Date: "2024-05-02", Cost: -1}, code: errorcodes.ErrInvalidFormat},
		{name: "cliques acima de impressões", req: domain.MetricRequest{Date: "2024-05-02", Impressions: 1, Clicks: 2}, code: errorcodes.ErrInvalidFormat},
		{name: "parcela acima de 100", req: domain.MetricRequest{Date: "2024-05-02", BudgetLostImpressionShare: floatPtr(120)}, code: errorcodes.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := tt.req
			_, err := f.svc.UpsertMetric(ctx, manager, "c1", &req)
			assert.ErrorIs(t, err, ErrInvalidMetric)
			assert.Equal(t, tt.code, codeOf(err))
		})
	}
}

func TestService_GetMetrics(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	rows := []*domain.CampaignMetric{
		{Impressions: 100, Clicks: 10, Cost: 10, ConversionValue: 30},
		{Impressions: 100, Clicks: 0, Cost: 10, ConversionValue: 10},
	}
	f.campaigns.EXPECT().GetByID(ctx, "c1", domain.ScopeFor(clientUser)).Return(&domain.Campaign{ID: "c1"}, nil)
	f.metrics.EXPECT().ListByCampaign(ctx, "c1", domain.MetricFilters{}).Return(rows, nil)

	report, err := f.svc.GetMetrics(ctx, clientUser, "c1", domain.MetricFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(200), report.Totals.Impressions)
	assert.InDelta(t, 2.0, report.Totals.ROAS, 0.0001)
	assert.InDelta(t, 5.0, report.Totals.CTR, 0.0001)
}

func TestService_AssetGroups(t *testing.T) {
	ctx := context.Background()

	t.Run("cria com limites válidos", func(t *testing.T) {
		f := newFixture(t)
		f.campaigns.EXPECT().GetByID(ctx, "c1", gomock.Any()).Return(&domain.Campaign{ID: "c1"}, nil)
		f.assetGroups.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, g *domain.AssetGroup) error {
			g.ID = 11
			assert.Equal(t, "ENABLED", g.Status)
			return nil
		})
		f.auditor.EXPECT().Record(ctx, gomock.Any())

		headlines := []string{"Frete grátis", "Ofertas de verão"}
		g, err := f.svc.CreateAssetGroup(ctx, manager, "c1", &domain.AssetGroupRequest{Name: strPtr("Geral"), Headlines: &headlines})
		require.NoError(t, err)
		assert.Equal(t, int64(11), g.ID)
	})

	t.Run("título acima do limite", func(t *testing.T) {
		f := newFixture(t)
		f.campaigns.EXPECT().GetByID(ctx, "c1", gomock.Any()).Return(&domain.Campaign{ID: "c1"}, nil)

		headlines := []string{strings.Repeat("a", domain.MaxHeadlineLength+1)}
		_, err := f.svc.CreateAssetGroup(ctx, manager, "c1", &domain.AssetGroupRequest{Name: strPtr("Geral"), Headlines: &headlines})
		assert.ErrorIs(t, err, ErrInvalidAssetGroup)
	})

	t.Run("grupo de campanha fora do escopo é 404", func(t *testing.T) {
		f := newFixture(t)
		f.assetGroups.EXPECT().FindByID(ctx, int64(5)).Return(&domain.AssetGroup{ID: 5, CampaignID: "c9"}, nil)
		f.campaigns.EXPECT().GetByID(ctx, "c9", gomock.Any()).Return(nil, nil)

		_, err := f.svc.GetAssetGroup(ctx, manager, 5)
		assert.ErrorIs(t, err, ErrAssetGroupNotFound)
	})

	t.Run("remove pelo id da campanha", func(t *testing.T) {
		f := newFixture(t)
		f.assetGroups.EXPECT().FindByID(ctx, int64(5)).Return(&domain.AssetGroup{ID: 5, CampaignID: "c1", Name: "G"}, nil)
		f.campaigns.EXPECT().GetByID(ctx, "c1", gomock.Any()).Return(&domain.Campaign{ID: "c1"}, nil)
		f.assetGroups.EXPECT().Delete(ctx, "c1", int64(5)).Return(nil)
		f.auditor.EXPECT().Record(ctx, gomock.Any())

		assert.NoError(t, f.svc.DeleteAssetGroup(ctx, manager, 5))
	})
}
