package openai

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/openai/mocks"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func snapshot() domain.CampaignSnapshot {
	roas := 4.0
	return domain.CampaignSnapshot{
		Campaign: &domain.Campaign{ID: "Ab12Cd", Name: "PMax Verão", Type: domain.CampaignTypePerformanceMax, Status: domain.CampaignStatusEnabled, DailyBudget: 100, TargetROAS: &roas},
		Metrics: []*domain.CampaignMetric{
			{Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Impressions: 1000, Clicks: 20, Cost: 80, Conversions: 1, ConversionValue: 120, ROAS: 1.5},
		},
		Totals: domain.MetricTotals{Impressions: 1000, Clicks: 20, Cost: 80, ROAS: 1.5},
	}
}

func TestGenerateRecommendations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		CompleteJSON(gomock.Any(), systemPrompt, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, user string) (string, error) {
			assert.True(t, strings.Contains(user, "PMax Verão"))
			assert.True(t, strings.Contains(user, "2024-05-01"))
			return `{"recommendations":[
				{"type":"budget","title":"Aumentar orçamento","description":"Campanha limitada por orçamento","expected_impact":"+15% conversões","priority":"high"},
				{"type":"XPTO","title":"Revisar feed","description":"Títulos de produto curtos","priority":"urgente"},
				{"type":"ASSETS","title":"","description":"sem título é descartada"}
			]}`, nil
		})

	advisor := New(config.OpenAI{APIKey: "sk-test"}, client)

	recs, err := advisor.GenerateRecommendations(context.Background(), snapshot())
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "BUDGET", recs[0].Type)
	assert.Equal(t, domain.PriorityHigh, recs[0].Priority)
	assert.Equal(t, domain.RecommendationPending, recs[0].Status)
	assert.Equal(t, "Ab12Cd", recs[0].CampaignID)
	require.NotNil(t, recs[0].ExpectedImpact)

	assert.Equal(t, "GENERAL", recs[1].Type)
	assert.Equal(t, domain.PriorityMedium, recs[1].Priority)
	assert.Nil(t, recs[1].ExpectedImpact)
}

func TestGenerateRecommendations_RespostaInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().CompleteJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return("não é json", nil)

	advisor := New(config.OpenAI{APIKey: "sk-test"}, client)

	_, err := advisor.GenerateRecommendations(context.Background(), snapshot())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestAdvisor_NaoConfigurado(t *testing.T) {
	advisor := New(config.OpenAI{}, nil)

	_, err := advisor.AnalyzePerformance(context.Background(), snapshot())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSuggestAssets_RespeitaLimites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().CompleteJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(`{
		"headlines":["Frete grátis","Óculos com até 50% de desconto só nesta semana","Novidades de verão"],
		"long_headlines":[],
		"descriptions":["Parcele em até 10x sem juros"]
	}`, nil)

	advisor := New(config.OpenAI{APIKey: "sk-test"}, client)
	group := &domain.AssetGroup{ID: 5, Name: "Óculos de sol", Headlines: []string{"frete grátis"}}

	suggestion, err := advisor.SuggestAssets(context.Background(), snapshot(), group)
	require.NoError(t, err)

	assert.Equal(t, int64(5), suggestion.AssetGroupID)
	require.Len(t, suggestion.Headlines, 2)
	for _, h := range suggestion.Headlines {
		assert.LessOrEqual(t, len([]rune(h)), domain.MaxHeadlineLength)
	}
	assert.Equal(t, "Novidades de verão", suggestion.Headlines[1])
	assert.Empty(t, suggestion.LongHeadlines)
	assert.Len(t, suggestion.Descriptions, 1)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "ação", truncate("ação promocional", 4))
	assert.Equal(t, "curto", truncate("  curto  ", 30))
}
