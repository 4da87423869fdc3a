package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotConfigured indica que OPENAI_API_KEY não foi informada
var ErrNotConfigured = errors.New("integração com a OpenAI não configurada")

// ErrInvalidResponse indica que a IA respondeu fora do formato pedido
var ErrInvalidResponse = errors.New("resposta da IA em formato inválido")

const maxRecommendations = 8

var recommendationTypes = map[string]bool{
	"BUDGET": true, "BIDDING": true, "ASSETS": true, "AUDIENCE": true, "FEED": true, "GENERAL": true,
}

type Advisor interface {
	Enabled() bool
	GenerateRecommendations(ctx context.Context, snapshot domain.CampaignSnapshot) ([]*domain.Recommendation, error)
	AnalyzePerformance(ctx context.Context, snapshot domain.CampaignSnapshot) (*domain.PerformanceAnalysis, error)
	SuggestAssets(ctx context.Context, snapshot domain.CampaignSnapshot, group *domain.AssetGroup) (*domain.AssetSuggestion, error)
}

type OpenAIAdvisor struct {
	cfg    config.OpenAI
	Client openaiclient.Client
}

func New(cfg config.OpenAI, client openaiclient.Client) *OpenAIAdvisor {
	return &OpenAIAdvisor{
		cfg:    cfg,
		Client: client,
	}
}

func (s *OpenAIAdvisor) Enabled() bool {
	return s.Client != nil && s.cfg.APIKey != ""
}

type recommendationsResponse struct {
	Recommendations []struct {
		Type           string `json:"type"`
		Title          string `json:"title"`
		Description    string `json:"description"`
		ExpectedImpact string `json:"expected_impact"`
		Priority       string `json:"priority"`
	} `json:"recommendations"`
}

func (s *OpenAIAdvisor) GenerateRecommendations(ctx context.Context, snapshot domain.CampaignSnapshot) ([]*domain.Recommendation, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}

	prompt := describeCampaign(snapshot) + "\n" + fmt.Sprintf(recommendationsInstructions, maxRecommendations)

	var resp recommendationsResponse
	if err := s.complete(ctx, prompt, &resp); err != nil {
		return nil, err
	}

	recs := make([]*domain.Recommendation, 0, len(resp.Recommendations))
	for _, r := range resp.Recommendations {
		title := truncate(r.Title, 255)
		if title == "" || strings.TrimSpace(r.Description) == "" {
			continue
		}

		recType := strings.ToUpper(strings.TrimSpace(r.Type))
		if !recommendationTypes[recType] {
			recType = "GENERAL"
		}

		rec := &domain.Recommendation{
			CampaignID:  snapshot.Campaign.ID,
			Type:        recType,
			Title:       title,
			Description: strings.TrimSpace(r.Description),
			Priority:    domain.NormalizePriority(strings.ToUpper(r.Priority)),
			Status:      domain.RecommendationPending,
		}
		if impact := strings.TrimSpace(r.ExpectedImpact); impact != "" {
			rec.ExpectedImpact = &impact
		}

		recs = append(recs, rec)
		if len(recs) == maxRecommendations {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": snapshot.Campaign.ID,
		"count":       len(recs),
	}).Info("openai: recomendações geradas")

	return recs, nil
}

type analysisResponse struct {
	Summary    string   `json:"summary"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	NextSteps  []string `json:"next_steps"`
}

func (s *OpenAIAdvisor) AnalyzePerformance(ctx context.Context, snapshot domain.CampaignSnapshot) (*domain.PerformanceAnalysis, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}

	var resp analysisResponse
	if err := s.complete(ctx, describeCampaign(snapshot)+"\n"+analysisInstructions, &resp); err != nil {
		return nil, err
	}

	if strings.TrimSpace(resp.Summary) == "" {
		return nil, ErrInvalidResponse
	}

	return &domain.PerformanceAnalysis{
		CampaignID:  snapshot.Campaign.ID,
		Summary:     strings.TrimSpace(resp.Summary),
		Strengths:   nonNil(resp.Strengths),
		Weaknesses:  nonNil(resp.Weaknesses),
		NextSteps:   nonNil(resp.NextSteps),
		GeneratedAt: time.Now(),
	}, nil
}

type assetsResponse struct {
	Headlines     []string `json:"headlines"`
	LongHeadlines []string `json:"long_headlines"`
	Descriptions  []string `json:"descriptions"`
}

// SuggestAssets respeita os limites do Performance Max considerando os textos já existentes
func (s *OpenAIAdvisor) SuggestAssets(ctx context.Context, snapshot domain.CampaignSnapshot, group *domain.AssetGroup) (*domain.AssetSuggestion, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}

	snapshot.AssetGroups = []*domain.AssetGroup{group}
	prompt := describeCampaign(snapshot) + "\n" +
		fmt.Sprintf(assetsInstructions, group.Name, domain.MaxHeadlineLength, domain.MaxDescriptionLen)

	var resp assetsResponse
	if err := s.complete(ctx, prompt, &resp); err != nil {
		return nil, err
	}

	suggestion := &domain.AssetSuggestion{
		AssetGroupID:  group.ID,
		Headlines:     fitTexts(resp.Headlines, group.Headlines, domain.MaxHeadlineLength, domain.MaxHeadlines),
		LongHeadlines: fitTexts(resp.LongHeadlines, group.LongHeadlines, domain.MaxLongHeadlineLen, domain.MaxLongHeadlines),
		Descriptions:  fitTexts(resp.Descriptions, group.Descriptions, domain.MaxDescriptionLen, domain.MaxDescriptions),
	}

	if len(suggestion.Headlines)+len(suggestion.LongHeadlines)+len(suggestion.Descriptions) == 0 {
		return nil, ErrInvalidResponse
	}

	return suggestion, nil
}

func (s *OpenAIAdvisor) complete(ctx context.Context, prompt string, dest any) error {
	content, err := s.Client.CompleteJSON(ctx, systemPrompt, prompt)
	if err != nil {
		logrus.WithError(err).Error("openai: falha na chamada")
		return err
	}

	if err := json.Unmarshal([]byte(content), dest); err != nil {
		logrus.WithError(err).WithField("content", content).Warn("openai: resposta não é JSON válido")
		return errors.Wrap(ErrInvalidResponse, err.Error())
	}

	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
