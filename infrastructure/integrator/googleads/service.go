package googleads

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/cache"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

// ErrNotConfigured indica que as credenciais do Google Ads não foram informadas
var ErrNotConfigured = errors.New("integração com o Google Ads não configurada")

type Integrator interface {
	Enabled() bool
	ListCampaigns(ctx context.Context, customerID string) ([]domain.RemoteCampaign, error)
	GetCampaignDailyMetrics(ctx context.Context, customerID, campaignID string, period domain.DateRange) ([]*domain.CampaignMetric, error)
	ListAssetGroups(ctx context.Context, customerID, campaignID string) ([]domain.RemoteAssetGroup, error)
	GetSearchTerms(ctx context.Context, customerID, campaignID string, period domain.DateRange) ([]domain.SearchTerm, error)
	GetListingGroups(ctx context.Context, customerID, campaignID string) ([]domain.ListingGroup, error)
}

type GoogleAdsIntegrator struct {
	cfg    config.GoogleAds
	Client googleadsclient.Client
	cache  cache.Cache
}

func New(cfg config.GoogleAds, client googleadsclient.Client, c cache.Cache) *GoogleAdsIntegrator {
	if c == nil {
		c = cache.Noop{}
	}

	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
		cache:  c,
	}
}

func (s *GoogleAdsIntegrator) Enabled() bool {
	return s.Client != nil && s.cfg.DeveloperToken != "" && s.cfg.RefreshToken != ""
}

// ListCampaigns lista as campanhas da conta; usado na pré-visualização antes da importação
func (s *GoogleAdsIntegrator) ListCampaigns(ctx context.Context, customerID string) ([]domain.RemoteCampaign, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}

	key := fmt.Sprintf("gads:campaigns:%s", config.NormalizeCustomerID(customerID))

	campaigns, err := cache.GetOrLoad(ctx, s.cache, key, func() ([]domain.RemoteCampaign, error) {
		return s.Client.ListCampaigns(ctx, customerID)
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("googleads: falha ao listar campanhas")
		return nil, err
	}

	return campaigns, nil
}

func (s *GoogleAdsIntegrator) GetCampaignDailyMetrics(ctx context.Context, customerID, campaignID string, period domain.DateRange) ([]*domain.CampaignMetric, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}

	metrics, err := s.Client.GetCampaignDailyMetrics(ctx, customerID, campaignID, period)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id":          customerID,
			"campaign_external_id": campaignID,
			"error":                err.Error(),
		}).Error("googleads: falha ao buscar métricas diárias")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_external_id": campaignID,
		"days":                 len(metrics),
	}).Debug("googleads: métricas diárias obtidas")

	return metrics, nil
}

func (s *GoogleAdsIntegrator) ListAssetGroups(ctx context.Context, customerID, campaignID string) ([]domain.RemoteAssetGroup, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}

	groups, err := s.Client.ListAssetGroups(ctx, customerID, campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_external_id": campaignID,
			"error":                err.Error(),
		}).Error("googleads: falha ao listar grupos de recursos")
		return nil, err
	}

	return groups, nil
}

func (s *GoogleAdsIntegrator) GetSearchTerms(ctx context.Context, customerID, campaignID string, period domain.DateRange) ([]domain.SearchTerm, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}

	key := fmt.Sprintf("gads:search-terms:%s:%s:%s:%s", config.NormalizeCustomerID(customerID), campaignID,
		period.StartDate.Format(time.DateOnly), period.EndDate.Format(time.DateOnly))

	return cache.GetOrLoad(ctx, s.cache, key, func() ([]domain.SearchTerm, error) {
		return s.Client.GetSearchTerms(ctx, customerID, campaignID, period)
	})
}

func (s *GoogleAdsIntegrator) GetListingGroups(ctx context.Context, customerID, campaignID string) ([]domain.ListingGroup, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}

	key := fmt.Sprintf("gads:listing-groups:%s:%s", config.NormalizeCustomerID(customerID), campaignID)

	return cache.GetOrLoad(ctx, s.cache, key, func() ([]domain.ListingGroup, error) {
		return s.Client.GetListingGroups(ctx, customerID, campaignID)
	})
}
