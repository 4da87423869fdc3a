package reporting

import (
	"context"
	"fmt"

	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const (
	topCampaignsLimit = 5
	maxPeriodDays     = 366
)

type Reporter interface {
	GetDashboard(ctx context.Context, requester *domain.Claims, filters domain.DashboardFilters) (*domain.Dashboard, error)
}

type Service struct {
	campaignRepo       repository.CampaignRepository
	metricRepo         repository.CampaignMetricRepository
	alertRepo          repository.AlertRepository
	recommendationRepo repository.RecommendationRepository
}

func NewService(
	campaignRepo repository.CampaignRepository,
	metricRepo repository.CampaignMetricRepository,
	alertRepo repository.AlertRepository,
	recommendationRepo repository.RecommendationRepository,
) Reporter {
	return &Service{
		campaignRepo:       campaignRepo,
		metricRepo:         metricRepo,
		alertRepo:          alertRepo,
		recommendationRepo: recommendationRepo,
	}
}

// GetDashboard consolida o período pedido e compara com a janela anterior de mesmo tamanho
func (s *Service) GetDashboard(ctx context.Context, requester *domain.Claims, filters domain.DashboardFilters) (*domain.Dashboard, error) {
	if filters.EndDate.Before(filters.StartDate) {
		return nil, fmt.Errorf("%w: end_date anterior a start_date", ErrInvalidPeriod)
	}
	if filters.EndDate.Sub(filters.StartDate).Hours()/24 > maxPeriodDays {
		return nil, fmt.Errorf("%w: máximo de %d dias", ErrInvalidPeriod, maxPeriodDays)
	}

	scope := domain.ScopeFor(requester)

	prevFilters := filters
	prevFilters.StartDate, prevFilters.EndDate = filters.PreviousPeriod()

	dashboard := &domain.Dashboard{
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
	}

	var previous []*domain.DailyPoint

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		daily, err := s.metricRepo.DailySeries(gctx, scope, filters)
		if err != nil {
			return err
		}
		dashboard.Daily = daily
		return nil
	})

	g.Go(func() error {
		daily, err := s.metricRepo.DailySeries(gctx, scope, prevFilters)
		if err != nil {
			return err
		}
		previous = daily
		return nil
	})

	g.Go(func() error {
		top, err := s.metricRepo.TopCampaigns(gctx, scope, filters, topCampaignsLimit)
		if err != nil {
			return err
		}
		dashboard.TopCampaigns = top
		return nil
	})

	g.Go(func() error {
		count, err := s.activeCampaigns(gctx, scope, filters)
		if err != nil {
			return err
		}
		dashboard.ActiveCampaigns = count
		return nil
	})

	g.Go(func() error {
		count, err := s.alertRepo.UnreadCount(gctx, scope, filters.ClientID)
		if err != nil {
			return err
		}
		dashboard.UnreadAlerts = count
		return nil
	})

	g.Go(func() error {
		count, err := s.recommendationRepo.CountPending(gctx, scope, filters.ClientID)
		if err != nil {
			return err
		}
		dashboard.PendingRecommendations = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("erro ao montar dashboard: %w", err)
	}

	dashboard.Totals = totalize(dashboard.Daily)
	dashboard.PreviousTotals = totalize(previous)
	dashboard.Changes = changes(dashboard.PreviousTotals, dashboard.Totals)

	return dashboard, nil
}

func (s *Service) activeCampaigns(ctx context.Context, scope domain.Scope, filters domain.DashboardFilters) (int, error) {
	status := domain.CampaignStatusEnabled
	campaigns, err := s.campaignRepo.List(ctx, domain.CampaignFilters{ClientID: filters.ClientID, Status: &status}, scope)
	if err != nil {
		return 0, err
	}

	if filters.CampaignID == nil {
		return len(campaigns), nil
	}

	for _, c := range campaigns {
		if c.ID == *filters.CampaignID {
			return 1, nil
		}
	}
	return 0, nil
}

func totalize(points []*domain.DailyPoint) domain.MetricTotals {
	var totals domain.MetricTotals
	for _, p := range points {
		totals.Impressions += p.Impressions
		totals.Clicks += p.Clicks
		totals.Cost += p.Cost
		totals.Conversions += p.Conversions
		totals.ConversionValue += p.ConversionValue
	}
	totals.Derive()
	return totals
}

func changes(prev, cur domain.MetricTotals) domain.MetricChanges {
	return domain.MetricChanges{
		Impressions:     utils.PercentChange(float64(prev.Impressions), float64(cur.Impressions)),
		Clicks:          utils.PercentChange(float64(prev.Clicks), float64(cur.Clicks)),
		Cost:            utils.PercentChange(prev.Cost, cur.Cost),
		Conversions:     utils.PercentChange(prev.Conversions, cur.Conversions),
		ConversionValue: utils.PercentChange(prev.ConversionValue, cur.ConversionValue),
		CTR:             utils.PercentChange(prev.CTR, cur.CTR),
		CPC:             utils.PercentChange(prev.CPC, cur.CPC),
		ROAS:            utils.PercentChange(prev.ROAS, cur.ROAS),
	}
}
