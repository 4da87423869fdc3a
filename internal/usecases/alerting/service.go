package alerting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/realtime"
	"github.com/vfg2006/ads-optimizer-api/pkg/log"
	"github.com/vfg2006/ads-optimizer-api/pkg/metrics"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

type AlertManager interface {
	AnalyzeCampaign(ctx context.Context, requester *domain.Claims, campaignID string, date time.Time) ([]*domain.Alert, error)
	AnalyzeAll(ctx context.Context, date time.Time) (*AnalysisSummary, error)
	List(ctx context.Context, requester *domain.Claims, filters domain.AlertFilters) ([]*domain.Alert, error)
	MarkRead(ctx context.Context, requester *domain.Claims, id int64) error
	MarkAllRead(ctx context.Context, requester *domain.Claims) (int64, error)
	Delete(ctx context.Context, requester *domain.Claims, id int64) error
	UnreadCount(ctx context.Context, requester *domain.Claims) (int, error)
}

type AnalysisSummary struct {
	Date          time.Time `json:"date"`
	Campaigns     int       `json:"campaigns"`
	AlertsCreated int       `json:"alerts_created"`
	Failures      int       `json:"failures"`
}

type Service struct {
	thresholds   domain.AlertThresholds
	campaignRepo repository.CampaignRepository
	metricRepo   repository.CampaignMetricRepository
	alertRepo    repository.AlertRepository
	publisher    realtime.Publisher
}

func NewService(
	cfg config.Alerting,
	campaignRepo repository.CampaignRepository,
	metricRepo repository.CampaignMetricRepository,
	alertRepo repository.AlertRepository,
	publisher realtime.Publisher,
) AlertManager {
	return &Service{
		thresholds:   DefaultThresholds(cfg),
		campaignRepo: campaignRepo,
		metricRepo:   metricRepo,
		alertRepo:    alertRepo,
		publisher:    publisher,
	}
}

// AnalyzeCampaign avalia o dia informado e devolve apenas os alertas criados nesta execução
func (s *Service) AnalyzeCampaign(ctx context.Context, requester *domain.Claims, campaignID string, date time.Time) ([]*domain.Alert, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID, domain.ScopeFor(requester))
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	return s.analyze(ctx, campaign, utils.Truncate(date))
}

// AnalyzeAll é usado pelo agendador para todas as campanhas ativas
func (s *Service) AnalyzeAll(ctx context.Context, date time.Time) (*AnalysisSummary, error) {
	date = utils.Truncate(date)

	campaigns, err := s.campaignRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar campanhas ativas: %w", err)
	}

	summary := &AnalysisSummary{Date: date, Campaigns: len(campaigns)}
	for _, campaign := range campaigns {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		created, err := s.analyze(ctx, campaign, date)
		if err != nil {
			summary.Failures++
			log.ForContext(ctx).WithError(err).WithField("campaign_id", campaign.ID).Error("Erro ao analisar campanha")
			continue
		}
		summary.AlertsCreated += len(created)
	}

	return summary, nil
}

func (s *Service) analyze(ctx context.Context, campaign *domain.Campaign, date time.Time) ([]*domain.Alert, error) {
	metric, err := s.metricRepo.GetByDate(ctx, campaign.ID, date)
	if err != nil {
		return nil, err
	}
	if metric == nil {
		return []*domain.Alert{}, nil
	}

	previous, err := s.metricRepo.GetByDate(ctx, campaign.ID, date.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	candidates := Evaluate(campaign, metric, previous, s.thresholds.ForCampaign(campaign))

	created := make([]*domain.Alert, 0, len(candidates))
	for _, alert := range candidates {
		inserted, err := s.alertRepo.CreateIfNotExists(ctx, alert)
		if err != nil {
			return created, err
		}
		if !inserted {
			continue
		}

		created = append(created, alert)
		metrics.RecordAlert(string(alert.Type), string(alert.Severity))
		s.publish(campaign, alert)
	}

	if len(created) > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"campaign_id": campaign.ID,
			"alerts":      len(created),
		}).Info("Alertas gerados")
	}

	return created, nil
}

func (s *Service) publish(campaign *domain.Campaign, alert *domain.Alert) {
	if s.publisher == nil {
		return
	}

	recipients := []int{campaign.ManagerID}
	if campaign.ClientUserID != nil {
		recipients = append(recipients, *campaign.ClientUserID)
	}

	s.publisher.SendToUsers(realtime.Event{Type: realtime.EventAlertNew, Data: alert}, recipients...)
}

func (s *Service) List(ctx context.Context, requester *domain.Claims, filters domain.AlertFilters) ([]*domain.Alert, error) {
	if filters.Severity != nil && !filters.Severity.IsValid() {
		return nil, fmt.Errorf("%w: severidade %s", ErrInvalidFilters, *filters.Severity)
	}
	if filters.Limit <= 0 || filters.Limit > 200 {
		filters.Limit = 100
	}

	return s.alertRepo.List(ctx, filters, domain.ScopeFor(requester))
}

func (s *Service) MarkRead(ctx context.Context, requester *domain.Claims, id int64) error {
	if err := s.checkAccess(ctx, requester, id); err != nil {
		return err
	}

	err := s.alertRepo.MarkRead(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrAlertNotFound
	}
	return err
}

func (s *Service) MarkAllRead(ctx context.Context, requester *domain.Claims) (int64, error) {
	return s.alertRepo.MarkAllRead(ctx, domain.ScopeFor(requester))
}

func (s *Service) Delete(ctx context.Context, requester *domain.Claims, id int64) error {
	if err := s.checkAccess(ctx, requester, id); err != nil {
		return err
	}

	err := s.alertRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrAlertNotFound
	}
	return err
}

func (s *Service) UnreadCount(ctx context.Context, requester *domain.Claims) (int, error) {
	return s.alertRepo.UnreadCount(ctx, domain.ScopeFor(requester), nil)
}

func (s *Service) checkAccess(ctx context.Context, requester *domain.Claims, id int64) error {
	alert, err := s.alertRepo.GetByID(ctx, id, domain.ScopeFor(requester))
	if err != nil {
		return err
	}
	if alert == nil {
		return ErrAlertNotFound
	}
	return nil
}
