package recommending

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/openai"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/realtime"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/auditing"
	errorcodes "github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/log"
	"github.com/vfg2006/ads-optimizer-api/pkg/metrics"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

const (
	snapshotDays       = 30
	maxRejectionReason = 500
)

type RecommendationManager interface {
	List(ctx context.Context, requester *domain.Claims, filters domain.RecommendationFilters) ([]*domain.Recommendation, error)
	Get(ctx context.Context, requester *domain.Claims, id int64) (*domain.Recommendation, error)
	Generate(ctx context.Context, requester *domain.Claims, campaignID string) ([]*domain.Recommendation, error)
	Apply(ctx context.Context, requester *domain.Claims, id int64) (*domain.Recommendation, error)
	Reject(ctx context.Context, requester *domain.Claims, id int64, reason string) (*domain.Recommendation, error)
	AnalyzePerformance(ctx context.Context, requester *domain.Claims, campaignID string) (*domain.PerformanceAnalysis, error)
	SuggestAssets(ctx context.Context, requester *domain.Claims, assetGroupID int64) (*domain.AssetSuggestion, error)
}

type Service struct {
	recommendationRepo repository.RecommendationRepository
	campaignRepo       repository.CampaignRepository
	metricRepo         repository.CampaignMetricRepository
	assetGroupRepo     repository.AssetGroupRepository
	advisor            openai.Advisor
	publisher          realtime.Publisher
	auditor            auditing.Auditor
	now                func() time.Time
}

func NewService(
	recommendationRepo repository.RecommendationRepository,
	campaignRepo repository.CampaignRepository,
	metricRepo repository.CampaignMetricRepository,
	assetGroupRepo repository.AssetGroupRepository,
	advisor openai.Advisor,
	publisher realtime.Publisher,
	auditor auditing.Auditor,
) RecommendationManager {
	return &Service{
		recommendationRepo: recommendationRepo,
		campaignRepo:       campaignRepo,
		metricRepo:         metricRepo,
		assetGroupRepo:     assetGroupRepo,
		advisor:            advisor,
		publisher:          publisher,
		auditor:            auditor,
		now:                time.Now,
	}
}

func (s *Service) List(ctx context.Context, requester *domain.Claims, filters domain.RecommendationFilters) ([]*domain.Recommendation, error) {
	if filters.Status != nil && !filters.Status.IsValid() {
		return nil, newError(ErrInvalidRequest, errorcodes.ErrInvalidFormat, fmt.Sprintf("Status %s inválido", *filters.Status))
	}

	recs, err := s.recommendationRepo.List(ctx, filters, domain.ScopeFor(requester))
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao listar recomendações")
	}

	return recs, nil
}

func (s *Service) Get(ctx context.Context, requester *domain.Claims, id int64) (*domain.Recommendation, error) {
	rec, err := s.recommendationRepo.GetByID(ctx, id, domain.ScopeFor(requester))
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar recomendação")
	}
	if rec == nil {
		return nil, newError(ErrRecommendationNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Recomendação %d não encontrada", id))
	}

	return rec, nil
}

// Generate pede novas sugestões à IA com base nos últimos 30 dias da campanha
func (s *Service) Generate(ctx context.Context, requester *domain.Claims, campaignID string) ([]*domain.Recommendation, error) {
	if requester.IsClient() {
		return nil, newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Usuários clientes não geram recomendações")
	}
	if err := s.checkAdvisor(); err != nil {
		return nil, err
	}

	snapshot, err := s.snapshot(ctx, requester, campaignID)
	if err != nil {
		return nil, err
	}

	recs, err := s.advisor.GenerateRecommendations(ctx, *snapshot)
	if err != nil {
		return nil, advisorError(err)
	}

	for _, rec := range recs {
		rec.CampaignID = snapshot.Campaign.ID
		rec.CampaignName = snapshot.Campaign.Name
	}

	if len(recs) > 0 {
		if err := s.recommendationRepo.CreateBatch(ctx, recs); err != nil {
			return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao salvar recomendações")
		}
	}

	metrics.RecordRecommendationsGenerated(len(recs))
	s.publish(snapshot.Campaign, recs)
	s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityCampaign, campaignID, domain.ActionCreate,
		fmt.Sprintf("%d recomendações geradas pela IA", len(recs)), map[string]any{"recommendations": len(recs)}))

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id":     campaignID,
		"recommendations": len(recs),
	}).Info("Recomendações geradas")

	return recs, nil
}

func (s *Service) Apply(ctx context.Context, requester *domain.Claims, id int64) (*domain.Recommendation, error) {
	return s.transition(ctx, requester, id, domain.RecommendationApplied, nil)
}

func (s *Service) Reject(ctx context.Context, requester *domain.Claims, id int64, reason string) (*domain.Recommendation, error) {
	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) > maxRejectionReason {
		return nil, newError(ErrInvalidRequest, errorcodes.ErrInvalidFormat,
			fmt.Sprintf("Motivo deve ter no máximo %d caracteres", maxRejectionReason))
	}

	var reasonPtr *string
	if reason != "" {
		reasonPtr = &reason
	}

	return s.transition(ctx, requester, id, domain.RecommendationRejected, reasonPtr)
}

func (s *Service) transition(ctx context.Context, requester *domain.Claims, id int64, next domain.RecommendationStatus, reason *string) (*domain.Recommendation, error) {
	if requester.IsClient() {
		return nil, newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Usuários clientes não decidem recomendações")
	}

	rec, err := s.Get(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	invalid := newError(ErrInvalidTransition, errorcodes.ErrInvalidTransition,
		fmt.Sprintf("Recomendação %d já está %s", id, rec.Status))
	if !rec.Status.CanTransitionTo(next) {
		return nil, invalid
	}

	now := s.now()
	actor := requester.UserID
	previous := rec.Status

	rec.Status = next
	rec.ActedBy = &actor
	action := domain.ActionApply
	if next == domain.RecommendationApplied {
		rec.AppliedAt = &now
	} else {
		rec.RejectedAt = &now
		rec.RejectionReason = reason
		action = domain.ActionReject
	}

	err = s.recommendationRepo.UpdateStatus(ctx, rec)
	if errors.Is(err, repository.ErrNotFound) {
		// outra requisição decidiu a recomendação entre a leitura e o update
		return nil, invalid
	}
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao atualizar recomendação")
	}

	metrics.RecordRecommendationTransition(string(next))

	changes := map[string]any{"status": map[string]any{"old": previous, "new": next}}
	if reason != nil {
		changes["rejection_reason"] = *reason
	}
	s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityRecommendation, fmt.Sprint(id), action,
		fmt.Sprintf("Recomendação \"%s\" marcada como %s", rec.Title, next), changes))

	return rec, nil
}

func (s *Service) AnalyzePerformance(ctx context.Context, requester *domain.Claims, campaignID string) (*domain.PerformanceAnalysis, error) {
	if err := s.checkAdvisor(); err != nil {
		return nil, err
	}

	snapshot, err := s.snapshot(ctx, requester, campaignID)
	if err != nil {
		return nil, err
	}

	analysis, err := s.advisor.AnalyzePerformance(ctx, *snapshot)
	if err != nil {
		return nil, advisorError(err)
	}

	analysis.CampaignID = campaignID
	return analysis, nil
}

func (s *Service) SuggestAssets(ctx context.Context, requester *domain.Claims, assetGroupID int64) (*domain.AssetSuggestion, error) {
	if requester.IsClient() {
		return nil, newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Usuários clientes não alteram grupos de recursos")
	}
	if err := s.checkAdvisor(); err != nil {
		return nil, err
	}

	group, err := s.assetGroupRepo.FindByID(ctx, assetGroupID)
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar grupo de recursos")
	}
	if group == nil {
		return nil, newError(ErrAssetGroupNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Grupo de recursos %d não encontrado", assetGroupID))
	}

	snapshot, err := s.snapshot(ctx, requester, group.CampaignID)
	if err != nil {
		var domainErr *DomainError
		if errors.As(err, &domainErr) && errors.Is(domainErr.Err, ErrCampaignNotFound) {
			return nil, newError(ErrAssetGroupNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Grupo de recursos %d não encontrado", assetGroupID))
		}
		return nil, err
	}

	suggestion, err := s.advisor.SuggestAssets(ctx, *snapshot, group)
	if err != nil {
		return nil, advisorError(err)
	}

	suggestion.AssetGroupID = group.ID
	return suggestion, nil
}

// snapshot monta os dados da campanha enviados à IA
func (s *Service) snapshot(ctx context.Context, requester *domain.Claims, campaignID string) (*domain.CampaignSnapshot, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID, domain.ScopeFor(requester))
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar campanha")
	}
	if campaign == nil {
		return nil, newError(ErrCampaignNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Campanha %s não encontrada", campaignID))
	}

	end := utils.Truncate(s.now())
	start := end.AddDate(0, 0, -(snapshotDays - 1))

	rows, err := s.metricRepo.ListByCampaign(ctx, campaignID, domain.MetricFilters{StartDate: &start, EndDate: &end})
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar métricas")
	}

	groups, err := s.assetGroupRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao listar grupos de recursos")
	}

	snapshot := &domain.CampaignSnapshot{Campaign: campaign, Metrics: rows, AssetGroups: groups}
	for _, row := range rows {
		snapshot.Totals.Add(row)
	}
	snapshot.Totals.Derive()

	return snapshot, nil
}

func (s *Service) publish(campaign *domain.Campaign, recs []*domain.Recommendation) {
	if s.publisher == nil || len(recs) == 0 {
		return
	}

	recipients := []int{campaign.ManagerID}
	if campaign.ClientUserID != nil {
		recipients = append(recipients, *campaign.ClientUserID)
	}

	s.publisher.SendToUsers(realtime.Event{Type: realtime.EventRecommendationNew, Data: recs}, recipients...)
}

func (s *Service) checkAdvisor() error {
	if s.advisor == nil || !s.advisor.Enabled() {
		return newError(ErrAdvisorUnavailable, errorcodes.ErrNotConfigured, "Configure OPENAI_API_KEY para usar a IA")
	}
	return nil
}

func advisorError(err error) error {
	switch {
	case errors.Is(err, openai.ErrNotConfigured):
		return newError(ErrAdvisorUnavailable, errorcodes.ErrNotConfigured, "Configure OPENAI_API_KEY para usar a IA")
	case errors.Is(err, openai.ErrInvalidResponse):
		return newError(err, errorcodes.ErrExternalService, "A IA respondeu em formato inesperado, tente novamente")
	default:
		return newError(err, errorcodes.ErrExternalService, "Erro ao consultar a IA")
	}
}
