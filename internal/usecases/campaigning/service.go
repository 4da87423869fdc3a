package campaigning

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/auditing"
	errorcodes "github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

type CampaignManager interface {
	Create(ctx context.Context, requester *domain.Claims, req *domain.CampaignRequest) (*domain.Campaign, error)
	Get(ctx context.Context, requester *domain.Claims, id string) (*domain.Campaign, error)
	List(ctx context.Context, requester *domain.Claims, filters domain.CampaignFilters) ([]*domain.Campaign, error)
	Update(ctx context.Context, requester *domain.Claims, id string, req *domain.CampaignRequest) (*domain.Campaign, error)
	Delete(ctx context.Context, requester *domain.Claims, id string) error

	GetMetrics(ctx context.Context, requester *domain.Claims, campaignID string, filters domain.MetricFilters) (*domain.CampaignMetricsReport, error)
	UpsertMetric(ctx context.Context, requester *domain.Claims, campaignID string, req *domain.MetricRequest) (*domain.CampaignMetric, error)

	ListAssetGroups(ctx context.Context, requester *domain.Claims, campaignID string) ([]*domain.AssetGroup, error)
	GetAssetGroup(ctx context.Context, requester *domain.Claims, id int64) (*domain.AssetGroup, error)
	CreateAssetGroup(ctx context.Context, requester *domain.Claims, campaignID string, req *domain.AssetGroupRequest) (*domain.AssetGroup, error)
	UpdateAssetGroup(ctx context.Context, requester *domain.Claims, id int64, req *domain.AssetGroupRequest) (*domain.AssetGroup, error)
	DeleteAssetGroup(ctx context.Context, requester *domain.Claims, id int64) error
}

type Service struct {
	campaignRepo   repository.CampaignRepository
	clientRepo     repository.ClientRepository
	metricRepo     repository.CampaignMetricRepository
	assetGroupRepo repository.AssetGroupRepository
	auditor        auditing.Auditor
}

func NewService(
	campaignRepo repository.CampaignRepository,
	clientRepo repository.ClientRepository,
	metricRepo repository.CampaignMetricRepository,
	assetGroupRepo repository.AssetGroupRepository,
	auditor auditing.Auditor,
) CampaignManager {
	return &Service{
		campaignRepo:   campaignRepo,
		clientRepo:     clientRepo,
		metricRepo:     metricRepo,
		assetGroupRepo: assetGroupRepo,
		auditor:        auditor,
	}
}

func (s *Service) Create(ctx context.Context, requester *domain.Claims, req *domain.CampaignRequest) (*domain.Campaign, error) {
	if requester.IsClient() {
		return nil, newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Usuários clientes não criam campanhas")
	}

	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, newError(ErrInvalidCampaign, errorcodes.ErrMissingRequiredData, "Nome é obrigatório")
	}
	if req.ClientID == nil || *req.ClientID == "" {
		return nil, newError(ErrInvalidCampaign, errorcodes.ErrMissingRequiredData, "client_id é obrigatório")
	}

	client, err := s.clientRepo.GetByID(ctx, *req.ClientID, domain.ScopeFor(requester))
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar cliente")
	}
	if client == nil {
		return nil, newError(ErrClientNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Cliente %s não encontrado", *req.ClientID))
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	campaign := &domain.Campaign{
		ID:         id,
		ClientID:   client.ID,
		ClientName: client.Name,
		ManagerID:  client.ManagerID,
		Status:     domain.CampaignStatusEnabled,
		Type:       domain.CampaignTypePerformanceMax,
	}

	if err := applyCampaignRequest(campaign, req); err != nil {
		return nil, err
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao criar campanha")
	}

	s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityCampaign, campaign.ID, domain.ActionCreate,
		fmt.Sprintf("Campanha %s criada", campaign.Name), map[string]any{"client_id": campaign.ClientID}))

	return campaign, nil
}

// Get devolve RES_001 tanto para campanha inexistente quanto fora do escopo do usuário
func (s *Service) Get(ctx context.Context, requester *domain.Claims, id string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id, domain.ScopeFor(requester))
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar campanha")
	}
	if campaign == nil {
		return nil, newError(ErrCampaignNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Campanha %s não encontrada", id))
	}

	return campaign, nil
}

func (s *Service) List(ctx context.Context, requester *domain.Claims, filters domain.CampaignFilters) ([]*domain.Campaign, error) {
	if filters.Status != nil && !filters.Status.IsValid() {
		return nil, newError(ErrInvalidCampaign, errorcodes.ErrInvalidFormat, "Status inválido")
	}

	campaigns, err := s.campaignRepo.List(ctx, filters, domain.ScopeFor(requester))
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao listar campanhas")
	}

	return campaigns, nil
}

func (s *Service) Update(ctx context.Context, requester *domain.Claims, id string, req *domain.CampaignRequest) (*domain.Campaign, error) {
	if requester.IsClient() {
		return nil, newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Usuários clientes não alteram campanhas")
	}

	campaign, err := s.Get(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	if req.ClientID != nil && *req.ClientID != campaign.ClientID {
		return nil, newError(ErrInvalidCampaign, errorcodes.ErrInvalidRequest, "Não é possível mover a campanha para outro cliente")
	}

	before := *campaign
	if err := applyCampaignRequest(campaign, req); err != nil {
		return nil, err
	}

	err = s.campaignRepo.Update(ctx, campaign)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newError(ErrCampaignNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Campanha %s não encontrada", id))
	}
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao atualizar campanha")
	}

	if changes := campaignChanges(&before, campaign); len(changes) > 0 {
		s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityCampaign, campaign.ID, domain.ActionUpdate,
			fmt.Sprintf("Campanha %s atualizada", campaign.Name), changes))
	}

	return campaign, nil
}

func (s *Service) Delete(ctx context.Context, requester *domain.Claims, id string) error {
	if requester.IsClient() {
		return newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Usuários clientes não removem campanhas")
	}

	campaign, err := s.Get(ctx, requester, id)
	if err != nil {
		return err
	}

	err = s.campaignRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return newError(ErrCampaignNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Campanha %s não encontrada", id))
	}
	if err != nil {
		return newError(err, errorcodes.ErrDatabaseOperation, "Erro ao remover campanha")
	}

	s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityCampaign, id, domain.ActionDelete,
		fmt.Sprintf("Campanha %s removida", campaign.Name), nil))

	return nil
}

func applyCampaignRequest(c *domain.Campaign, req *domain.CampaignRequest) error {
	invalid := func(details string) error {
		return newError(ErrInvalidCampaign, errorcodes.ErrInvalidFormat, details)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return newError(ErrInvalidCampaign, errorcodes.ErrMissingRequiredData, "Nome é obrigatório")
		}
		c.Name = name
	}

	if req.ExternalID != nil {
		c.ExternalID = req.ExternalID
	}

	if req.Status != nil {
		if !req.Status.IsValid() {
			return invalid("Status deve ser ENABLED, PAUSED ou REMOVED")
		}
		c.Status = *req.Status
	}

	if req.DailyBudget != nil {
		if *req.DailyBudget < 0 {
			return invalid("daily_budget não pode ser negativo")
		}
		c.DailyBudget = *req.DailyBudget
	}

	if req.TargetROAS != nil {
		if *req.TargetROAS < 0 {
			return invalid("target_roas não pode ser negativo")
		}
		c.TargetROAS = req.TargetROAS
	}

	if req.StartDate != nil {
		start, err := utils.ParseOptionalDate(*req.StartDate)
		if err != nil {
			return invalid("start_date deve estar no formato YYYY-MM-DD")
		}
		c.StartDate = start
	}

	if req.EndDate != nil {
		end, err := utils.ParseOptionalDate(*req.EndDate)
		if err != nil {
			return invalid("end_date deve estar no formato YYYY-MM-DD")
		}
		c.EndDate = end
	}

	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		return invalid("end_date deve ser posterior a start_date")
	}

	if req.MinROAS != nil {
		if *req.MinROAS < 0 {
			return invalid("min_roas não pode ser negativo")
		}
		c.MinROAS = req.MinROAS
	}

	if req.MinCTR != nil {
		if *req.MinCTR < 0 || *req.MinCTR > 100 {
			return invalid("min_ctr deve estar entre 0 e 100")
		}
		c.MinCTR = req.MinCTR
	}

	if req.MaxBudgetUsage != nil {
		if *req.MaxBudgetUsage <= 0 {
			return invalid("max_budget_usage deve ser positivo")
		}
		c.MaxBudgetUsage = req.MaxBudgetUsage
	}

	return nil
}

func campaignChanges(before, after *domain.Campaign) map[string]any {
	changes := map[string]any{}

	if before.Name != after.Name {
		changes["name"] = after.Name
	}
	if before.Status != after.Status {
		changes["status"] = after.Status
	}
	if before.DailyBudget != after.DailyBudget {
		changes["daily_budget"] = after.DailyBudget
	}
	if !sameFloat(before.TargetROAS, after.TargetROAS) {
		changes["target_roas"] = after.TargetROAS
	}
	if !sameDate(before.StartDate, after.StartDate) {
		changes["start_date"] = after.StartDate
	}
	if !sameDate(before.EndDate, after.EndDate) {
		changes["end_date"] = after.EndDate
	}
	if !sameFloat(before.MinROAS, after.MinROAS) {
		changes["min_roas"] = after.MinROAS
	}
	if !sameFloat(before.MinCTR, after.MinCTR) {
		changes["min_ctr"] = after.MinCTR
	}
	if !sameFloat(before.MaxBudgetUsage, after.MaxBudgetUsage) {
		changes["max_budget_usage"] = after.MaxBudgetUsage
	}

	return changes
}

func sameFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
