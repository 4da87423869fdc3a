package syncing

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads"
	googleadsdomain "github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/auditing"
	errorcodes "github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/log"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

const maxSyncDays = 90

type Synchronizer interface {
	SyncClient(ctx context.Context, requester *domain.Claims, clientID string) (*domain.ClientSyncResult, error)
	SyncMetrics(ctx context.Context, requester *domain.Claims, campaignID string, period domain.DateRange) (int, error)
	SyncCampaignMetrics(ctx context.Context, campaign *domain.Campaign, period domain.DateRange) (int, error)
	ListRemoteCampaigns(ctx context.Context, requester *domain.Claims, clientID string) ([]domain.RemoteCampaign, error)
	GetSearchTerms(ctx context.Context, requester *domain.Claims, campaignID string, period domain.DateRange) ([]domain.SearchTerm, error)
	GetListingGroups(ctx context.Context, requester *domain.Claims, campaignID string) ([]domain.ListingGroup, error)
}

type Service struct {
	integrator     googleads.Integrator
	clientRepo     repository.ClientRepository
	campaignRepo   repository.CampaignRepository
	metricRepo     repository.CampaignMetricRepository
	assetGroupRepo repository.AssetGroupRepository
	auditor        auditing.Auditor
}

func NewService(
	integrator googleads.Integrator,
	clientRepo repository.ClientRepository,
	campaignRepo repository.CampaignRepository,
	metricRepo repository.CampaignMetricRepository,
	assetGroupRepo repository.AssetGroupRepository,
	auditor auditing.Auditor,
) Synchronizer {
	return &Service{
		integrator:     integrator,
		clientRepo:     clientRepo,
		campaignRepo:   campaignRepo,
		metricRepo:     metricRepo,
		assetGroupRepo: assetGroupRepo,
		auditor:        auditor,
	}
}

// SyncClient importa as campanhas Performance Max da conta do cliente com seus grupos de recursos
func (s *Service) SyncClient(ctx context.Context, requester *domain.Claims, clientID string) (*domain.ClientSyncResult, error) {
	if requester.IsClient() {
		return nil, newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Usuários clientes não sincronizam contas")
	}
	if err := s.checkIntegrator(); err != nil {
		return nil, err
	}

	client, customerID, err := s.client(ctx, requester, clientID)
	if err != nil {
		return nil, err
	}

	remote, err := s.integrator.ListCampaigns(ctx, customerID)
	if err != nil {
		return nil, integratorError(err)
	}

	result := &domain.ClientSyncResult{ClientID: client.ID}
	for _, rc := range remote {
		if !rc.IsPerformanceMax() {
			result.SkippedNonPMax++
			continue
		}

		campaign, err := s.importCampaign(ctx, client.ID, rc)
		if err != nil {
			return nil, err
		}
		result.CampaignsImported++

		groups, err := s.integrator.ListAssetGroups(ctx, customerID, rc.ExternalID)
		if err != nil {
			return nil, integratorError(err)
		}

		for _, rg := range groups {
			if err := s.assetGroupRepo.UpsertByExternalID(ctx, assetGroupFromRemote(campaign.ID, rg)); err != nil {
				return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao salvar grupo de recursos")
			}
			result.AssetGroupsSynced++
		}
	}

	result.Message = fmt.Sprintf("%d campanhas importadas, %d grupos de recursos sincronizados", result.CampaignsImported, result.AssetGroupsSynced)

	s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityClient, client.ID, domain.ActionSync, result.Message, map[string]any{
		"campaigns_imported":  result.CampaignsImported,
		"asset_groups_synced": result.AssetGroupsSynced,
		"skipped_non_pmax":    result.SkippedNonPMax,
	}))

	log.ForContext(ctx).WithFields(log.Fields{
		"client_id":   client.ID,
		"customer_id": customerID,
		"campaigns":   result.CampaignsImported,
	}).Info("Conta Google Ads sincronizada")

	return result, nil
}

func (s *Service) importCampaign(ctx context.Context, clientID string, rc domain.RemoteCampaign) (*domain.Campaign, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, newError(err, errorcodes.ErrInternalServer, "Erro ao gerar identificador")
	}

	externalID := rc.ExternalID
	status := domain.CampaignStatus(rc.Status)
	if !status.IsValid() {
		status = domain.CampaignStatusPaused
	}

	campaign := &domain.Campaign{
		ID:          id,
		ClientID:    clientID,
		ExternalID:  &externalID,
		Name:        rc.Name,
		Status:      status,
		Type:        domain.CampaignTypePerformanceMax,
		DailyBudget: rc.DailyBudget,
		TargetROAS:  rc.TargetROAS,
		StartDate:   rc.StartDate,
		EndDate:     rc.EndDate,
	}

	if _, err := s.campaignRepo.UpsertByExternalID(ctx, campaign); err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao salvar campanha importada")
	}

	return campaign, nil
}

func assetGroupFromRemote(campaignID string, rg domain.RemoteAssetGroup) *domain.AssetGroup {
	externalID := rg.ExternalID
	return &domain.AssetGroup{
		CampaignID:    campaignID,
		ExternalID:    &externalID,
		Name:          rg.Name,
		Status:        rg.Status,
		FinalURL:      rg.FinalURL,
		AdStrength:    rg.AdStrength,
		Headlines:     rg.Headlines,
		LongHeadlines: rg.LongHeadlines,
		Descriptions:  rg.Descriptions,
	}
}

// SyncMetrics importa as métricas diárias de uma campanha vinculada
func (s *Service) SyncMetrics(ctx context.Context, requester *domain.Claims, campaignID string, period domain.DateRange) (int, error) {
	if requester.IsClient() {
		return 0, newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Usuários clientes não sincronizam métricas")
	}
	if err := checkPeriod(period); err != nil {
		return 0, err
	}
	if err := s.checkIntegrator(); err != nil {
		return 0, err
	}

	campaign, err := s.campaign(ctx, requester, campaignID)
	if err != nil {
		return 0, err
	}

	count, err := s.SyncCampaignMetrics(ctx, campaign, period)
	if err != nil {
		return 0, err
	}

	s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityCampaign, campaign.ID, domain.ActionSync,
		fmt.Sprintf("%d dias de métricas sincronizados", count), map[string]any{
			"start_date": period.StartDate.Format("2006-01-02"),
			"end_date":   period.EndDate.Format("2006-01-02"),
		}))

	return count, nil
}

// SyncCampaignMetrics é usado pelo agendador, sem verificação de escopo
func (s *Service) SyncCampaignMetrics(ctx context.Context, campaign *domain.Campaign, period domain.DateRange) (int, error) {
	if campaign.ExternalID == nil || campaign.CustomerID == nil || *campaign.CustomerID == "" {
		return 0, newError(ErrCampaignNotLinked, errorcodes.ErrMissingRequiredData, fmt.Sprintf("Campanha %s sem vínculo com o Google Ads", campaign.ID))
	}

	rows, err := s.integrator.GetCampaignDailyMetrics(ctx, *campaign.CustomerID, *campaign.ExternalID, period)
	if err != nil {
		return 0, integratorError(err)
	}

	for _, row := range rows {
		row.CampaignID = campaign.ID
		row.Date = utils.Truncate(row.Date)
		row.Derive()

		if err := s.metricRepo.Upsert(ctx, row); err != nil {
			return 0, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao salvar métrica")
		}
	}

	return len(rows), nil
}

// ListRemoteCampaigns mostra as campanhas da conta marcando as que já foram importadas
func (s *Service) ListRemoteCampaigns(ctx context.Context, requester *domain.Claims, clientID string) ([]domain.RemoteCampaign, error) {
	if err := s.checkIntegrator(); err != nil {
		return nil, err
	}

	client, customerID, err := s.client(ctx, requester, clientID)
	if err != nil {
		return nil, err
	}

	remote, err := s.integrator.ListCampaigns(ctx, customerID)
	if err != nil {
		return nil, integratorError(err)
	}

	local, err := s.campaignRepo.List(ctx, domain.CampaignFilters{ClientID: &client.ID}, domain.ScopeFor(requester))
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao listar campanhas")
	}

	linked := make(map[string]bool, len(local))
	for _, c := range local {
		if c.ExternalID != nil {
			linked[*c.ExternalID] = true
		}
	}

	for i := range remote {
		remote[i].AlreadyLinked = linked[remote[i].ExternalID]
	}

	return remote, nil
}

func (s *Service) GetSearchTerms(ctx context.Context, requester *domain.Claims, campaignID string, period domain.DateRange) ([]domain.SearchTerm, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	if err := s.checkIntegrator(); err != nil {
		return nil, err
	}

	campaign, err := s.linkedCampaign(ctx, requester, campaignID)
	if err != nil {
		return nil, err
	}

	terms, err := s.integrator.GetSearchTerms(ctx, *campaign.CustomerID, *campaign.ExternalID, period)
	if err != nil {
		return nil, integratorError(err)
	}

	return terms, nil
}

func (s *Service) GetListingGroups(ctx context.Context, requester *domain.Claims, campaignID string) ([]domain.ListingGroup, error) {
	if err := s.checkIntegrator(); err != nil {
		return nil, err
	}

	campaign, err := s.linkedCampaign(ctx, requester, campaignID)
	if err != nil {
		return nil, err
	}

	groups, err := s.integrator.GetListingGroups(ctx, *campaign.CustomerID, *campaign.ExternalID)
	if err != nil {
		return nil, integratorError(err)
	}

	return groups, nil
}

func (s *Service) client(ctx context.Context, requester *domain.Claims, clientID string) (*domain.Client, string, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID, domain.ScopeFor(requester))
	if err != nil {
		return nil, "", newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar cliente")
	}
	if client == nil {
		return nil, "", newError(ErrClientNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Cliente %s não encontrado", clientID))
	}
	if client.GoogleAdsCustomerID == nil || *client.GoogleAdsCustomerID == "" {
		return nil, "", newError(ErrMissingCustomerID, errorcodes.ErrMissingRequiredData, "Informe o google_ads_customer_id do cliente")
	}

	return client, *client.GoogleAdsCustomerID, nil
}

func (s *Service) campaign(ctx context.Context, requester *domain.Claims, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID, domain.ScopeFor(requester))
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar campanha")
	}
	if campaign == nil {
		return nil, newError(ErrCampaignNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Campanha %s não encontrada", campaignID))
	}

	return campaign, nil
}

func (s *Service) linkedCampaign(ctx context.Context, requester *domain.Claims, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaign(ctx, requester, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.ExternalID == nil || campaign.CustomerID == nil || *campaign.CustomerID == "" {
		return nil, newError(ErrCampaignNotLinked, errorcodes.ErrMissingRequiredData, fmt.Sprintf("Campanha %s sem vínculo com o Google Ads", campaignID))
	}

	return campaign, nil
}

func (s *Service) checkIntegrator() error {
	if s.integrator == nil || !s.integrator.Enabled() {
		return newError(googleads.ErrNotConfigured, errorcodes.ErrNotConfigured, "Configure as credenciais do Google Ads")
	}
	return nil
}

func checkPeriod(period domain.DateRange) error {
	if period.EndDate.Before(period.StartDate) {
		return newError(ErrInvalidPeriod, errorcodes.ErrInvalidFormat, "end_date anterior a start_date")
	}
	if period.EndDate.Sub(period.StartDate).Hours()/24 >= maxSyncDays {
		return newError(ErrInvalidPeriod, errorcodes.ErrInvalidFormat, fmt.Sprintf("Período máximo de %d dias", maxSyncDays))
	}
	return nil
}

func integratorError(err error) error {
	if errors.Is(err, googleads.ErrNotConfigured) {
		return newError(err, errorcodes.ErrNotConfigured, "Configure as credenciais do Google Ads")
	}

	var apiErr *googleadsdomain.APIError
	if errors.As(err, &apiErr) {
		if apiErr.IsRateLimited() {
			return newError(ErrGoogleAds, errorcodes.ErrTooManyRequests, apiErr.Message)
		}
		return newError(ErrGoogleAds, errorcodes.ErrExternalService, apiErr.Message)
	}

	return newError(err, errorcodes.ErrCommunication, "Erro ao comunicar com o Google Ads")
}
