package campaigning

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/auditing"
	errorcodes "github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

func (s *Service) GetMetrics(ctx context.Context, requester *domain.Claims, campaignID string, filters domain.MetricFilters) (*domain.CampaignMetricsReport, error) {
	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return nil, newError(ErrInvalidMetric, errorcodes.ErrInvalidFormat, "end_date deve ser posterior a start_date")
	}

	if _, err := s.Get(ctx, requester, campaignID); err != nil {
		return nil, err
	}

	metrics, err := s.metricRepo.ListByCampaign(ctx, campaignID, filters)
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar métricas")
	}

	return &domain.CampaignMetricsReport{
		CampaignID: campaignID,
		StartDate:  filters.StartDate,
		EndDate:    filters.EndDate,
		Daily:      metrics,
		Totals:     domain.Totalize(metrics),
	}, nil
}

// UpsertMetric grava a métrica diária calculando CTR, CPC, ROAS e CPA
func (s *Service) UpsertMetric(ctx context.Context, requester *domain.Claims, campaignID string, req *domain.MetricRequest) (*domain.CampaignMetric, error) {
	if requester.IsClient() {
		return nil, newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Usuários clientes não registram métricas")
	}

	metric, err := metricFromRequest(campaignID, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.Get(ctx, requester, campaignID); err != nil {
		return nil, err
	}

	if err := s.metricRepo.Upsert(ctx, metric); err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao salvar métrica")
	}

	s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityMetric, campaignID, domain.ActionUpdate,
		fmt.Sprintf("Métrica de %s registrada", req.Date), map[string]any{
			"impressions": metric.Impressions,
			"clicks":      metric.Clicks,
			"cost":        metric.Cost,
			"conversions": metric.Conversions,
		}))

	return metric, nil
}

func metricFromRequest(campaignID string, req *domain.MetricRequest) (*domain.CampaignMetric, error) {
	invalid := func(details string) error {
		return newError(ErrInvalidMetric, errorcodes.ErrInvalidFormat, details)
	}

	if req.Date == "" {
		return nil, newError(ErrInvalidMetric, errorcodes.ErrMissingRequiredData, "date é obrigatório")
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, invalid("date deve estar no formato YYYY-MM-DD")
	}

	if req.Impressions < 0 || req.Clicks < 0 || req.Cost < 0 || req.Conversions < 0 || req.ConversionValue < 0 {
		return nil, invalid("valores não podem ser negativos")
	}

	if req.Clicks > req.Impressions {
		return nil, invalid("clicks não pode ser maior que impressions")
	}

	if err := checkShare(req.SearchImpressionShare); err != nil {
		return nil, err
	}
	if err := checkShare(req.BudgetLostImpressionShare); err != nil {
		return nil, err
	}

	metric := &domain.CampaignMetric{
		CampaignID:                campaignID,
		Date:                      *date,
		Impressions:               req.Impressions,
		Clicks:                    req.Clicks,
		Cost:                      req.Cost,
		Conversions:               req.Conversions,
		ConversionValue:           req.ConversionValue,
		SearchImpressionShare:     req.SearchImpressionShare,
		BudgetLostImpressionShare: req.BudgetLostImpressionShare,
	}
	metric.Derive()

	return metric, nil
}

// parcelas de impressão são percentuais de 0 a 100
func checkShare(v *float64) error {
	if v != nil && (*v < 0 || *v > 100) {
		return newError(ErrInvalidMetric, errorcodes.ErrInvalidFormat, "parcela de impressões deve estar entre 0 e 100")
	}
	return nil
}

func isNotFound(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == errorcodes.ErrResourceNotFound
}
