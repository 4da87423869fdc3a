package alerting

import (
	"fmt"

	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

// DefaultThresholds converte a configuração nos limites padrão
func DefaultThresholds(cfg config.Alerting) domain.AlertThresholds {
	return domain.AlertThresholds{
		MinROAS:                    cfg.MinROAS,
		MinCTR:                     cfg.MinCTR,
		MinImpressionsForCTR:       cfg.MinImpressionsForCTR,
		MaxBudgetUsage:             cfg.MaxBudgetUsage,
		BudgetWarningRatio:         cfg.BudgetWarningRatio,
		ConversionDropPercent:      cfg.ConversionDropPercent,
		LostImpressionSharePercent: cfg.LostImpressionSharePct,
	}
}

// Evaluate aplica as regras à métrica do dia. previous é o dia anterior e pode ser nil.
func Evaluate(campaign *domain.Campaign, metric, previous *domain.CampaignMetric, t domain.AlertThresholds) []*domain.Alert {
	if campaign == nil || metric == nil {
		return nil
	}

	alerts := make([]*domain.Alert, 0)
	add := func(alertType domain.AlertType, severity domain.AlertSeverity, value, threshold float64, title, message string) {
		alerts = append(alerts, &domain.Alert{
			CampaignID:   campaign.ID,
			CampaignName: campaign.Name,
			ClientID:     campaign.ClientID,
			Type:         alertType,
			Severity:     severity,
			Title:        title,
			Message:      message,
			MetricValue:  utils.RoundWithTwoDecimalPlace(value),
			Threshold:    threshold,
			Date:         metric.Date,
		})
	}

	if metric.Cost > 0 && metric.ROAS < t.MinROAS {
		severity := domain.SeverityWarning
		if metric.ROAS < t.MinROAS/2 {
			severity = domain.SeverityCritical
		}
		add(domain.AlertLowROAS, severity, metric.ROAS, t.MinROAS,
			"ROAS abaixo do mínimo",
			fmt.Sprintf("A campanha %s teve ROAS de %.2f, abaixo do mínimo de %.2f.", campaign.Name, metric.ROAS, t.MinROAS))
	}

	if metric.Impressions >= t.MinImpressionsForCTR && metric.CTR < t.MinCTR {
		add(domain.AlertLowCTR, domain.SeverityWarning, metric.CTR, t.MinCTR,
			"CTR baixo",
			fmt.Sprintf("A campanha %s teve CTR de %.2f%% com %d impressões, abaixo de %.2f%%.", campaign.Name, metric.CTR, metric.Impressions, t.MinCTR))
	}

	if campaign.DailyBudget > 0 {
		usage := metric.Cost / campaign.DailyBudget * 100
		switch {
		case usage >= t.MaxBudgetUsage:
			add(domain.AlertBudgetExceeded, domain.SeverityCritical, usage, t.MaxBudgetUsage,
				"Orçamento diário excedido",
				fmt.Sprintf("A campanha %s gastou %.2f (%.0f%% do orçamento diário de %.2f).", campaign.Name, metric.Cost, usage, campaign.DailyBudget))
		case usage >= t.MaxBudgetUsage*t.BudgetWarningRatio:
			add(domain.AlertBudgetWarning, domain.SeverityWarning, usage, t.MaxBudgetUsage*t.BudgetWarningRatio,
				"Orçamento diário perto do limite",
				fmt.Sprintf("A campanha %s já consumiu %.0f%% do orçamento diário.", campaign.Name, usage))
		}
	}

	if previous != nil && previous.Conversions > 0 {
		drop := (previous.Conversions - metric.Conversions) / previous.Conversions * 100
		if drop >= t.ConversionDropPercent {
			add(domain.AlertConversionDrop, domain.SeverityWarning, drop, t.ConversionDropPercent,
				"Queda de conversões",
				fmt.Sprintf("As conversões da campanha %s caíram %.0f%% (de %.1f para %.1f) em relação ao dia anterior.",
					campaign.Name, drop, previous.Conversions, metric.Conversions))
		}
	}

	if lost := metric.BudgetLostImpressionShare; lost != nil && *lost >= t.LostImpressionSharePercent {
		add(domain.AlertLostImpressionShare, domain.SeverityInfo, *lost, t.LostImpressionSharePercent,
			"Impressões perdidas por orçamento",
			fmt.Sprintf("A campanha %s perdeu %.0f%% das impressões possíveis por falta de orçamento.", campaign.Name, *lost))
	}

	return alerts
}
