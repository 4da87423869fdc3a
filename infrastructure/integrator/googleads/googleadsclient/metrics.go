package googleadsclient

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

const dailyMetricsQuery = `
SELECT
  segments.date,
  metrics.impressions,
  metrics.clicks,
  metrics.cost_micros,
  metrics.conversions,
  metrics.conversions_value,
  metrics.search_impression_share,
  metrics.search_budget_lost_impression_share
FROM campaign
WHERE campaign.id = %s AND %s
ORDER BY segments.date`

// GetCampaignDailyMetrics devolve uma linha por dia; parcelas de impressão vêm em percentual
func (c *GoogleAdsClient) GetCampaignDailyMetrics(ctx context.Context, customerID, campaignID string, period domain.DateRange) ([]*domain.CampaignMetric, error) {
	if err := checkID(campaignID); err != nil {
		return nil, err
	}

	rows, err := c.search(ctx, customerID, fmt.Sprintf(dailyMetricsQuery, campaignID, dateClause(period)))
	if err != nil {
		return nil, err
	}

	metrics := make([]*domain.CampaignMetric, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Get("segments.date").String())
		if err != nil {
			continue
		}

		metrics = append(metrics, &domain.CampaignMetric{
			Date:                      date,
			Impressions:               row.Get("metrics.impressions").Int(),
			Clicks:                    row.Get("metrics.clicks").Int(),
			Cost:                      utils.MicrosToUnits(row.Get("metrics.costMicros").Int()),
			Conversions:               row.Get("metrics.conversions").Float(),
			ConversionValue:           row.Get("metrics.conversionsValue").Float(),
			SearchImpressionShare:     optionalPercent(row.Get("metrics.searchImpressionShare")),
			BudgetLostImpressionShare: optionalPercent(row.Get("metrics.searchBudgetLostImpressionShare")),
		})
	}

	return metrics, nil
}
