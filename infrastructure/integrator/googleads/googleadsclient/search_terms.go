package googleadsclient

import (
	"context"
	"fmt"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

const searchTermsQuery = `
SELECT
  campaign_search_term_insight.category_label,
  campaign_search_term_insight.id,
  metrics.impressions,
  metrics.clicks,
  metrics.conversions,
  metrics.conversions_value
FROM campaign_search_term_insight
WHERE campaign_search_term_insight.campaign_id = %s AND %s
ORDER BY metrics.impressions DESC`

func (c *GoogleAdsClient) GetSearchTerms(ctx context.Context, customerID, campaignID string, period domain.DateRange) ([]domain.SearchTerm, error) {
	if err := checkID(campaignID); err != nil {
		return nil, err
	}

	rows, err := c.search(ctx, customerID, fmt.Sprintf(searchTermsQuery, campaignID, dateClause(period)))
	if err != nil {
		return nil, err
	}

	terms := make([]domain.SearchTerm, 0, len(rows))
	for _, row := range rows {
		label := row.Get("campaignSearchTermInsight.categoryLabel").String()
		if label == "" {
			label = "(sem categoria)"
		}

		term := domain.SearchTerm{
			Term:            label,
			InsightID:       row.Get("campaignSearchTermInsight.id").String(),
			Impressions:     row.Get("metrics.impressions").Int(),
			Clicks:          row.Get("metrics.clicks").Int(),
			Conversions:     row.Get("metrics.conversions").Float(),
			ConversionValue: row.Get("metrics.conversionsValue").Float(),
		}
		term.CTR = utils.RoundWithTwoDecimalPlace(domain.Ratio(float64(term.Clicks), float64(term.Impressions)) * 100)

		terms = append(terms, term)
	}

	return terms, nil
}
