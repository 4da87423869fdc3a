package googleadsclient

import (
	"context"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

const listCampaignsQuery = `
SELECT
  campaign.id,
  campaign.name,
  campaign.status,
  campaign.advertising_channel_type,
  campaign.start_date,
  campaign.end_date,
  campaign.maximize_conversion_value.target_roas,
  campaign_budget.amount_micros
FROM campaign
WHERE campaign.status != 'REMOVED'
ORDER BY campaign.name`

func (c *GoogleAdsClient) ListCampaigns(ctx context.Context, customerID string) ([]domain.RemoteCampaign, error) {
	rows, err := c.search(ctx, customerID, listCampaignsQuery)
	if err != nil {
		return nil, err
	}

	campaigns := make([]domain.RemoteCampaign, 0, len(rows))
	for _, row := range rows {
		campaign := domain.RemoteCampaign{
			ExternalID:  row.Get("campaign.id").String(),
			Name:        row.Get("campaign.name").String(),
			Status:      row.Get("campaign.status").String(),
			ChannelType: row.Get("campaign.advertisingChannelType").String(),
			DailyBudget: utils.MicrosToUnits(row.Get("campaignBudget.amountMicros").Int()),
			StartDate:   parseDate(row.Get("campaign.startDate")),
			EndDate:     parseDate(row.Get("campaign.endDate")),
		}

		if roas := row.Get("campaign.maximizeConversionValue.targetRoas"); roas.Exists() {
			v := roas.Float()
			campaign.TargetROAS = &v
		}

		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}
