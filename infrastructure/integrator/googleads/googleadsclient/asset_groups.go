package googleadsclient

import (
	"context"
	"fmt"

	googleadsdomain "github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

const assetGroupsQuery = `
SELECT
  asset_group.id,
  asset_group.name,
  asset_group.status,
  asset_group.final_urls,
  asset_group.ad_strength
FROM asset_group
WHERE campaign.id = %s AND asset_group.status != 'REMOVED'`

const assetGroupTextsQuery = `
SELECT
  asset_group.id,
  asset_group_asset.field_type,
  asset.text_asset.text
FROM asset_group_asset
WHERE campaign.id = %s
  AND asset_group_asset.status != 'REMOVED'
  AND asset_group_asset.field_type IN ('HEADLINE', 'LONG_HEADLINE', 'DESCRIPTION')`

// ListAssetGroups combina os grupos com os textos vinculados a cada um
func (c *GoogleAdsClient) ListAssetGroups(ctx context.Context, customerID, campaignID string) ([]domain.RemoteAssetGroup, error) {
	if err := checkID(campaignID); err != nil {
		return nil, err
	}

	groupRows, err := c.search(ctx, customerID, fmt.Sprintf(assetGroupsQuery, campaignID))
	if err != nil {
		return nil, err
	}

	textRows, err := c.search(ctx, customerID, fmt.Sprintf(assetGroupTextsQuery, campaignID))
	if err != nil {
		return nil, err
	}

	groups := make([]domain.RemoteAssetGroup, 0, len(groupRows))
	index := make(map[string]int, len(groupRows))

	for _, row := range groupRows {
		group := domain.RemoteAssetGroup{
			ExternalID:    row.Get("assetGroup.id").String(),
			Name:          row.Get("assetGroup.name").String(),
			Status:        row.Get("assetGroup.status").String(),
			AdStrength:    optionalString(row.Get("assetGroup.adStrength")),
			Headlines:     []string{},
			LongHeadlines: []string{},
			Descriptions:  []string{},
		}
		if urls := row.Get("assetGroup.finalUrls").Array(); len(urls) > 0 {
			u := urls[0].String()
			group.FinalURL = &u
		}

		index[group.ExternalID] = len(groups)
		groups = append(groups, group)
	}

	for _, row := range textRows {
		i, ok := index[row.Get("assetGroup.id").String()]
		if !ok {
			continue
		}

		text := row.Get("asset.textAsset.text").String()
		if text == "" {
			continue
		}

		switch row.Get("assetGroupAsset.fieldType").String() {
		case googleadsdomain.FieldTypeHeadline:
			groups[i].Headlines = append(groups[i].Headlines, text)
		case googleadsdomain.FieldTypeLongHeadline:
			groups[i].LongHeadlines = append(groups[i].LongHeadlines, text)
		case googleadsdomain.FieldTypeDescription:
			groups[i].Descriptions = append(groups[i].Descriptions, text)
		}
	}

	return groups, nil
}
