package googleadsclient

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

const listingGroupsQuery = `
SELECT
  asset_group_listing_group_filter.id,
  asset_group_listing_group_filter.asset_group,
  asset_group_listing_group_filter.parent_listing_group_filter,
  asset_group_listing_group_filter.type,
  asset_group_listing_group_filter.case_value.product_brand.value,
  asset_group_listing_group_filter.case_value.product_type.value,
  asset_group_listing_group_filter.case_value.product_category.category_id,
  asset_group_listing_group_filter.case_value.product_item_id.value,
  asset_group_listing_group_filter.case_value.product_condition.condition,
  asset_group_listing_group_filter.case_value.product_custom_attribute.value,
  metrics.impressions,
  metrics.clicks,
  metrics.cost_micros,
  metrics.conversions,
  metrics.conversions_value
FROM asset_group_product_group_view
WHERE campaign.id = %s`

// dimensões de case_value na ordem em que são verificadas
var listingDimensions = []struct {
	name string
	path string
}{
	{"BRAND", "productBrand.value"},
	{"PRODUCT_TYPE", "productType.value"},
	{"CATEGORY", "productCategory.categoryId"},
	{"ITEM_ID", "productItemId.value"},
	{"CONDITION", "productCondition.condition"},
	{"CUSTOM_ATTRIBUTE", "productCustomAttribute.value"},
}

func (c *GoogleAdsClient) GetListingGroups(ctx context.Context, customerID, campaignID string) ([]domain.ListingGroup, error) {
	if err := checkID(campaignID); err != nil {
		return nil, err
	}

	rows, err := c.search(ctx, customerID, fmt.Sprintf(listingGroupsQuery, campaignID))
	if err != nil {
		return nil, err
	}

	groups := make([]domain.ListingGroup, 0, len(rows))
	for _, row := range rows {
		filter := row.Get("assetGroupListingGroupFilter")

		group := domain.ListingGroup{
			ID:           filter.Get("id").String(),
			AssetGroupID: lastSegment(filter.Get("assetGroup").String()),
			Type:         filter.Get("type").String(),
			Impressions:  row.Get("metrics.impressions").Int(),
			Clicks:       row.Get("metrics.clicks").Int(),
			Cost:         utils.MicrosToUnits(row.Get("metrics.costMicros").Int()),
			Conversions:  row.Get("metrics.conversions").Float(),
		}
		if parent := filter.Get("parentListingGroupFilter").String(); parent != "" {
			p := lastSegment(parent)
			group.ParentID = &p
		}

		group.Dimension, group.Value = caseValue(filter.Get("caseValue"))

		if group.Cost > 0 {
			roas := utils.RoundWithTwoDecimalPlace(row.Get("metrics.conversionsValue").Float() / group.Cost)
			group.ROAS = &roas
		}

		groups = append(groups, group)
	}

	return groups, nil
}

func caseValue(value gjson.Result) (string, string) {
	for _, d := range listingDimensions {
		if v := value.Get(d.path); v.Exists() {
			return d.name, v.String()
		}
	}
	return "ALL", "Todos os produtos"
}

// lastSegment extrai o id final de um resource name (customers/1/assetGroups/2 -> 2)
func lastSegment(resourceName string) string {
	for i := len(resourceName) - 1; i >= 0; i-- {
		if resourceName[i] == '/' || resourceName[i] == '~' {
			return resourceName[i+1:]
		}
	}
	return resourceName
}
