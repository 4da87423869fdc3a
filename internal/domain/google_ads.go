package domain

import "time"

// RemoteCampaign é uma campanha lida diretamente da conta Google Ads
type RemoteCampaign struct {
	ExternalID    string     `json:"external_id"`
	Name          string     `json:"name"`
	Status        string     `json:"status"`
	ChannelType   string     `json:"channel_type"`
	DailyBudget   float64    `json:"daily_budget"`
	TargetROAS    *float64   `json:"target_roas"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	AlreadyLinked bool       `json:"already_linked"`
}

func (c *RemoteCampaign) IsPerformanceMax() bool {
	return c.ChannelType == CampaignTypePerformanceMax
}

type RemoteAssetGroup struct {
	ExternalID    string   `json:"external_id"`
	Name          string   `json:"name"`
	Status        string   `json:"status"`
	FinalURL      *string  `json:"final_url"`
	AdStrength    *string  `json:"ad_strength"`
	Headlines     []string `json:"headlines"`
	LongHeadlines []string `json:"long_headlines"`
	Descriptions  []string `json:"descriptions"`
}

type SearchTerm struct {
	Term            string  `json:"term"`
	InsightID       string  `json:"insight_id"`
	Impressions     int64   `json:"impressions"`
	Clicks          int64   `json:"clicks"`
	Conversions     float64 `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"`
	CTR             float64 `json:"ctr"`
}

type ListingGroup struct {
	ID           string   `json:"id"`
	AssetGroupID string   `json:"asset_group_id"`
	ParentID     *string  `json:"parent_id"`
	Type         string   `json:"type"`
	Dimension    string   `json:"dimension"`
	Value        string   `json:"value"`
	Impressions  int64    `json:"impressions"`
	Clicks       int64    `json:"clicks"`
	Cost         float64  `json:"cost"`
	Conversions  float64  `json:"conversions"`
	ROAS         *float64 `json:"roas"`
}

type DateRange struct {
	StartDate time.Time
	EndDate   time.Time
}
