package domain

import "time"

type AssetGroup struct {
	ID            int64     `json:"id"`
	CampaignID    string    `json:"campaign_id"`
	ExternalID    *string   `json:"external_id"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	FinalURL      *string   `json:"final_url"`
	Headlines     []string  `json:"headlines"`
	LongHeadlines []string  `json:"long_headlines"`
	Descriptions  []string  `json:"descriptions"`
	Images        []string  `json:"images"`
	Videos        []string  `json:"videos"`
	AdStrength    *string   `json:"ad_strength"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type AssetGroupRequest struct {
	Name          *string   `json:"name"`
	Status        *string   `json:"status"`
	FinalURL      *string   `json:"final_url"`
	Headlines     *[]string `json:"headlines"`
	LongHeadlines *[]string `json:"long_headlines"`
	Descriptions  *[]string `json:"descriptions"`
	Images        *[]string `json:"images"`
	Videos        *[]string `json:"videos"`
}

// Limites do Google Ads para assets de Performance Max
const (
	MaxHeadlines       = 15
	MaxLongHeadlines   = 5
	MaxDescriptions    = 5
	MaxHeadlineLength  = 30
	MaxLongHeadlineLen = 90
	MaxDescriptionLen  = 90
)

type AssetSuggestion struct {
	AssetGroupID  int64    `json:"asset_group_id"`
	Headlines     []string `json:"headlines"`
	LongHeadlines []string `json:"long_headlines"`
	Descriptions  []string `json:"descriptions"`
}
