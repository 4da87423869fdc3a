package domain

import "time"

type Client struct {
	ID                  string    `json:"id"`
	ManagerID           int       `json:"manager_id"`
	UserID              *int      `json:"user_id"`
	Name                string    `json:"name"`
	Company             *string   `json:"company"`
	Email               *string   `json:"email"`
	Phone               *string   `json:"phone"`
	GoogleAdsCustomerID *string   `json:"google_ads_customer_id"`
	Active              bool      `json:"active"`
	CampaignCount       int       `json:"campaign_count"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type ClientRequest struct {
	Name                *string `json:"name"`
	Company             *string `json:"company"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	GoogleAdsCustomerID *string `json:"google_ads_customer_id"`
	UserID              *int    `json:"user_id"`
	ManagerID           *int    `json:"manager_id"`
	Active              *bool   `json:"active"`
}

type ClientSyncResult struct {
	ClientID          string `json:"client_id"`
	CampaignsImported int    `json:"campaigns_imported"`
	AssetGroupsSynced int    `json:"asset_groups_synced"`
	SkippedNonPMax    int    `json:"skipped_non_pmax"`
	Message           string `json:"message"`
}
