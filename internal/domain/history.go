package domain

import "time"

type HistoryAction string

const (
	ActionCreate HistoryAction = "CREATE"
	ActionUpdate HistoryAction = "UPDATE"
	ActionDelete HistoryAction = "DELETE"
	ActionApply  HistoryAction = "APPLY"
	ActionReject HistoryAction = "REJECT"
	ActionSync   HistoryAction = "SYNC"
)

const (
	EntityUser           = "USER"
	EntityClient         = "CLIENT"
	EntityCampaign       = "CAMPAIGN"
	EntityAssetGroup     = "ASSET_GROUP"
	EntityRecommendation = "RECOMMENDATION"
	EntityMetric         = "CAMPAIGN_METRIC"
)

type ChangeHistory struct {
	ID          int64          `json:"id"`
	UserID      *int           `json:"user_id"`
	UserName    string         `json:"user_name,omitempty"`
	EntityType  string         `json:"entity_type"`
	EntityID    string         `json:"entity_id"`
	Action      HistoryAction  `json:"action"`
	Description string         `json:"description"`
	Changes     map[string]any `json:"changes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type HistoryFilters struct {
	EntityType *string
	EntityID   *string
	UserID     *int
	Action     *HistoryAction
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	PageSize   int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = 10000
)

// Normalize aplica os limites de paginação
func (f *HistoryFilters) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
}

type HistoryPage struct {
	Items    []*ChangeHistory `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
