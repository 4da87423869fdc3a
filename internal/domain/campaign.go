package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusEnabled CampaignStatus = "ENABLED"
	CampaignStatusPaused  CampaignStatus = "PAUSED"
	CampaignStatusRemoved CampaignStatus = "REMOVED"
)

func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusEnabled, CampaignStatusPaused, CampaignStatusRemoved:
		return true
	}
	return false
}

const CampaignTypePerformanceMax = "PERFORMANCE_MAX"

type Campaign struct {
	ID          string         `json:"id"`
	ClientID    string         `json:"client_id"`
	ClientName  string         `json:"client_name,omitempty"`
	ExternalID  *string        `json:"external_id"`
	Name        string         `json:"name"`
	Status      CampaignStatus `json:"status"`
	Type        string         `json:"type"`
	DailyBudget float64        `json:"daily_budget"`
	TargetROAS  *float64       `json:"target_roas"`
	StartDate   *time.Time     `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`

	// Limites próprios da campanha; nil usa o padrão da configuração
	MinROAS        *float64 `json:"min_roas"`
	MinCTR         *float64 `json:"min_ctr"`
	MaxBudgetUsage *float64 `json:"max_budget_usage"`

	// Preenchidos pelo join com clients
	ManagerID    int     `json:"-"`
	ClientUserID *int    `json:"-"`
	CustomerID   *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CampaignRequest struct {
	ClientID       *string         `json:"client_id"`
	ExternalID     *string         `json:"external_id"`
	Name           *string         `json:"name"`
	Status         *CampaignStatus `json:"status"`
	DailyBudget    *float64        `json:"daily_budget"`
	TargetROAS     *float64        `json:"target_roas"`
	StartDate      *string         `json:"start_date"`
	EndDate        *string         `json:"end_date"`
	MinROAS        *float64        `json:"min_roas"`
	MinCTR         *float64        `json:"min_ctr"`
	MaxBudgetUsage *float64        `json:"max_budget_usage"`
}

type CampaignFilters struct {
	ClientID *string
	Status   *CampaignStatus
	Search   *string
}
