package domain

import "time"

type RecommendationStatus string

const (
	RecommendationPending  RecommendationStatus = "PENDING"
	RecommendationApplied  RecommendationStatus = "APPLIED"
	RecommendationRejected RecommendationStatus = "REJECTED"
)

func (s RecommendationStatus) IsValid() bool {
	return s == RecommendationPending || s == RecommendationApplied || s == RecommendationRejected
}

// CanTransitionTo permite apenas PENDING -> APPLIED e PENDING -> REJECTED
func (s RecommendationStatus) CanTransitionTo(next RecommendationStatus) bool {
	return s == RecommendationPending && (next == RecommendationApplied || next == RecommendationRejected)
}

type RecommendationPriority string

const (
	PriorityLow    RecommendationPriority = "LOW"
	PriorityMedium RecommendationPriority = "MEDIUM"
	PriorityHigh   RecommendationPriority = "HIGH"
)

func NormalizePriority(p string) RecommendationPriority {
	switch RecommendationPriority(p) {
	case PriorityLow, PriorityHigh:
		return RecommendationPriority(p)
	}
	return PriorityMedium
}

type Recommendation struct {
	ID              int64                  `json:"id"`
	CampaignID      string                 `json:"campaign_id"`
	CampaignName    string                 `json:"campaign_name,omitempty"`
	Type            string                 `json:"type"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	ExpectedImpact  *string                `json:"expected_impact"`
	Priority        RecommendationPriority `json:"priority"`
	Status          RecommendationStatus   `json:"status"`
	RejectionReason *string                `json:"rejection_reason"`
	ActedBy         *int                   `json:"acted_by"`
	AppliedAt       *time.Time             `json:"applied_at"`
	RejectedAt      *time.Time             `json:"rejected_at"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type RecommendationFilters struct {
	CampaignID *string
	Status     *RecommendationStatus
}

type PerformanceAnalysis struct {
	CampaignID  string    `json:"campaign_id"`
	Summary     string    `json:"summary"`
	Strengths   []string  `json:"strengths"`
	Weaknesses  []string  `json:"weaknesses"`
	NextSteps   []string  `json:"next_steps"`
	GeneratedAt time.Time `json:"generated_at"`
}

// CampaignSnapshot reúne o que é enviado à IA para analisar uma campanha
type CampaignSnapshot struct {
	Campaign    *Campaign
	Metrics     []*CampaignMetric
	Totals      MetricTotals
	AssetGroups []*AssetGroup
}
