package domain

import "time"

type AlertType string

const (
	AlertLowROAS             AlertType = "LOW_ROAS"
	AlertLowCTR              AlertType = "LOW_CTR"
	AlertBudgetExceeded      AlertType = "BUDGET_EXCEEDED"
	AlertBudgetWarning       AlertType = "BUDGET_WARNING"
	AlertConversionDrop      AlertType = "CONVERSION_DROP"
	AlertLostImpressionShare AlertType = "LOST_IMPRESSION_SHARE"
)

type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "INFO"
	SeverityWarning  AlertSeverity = "WARNING"
	SeverityCritical AlertSeverity = "CRITICAL"
)

func (s AlertSeverity) IsValid() bool {
	return s == SeverityInfo || s == SeverityWarning || s == SeverityCritical
}

type Alert struct {
	ID           int64         `json:"id"`
	CampaignID   string        `json:"campaign_id"`
	CampaignName string        `json:"campaign_name,omitempty"`
	ClientID     string        `json:"client_id,omitempty"`
	Type         AlertType     `json:"type"`
	Severity     AlertSeverity `json:"severity"`
	Title        string        `json:"title"`
	Message      string        `json:"message"`
	MetricValue  float64       `json:"metric_value"`
	Threshold    float64       `json:"threshold"`
	Date         time.Time     `json:"date"`
	Read         bool          `json:"read"`
	ReadAt       *time.Time    `json:"read_at"`
	CreatedAt    time.Time     `json:"created_at"`
}

type AlertFilters struct {
	Unread     bool
	Severity   *AlertSeverity
	CampaignID *string
	Limit      int
}

// AlertThresholds são os limites efetivos aplicados a uma campanha
type AlertThresholds struct {
	MinROAS                    float64
	MinCTR                     float64
	MinImpressionsForCTR       int64
	MaxBudgetUsage             float64
	BudgetWarningRatio         float64
	ConversionDropPercent      float64
	LostImpressionSharePercent float64
}

// ForCampaign sobrescreve os limites padrão com os definidos na campanha
func (t AlertThresholds) ForCampaign(c *Campaign) AlertThresholds {
	if c == nil {
		return t
	}
	if c.MinROAS != nil {
		t.MinROAS = *c.MinROAS
	}
	if c.MinCTR != nil {
		t.MinCTR = *c.MinCTR
	}
	if c.MaxBudgetUsage != nil {
		t.MaxBudgetUsage = *c.MaxBudgetUsage
	}
	return t
}
