package domain

import "time"

type DashboardFilters struct {
	StartDate  time.Time
	EndDate    time.Time
	ClientID   *string
	CampaignID *string
}

// PreviousPeriod devolve a janela anterior com o mesmo número de dias
func (f DashboardFilters) PreviousPeriod() (time.Time, time.Time) {
	days := int(f.EndDate.Sub(f.StartDate).Hours()/24) + 1
	prevEnd := f.StartDate.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -(days - 1))
	return prevStart, prevEnd
}

type DailyPoint struct {
	Date            time.Time `json:"date"`
	Impressions     int64     `json:"impressions"`
	Clicks          int64     `json:"clicks"`
	Cost            float64   `json:"cost"`
	Conversions     float64   `json:"conversions"`
	ConversionValue float64   `json:"conversion_value"`
	ROAS            float64   `json:"roas"`
}

type CampaignPerformance struct {
	CampaignID      string  `json:"campaign_id"`
	Name            string  `json:"name"`
	Cost            float64 `json:"cost"`
	Conversions     float64 `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"`
	ROAS            float64 `json:"roas"`
}

type MetricChanges struct {
	Impressions     float64 `json:"impressions"`
	Clicks          float64 `json:"clicks"`
	Cost            float64 `json:"cost"`
	Conversions     float64 `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"`
	CTR             float64 `json:"ctr"`
	CPC             float64 `json:"cpc"`
	ROAS            float64 `json:"roas"`
}

type Dashboard struct {
	StartDate              time.Time              `json:"start_date"`
	EndDate                time.Time              `json:"end_date"`
	Totals                 MetricTotals           `json:"totals"`
	PreviousTotals         MetricTotals           `json:"previous_totals"`
	Changes                MetricChanges          `json:"changes"`
	ActiveCampaigns        int                    `json:"active_campaigns"`
	UnreadAlerts           int                    `json:"unread_alerts"`
	PendingRecommendations int                    `json:"pending_recommendations"`
	Daily                  []*DailyPoint          `json:"daily"`
	TopCampaigns           []*CampaignPerformance `json:"top_campaigns"`
}
