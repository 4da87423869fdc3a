package domain

import "time"

type CampaignMetric struct {
	ID                        int64     `json:"id"`
	CampaignID                string    `json:"campaign_id"`
	Date                      time.Time `json:"date"`
	Impressions               int64     `json:"impressions"`
	Clicks                    int64     `json:"clicks"`
	Cost                      float64   `json:"cost"`
	Conversions               float64   `json:"conversions"`
	ConversionValue           float64   `json:"conversion_value"`
	CTR                       float64   `json:"ctr"`
	CPC                       float64   `json:"cpc"`
	ROAS                      float64   `json:"roas"`
	CPA                       float64   `json:"cpa"`
	SearchImpressionShare     *float64  `json:"search_impression_share"`
	BudgetLostImpressionShare *float64  `json:"budget_lost_impression_share"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// Ratio devolve a/b, ou 0 quando o divisor é 0
func Ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Derive recalcula CTR, CPC, ROAS e CPA a partir dos valores brutos
func (m *CampaignMetric) Derive() {
	m.CTR = Ratio(float64(m.Clicks), float64(m.Impressions)) * 100
	m.CPC = Ratio(m.Cost, float64(m.Clicks))
	m.ROAS = Ratio(m.ConversionValue, m.Cost)
	m.CPA = Ratio(m.Cost, m.Conversions)
}

type MetricTotals struct {
	Impressions     int64   `json:"impressions"`
	Clicks          int64   `json:"clicks"`
	Cost            float64 `json:"cost"`
	Conversions     float64 `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"`
	CTR             float64 `json:"ctr"`
	CPC             float64 `json:"cpc"`
	ROAS            float64 `json:"roas"`
	CPA             float64 `json:"cpa"`
}

func (t *MetricTotals) Add(m *CampaignMetric) {
	t.Impressions += m.Impressions
	t.Clicks += m.Clicks
	t.Cost += m.Cost
	t.Conversions += m.Conversions
	t.ConversionValue += m.ConversionValue
}

func (t *MetricTotals) Derive() {
	t.CTR = Ratio(float64(t.Clicks), float64(t.Impressions)) * 100
	t.CPC = Ratio(t.Cost, float64(t.Clicks))
	t.ROAS = Ratio(t.ConversionValue, t.Cost)
	t.CPA = Ratio(t.Cost, t.Conversions)
}

func Totalize(metrics []*CampaignMetric) MetricTotals {
	var totals MetricTotals
	for _, m := range metrics {
		totals.Add(m)
	}
	totals.Derive()
	return totals
}

type MetricFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

type CampaignMetricsReport struct {
	CampaignID string            `json:"campaign_id"`
	StartDate  *time.Time        `json:"start_date"`
	EndDate    *time.Time        `json:"end_date"`
	Daily      []*CampaignMetric `json:"daily"`
	Totals     MetricTotals      `json:"totals"`
}

type MetricRequest struct {
	Date                      string   `json:"date"`
	Impressions               int64    `json:"impressions"`
	Clicks                    int64    `json:"clicks"`
	Cost                      float64  `json:"cost"`
	Conversions               float64  `json:"conversions"`
	ConversionValue           float64  `json:"conversion_value"`
	SearchImpressionShare     *float64 `json:"search_impression_share"`
	BudgetLostImpressionShare *float64 `json:"budget_lost_impression_share"`
}
