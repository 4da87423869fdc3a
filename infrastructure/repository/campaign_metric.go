package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

const campaignMetricsTable = "campaign_metrics"

var metricColumns = []string{
	"m.id", "m.campaign_id", "m.date", "m.impressions", "m.clicks", "m.cost", "m.conversions",
	"m.conversion_value", "m.ctr", "m.cpc", "m.roas", "m.cpa",
	"m.search_impression_share", "m.budget_lost_impression_share", "m.created_at", "m.updated_at",
}

type CampaignMetricRepository interface {
	Upsert(ctx context.Context, metric *domain.CampaignMetric) error
	ListByCampaign(ctx context.Context, campaignID string, filters domain.MetricFilters) ([]*domain.CampaignMetric, error)
	GetByDate(ctx context.Context, campaignID string, date time.Time) (*domain.CampaignMetric, error)
	DailySeries(ctx context.Context, scope domain.Scope, filters domain.DashboardFilters) ([]*domain.DailyPoint, error)
	TopCampaigns(ctx context.Context, scope domain.Scope, filters domain.DashboardFilters, limit int) ([]*domain.CampaignPerformance, error)
}

type campaignMetricRepository struct {
	conn postgres.Queryer
}

func NewCampaignMetricRepository(conn postgres.Queryer) CampaignMetricRepository {
	return &campaignMetricRepository{conn: conn}
}

// Upsert grava a métrica diária; a chave é (campaign_id, date)
func (r *campaignMetricRepository) Upsert(ctx context.Context, metric *domain.CampaignMetric) error {
	metric.Derive()

	query, args, err := psql.
		Insert(campaignMetricsTable).
		Columns("campaign_id", "date", "impressions", "clicks", "cost", "conversions", "conversion_value",
			"ctr", "cpc", "roas", "cpa", "search_impression_share", "budget_lost_impression_share").
		Values(metric.CampaignID, metric.Date.Format(dateLayout), metric.Impressions, metric.Clicks, metric.Cost,
			metric.Conversions, metric.ConversionValue, metric.CTR, metric.CPC, metric.ROAS, metric.CPA,
			metric.SearchImpressionShare, metric.BudgetLostImpressionShare).
		Suffix(`ON CONFLICT (campaign_id, date) DO UPDATE SET
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			cost = EXCLUDED.cost,
			conversions = EXCLUDED.conversions,
			conversion_value = EXCLUDED.conversion_value,
			ctr = EXCLUDED.ctr,
			cpc = EXCLUDED.cpc,
			roas = EXCLUDED.roas,
			cpa = EXCLUDED.cpa,
			search_impression_share = EXCLUDED.search_impression_share,
			budget_lost_impression_share = EXCLUDED.budget_lost_impression_share,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&metric.ID, &metric.CreatedAt, &metric.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao salvar métrica: %w", err)
	}

	return nil
}

func (r *campaignMetricRepository) ListByCampaign(ctx context.Context, campaignID string, filters domain.MetricFilters) ([]*domain.CampaignMetric, error) {
	builder := psql.
		Select(metricColumns...).
		From("campaign_metrics m").
		Where(squirrel.Eq{"m.campaign_id": campaignID}).
		OrderBy("m.date ASC")

	if filters.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"m.date": filters.StartDate.Format(dateLayout)})
	}
	if filters.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"m.date": filters.EndDate.Format(dateLayout)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.CampaignMetric, 0)
	for rows.Next() {
		metric, err := scanMetric(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *campaignMetricRepository) GetByDate(ctx context.Context, campaignID string, date time.Time) (*domain.CampaignMetric, error) {
	query, args, err := psql.
		Select(metricColumns...).
		From("campaign_metrics m").
		Where(squirrel.Eq{"m.campaign_id": campaignID, "m.date": date.Format(dateLayout)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	metric, err := scanMetric(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear métrica: %w", err)
	}

	return metric, nil
}

func dashboardWhere(builder squirrel.SelectBuilder, scope domain.Scope, filters domain.DashboardFilters) squirrel.SelectBuilder {
	builder = builder.
		Where(clientScope(scope)).
		Where(squirrel.GtOrEq{"m.date": filters.StartDate.Format(dateLayout)}).
		Where(squirrel.LtOrEq{"m.date": filters.EndDate.Format(dateLayout)})

	if filters.ClientID != nil {
		builder = builder.Where(squirrel.Eq{"ca.client_id": *filters.ClientID})
	}
	if filters.CampaignID != nil {
		builder = builder.Where(squirrel.Eq{"ca.id": *filters.CampaignID})
	}
	return builder
}

// DailySeries soma as métricas por dia de todas as campanhas visíveis
func (r *campaignMetricRepository) DailySeries(ctx context.Context, scope domain.Scope, filters domain.DashboardFilters) ([]*domain.DailyPoint, error) {
	builder := psql.
		Select(
			"m.date",
			"COALESCE(SUM(m.impressions), 0)",
			"COALESCE(SUM(m.clicks), 0)",
			"COALESCE(SUM(m.cost), 0)",
			"COALESCE(SUM(m.conversions), 0)",
			"COALESCE(SUM(m.conversion_value), 0)",
		).
		From("campaign_metrics m").
		Join("campaigns ca ON ca.id = m.campaign_id").
		Join("clients c ON c.id = ca.client_id").
		GroupBy("m.date").
		OrderBy("m.date ASC")

	query, args, err := dashboardWhere(builder, scope, filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	points := make([]*domain.DailyPoint, 0)
	for rows.Next() {
		var p domain.DailyPoint
		if err := rows.Scan(&p.Date, &p.Impressions, &p.Clicks, &p.Cost, &p.Conversions, &p.ConversionValue); err != nil {
			return nil, fmt.Errorf("erro ao escanear série diária: %w", err)
		}
		p.ROAS = domain.Ratio(p.ConversionValue, p.Cost)
		points = append(points, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

// TopCampaigns ordena as campanhas do período por ROAS
func (r *campaignMetricRepository) TopCampaigns(ctx context.Context, scope domain.Scope, filters domain.DashboardFilters, limit int) ([]*domain.CampaignPerformance, error) {
	builder := psql.
		Select(
			"ca.id",
			"ca.name",
			"COALESCE(SUM(m.cost), 0) AS cost",
			"COALESCE(SUM(m.conversions), 0) AS conversions",
			"COALESCE(SUM(m.conversion_value), 0) AS conversion_value",
		).
		From("campaign_metrics m").
		Join("campaigns ca ON ca.id = m.campaign_id").
		Join("clients c ON c.id = ca.client_id").
		GroupBy("ca.id", "ca.name").
		Having("SUM(m.cost) > 0").
		OrderBy("SUM(m.conversion_value) / SUM(m.cost) DESC").
		Limit(uint64(limit))

	query, args, err := dashboardWhere(builder, scope, filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	top := make([]*domain.CampaignPerformance, 0, limit)
	for rows.Next() {
		var p domain.CampaignPerformance
		if err := rows.Scan(&p.CampaignID, &p.Name, &p.Cost, &p.Conversions, &p.ConversionValue); err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		p.ROAS = domain.Ratio(p.ConversionValue, p.Cost)
		top = append(top, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return top, nil
}

func scanMetric(row rowScanner) (*domain.CampaignMetric, error) {
	var m domain.CampaignMetric
	err := row.Scan(
		&m.ID,
		&m.CampaignID,
		&m.Date,
		&m.Impressions,
		&m.Clicks,
		&m.Cost,
		&m.Conversions,
		&m.ConversionValue,
		&m.CTR,
		&m.CPC,
		&m.ROAS,
		&m.CPA,
		&m.SearchImpressionShare,
		&m.BudgetLostImpressionShare,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
