package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

const alertsTable = "alerts"

var alertColumns = []string{
	"a.id", "a.campaign_id", "ca.name", "ca.client_id", "a.type", "a.severity", "a.title", "a.message",
	"a.metric_value", "a.threshold", "a.date", "a.read", "a.read_at", "a.created_at",
}

type AlertRepository interface {
	CreateIfNotExists(ctx context.Context, alert *domain.Alert) (bool, error)
	List(ctx context.Context, filters domain.AlertFilters, scope domain.Scope) ([]*domain.Alert, error)
	GetByID(ctx context.Context, id int64, scope domain.Scope) (*domain.Alert, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, scope domain.Scope) (int64, error)
	Delete(ctx context.Context, id int64) error
	UnreadCount(ctx context.Context, scope domain.Scope, clientID *string) (int, error)
}

type alertRepository struct {
	conn postgres.Queryer
}

func NewAlertRepository(conn postgres.Queryer) AlertRepository {
	return &alertRepository{conn: conn}
}

// CreateIfNotExists grava o alerta uma única vez por (campanha, tipo, data).
// Retorna false quando o alerta já existia.
func (r *alertRepository) CreateIfNotExists(ctx context.Context, alert *domain.Alert) (bool, error) {
	query, args, err := psql.
		Insert(alertsTable).
		Columns("campaign_id", "type", "severity", "title", "message", "metric_value", "threshold", "date").
		Values(alert.CampaignID, alert.Type, alert.Severity, alert.Title, alert.Message,
			alert.MetricValue, alert.Threshold, alert.Date.Format(dateLayout)).
		Suffix("ON CONFLICT (campaign_id, type, date) DO NOTHING RETURNING id, created_at").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&alert.ID, &alert.CreatedAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("erro ao criar alerta: %w", err)
	}

	return true, nil
}

func (r *alertRepository) List(ctx context.Context, filters domain.AlertFilters, scope domain.Scope) ([]*domain.Alert, error) {
	builder := psql.
		Select(alertColumns...).
		From("alerts a").
		Join("campaigns ca ON ca.id = a.campaign_id").
		Join("clients c ON c.id = ca.client_id").
		Where(clientScope(scope)).
		OrderBy("a.created_at DESC", "a.id DESC")

	if filters.Unread {
		builder = builder.Where(squirrel.Eq{"a.read": false})
	}
	if filters.Severity != nil {
		builder = builder.Where(squirrel.Eq{"a.severity": *filters.Severity})
	}
	if filters.CampaignID != nil {
		builder = builder.Where(squirrel.Eq{"a.campaign_id": *filters.CampaignID})
	}
	if filters.Limit > 0 {
		builder = builder.Limit(uint64(filters.Limit))
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

	alerts := make([]*domain.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear alerta: %w", err)
		}
		alerts = append(alerts, alert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return alerts, nil
}

func (r *alertRepository) GetByID(ctx context.Context, id int64, scope domain.Scope) (*domain.Alert, error) {
	query, args, err := psql.
		Select(alertColumns...).
		From("alerts a").
		Join("campaigns ca ON ca.id = a.campaign_id").
		Join("clients c ON c.id = ca.client_id").
		Where(squirrel.Eq{"a.id": id}).
		Where(clientScope(scope)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	alert, err := scanAlert(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear alerta: %w", err)
	}

	return alert, nil
}

func (r *alertRepository) MarkRead(ctx context.Context, id int64) error {
	query, args, err := psql.
		Update(alertsTable).
		Set("read", true).
		Set("read_at", squirrel.Expr("COALESCE(read_at, NOW())")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao marcar alerta como lido: %w", err)
	}

	return affectedOrNotFound(result.RowsAffected())
}

func (r *alertRepository) MarkAllRead(ctx context.Context, scope domain.Scope) (int64, error) {
	builder := psql.
		Update(alertsTable).
		Set("read", true).
		Set("read_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"read": false})

	if !scope.Unrestricted() {
		builder = builder.Where(squirrel.Expr("campaign_id IN (?)", scopedCampaignIDs(scope)))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao marcar alertas como lidos: %w", err)
	}

	return result.RowsAffected()
}

func (r *alertRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete(alertsTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover alerta: %w", err)
	}

	return affectedOrNotFound(result.RowsAffected())
}

func (r *alertRepository) UnreadCount(ctx context.Context, scope domain.Scope, clientID *string) (int, error) {
	builder := psql.
		Select("COUNT(*)").
		From("alerts a").
		Join("campaigns ca ON ca.id = a.campaign_id").
		Join("clients c ON c.id = ca.client_id").
		Where(squirrel.Eq{"a.read": false}).
		Where(clientScope(scope))

	if clientID != nil {
		builder = builder.Where(squirrel.Eq{"ca.client_id": *clientID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar alertas: %w", err)
	}

	return count, nil
}

func scanAlert(row rowScanner) (*domain.Alert, error) {
	var a domain.Alert
	err := row.Scan(
		&a.ID,
		&a.CampaignID,
		&a.CampaignName,
		&a.ClientID,
		&a.Type,
		&a.Severity,
		&a.Title,
		&a.Message,
		&a.MetricValue,
		&a.Threshold,
		&a.Date,
		&a.Read,
		&a.ReadAt,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
