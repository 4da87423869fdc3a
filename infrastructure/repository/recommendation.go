package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

const recommendationsTable = "recommendations"

var recommendationColumns = []string{
	"r.id", "r.campaign_id", "ca.name", "r.type", "r.title", "r.description", "r.expected_impact",
	"r.priority", "r.status", "r.rejection_reason", "r.acted_by", "r.applied_at", "r.rejected_at",
	"r.created_at", "r.updated_at",
}

type RecommendationRepository interface {
	CreateBatch(ctx context.Context, recommendations []*domain.Recommendation) error
	List(ctx context.Context, filters domain.RecommendationFilters, scope domain.Scope) ([]*domain.Recommendation, error)
	GetByID(ctx context.Context, id int64, scope domain.Scope) (*domain.Recommendation, error)
	UpdateStatus(ctx context.Context, rec *domain.Recommendation) error
	CountPending(ctx context.Context, scope domain.Scope, clientID *string) (int, error)
}

type recommendationRepository struct {
	conn postgres.Queryer
}

func NewRecommendationRepository(conn postgres.Queryer) RecommendationRepository {
	return &recommendationRepository{conn: conn}
}

// CreateBatch grava todas as recomendações ou nenhuma
func (r *recommendationRepository) CreateBatch(ctx context.Context, recommendations []*domain.Recommendation) error {
	return inTransaction(ctx, r.conn, func(q postgres.Queryer) error {
		for _, rec := range recommendations {
			query, args, err := psql.
				Insert(recommendationsTable).
				Columns("campaign_id", "type", "title", "description", "expected_impact", "priority", "status").
				Values(rec.CampaignID, rec.Type, rec.Title, rec.Description, rec.ExpectedImpact, rec.Priority, domain.RecommendationPending).
				Suffix("RETURNING id, status, created_at, updated_at").
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			err = q.QueryRowContext(ctx, query, args...).Scan(&rec.ID, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt)
			if err != nil {
				return fmt.Errorf("erro ao criar recomendação: %w", err)
			}
		}
		return nil
	})
}

func (r *recommendationRepository) List(ctx context.Context, filters domain.RecommendationFilters, scope domain.Scope) ([]*domain.Recommendation, error) {
	builder := psql.
		Select(recommendationColumns...).
		From("recommendations r").
		Join("campaigns ca ON ca.id = r.campaign_id").
		Join("clients c ON c.id = ca.client_id").
		Where(clientScope(scope)).
		OrderBy("r.created_at DESC", "r.id DESC")

	if filters.CampaignID != nil {
		builder = builder.Where(squirrel.Eq{"r.campaign_id": *filters.CampaignID})
	}
	if filters.Status != nil {
		builder = builder.Where(squirrel.Eq{"r.status": *filters.Status})
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

	recs := make([]*domain.Recommendation, 0)
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear recomendação: %w", err)
		}
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return recs, nil
}

func (r *recommendationRepository) GetByID(ctx context.Context, id int64, scope domain.Scope) (*domain.Recommendation, error) {
	query, args, err := psql.
		Select(recommendationColumns...).
		From("recommendations r").
		Join("campaigns ca ON ca.id = r.campaign_id").
		Join("clients c ON c.id = ca.client_id").
		Where(squirrel.Eq{"r.id": id}).
		Where(clientScope(scope)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rec, err := scanRecommendation(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear recomendação: %w", err)
	}

	return rec, nil
}

// UpdateStatus só altera recomendações ainda pendentes; ErrNotFound indica
// que outra requisição já decidiu a recomendação.
func (r *recommendationRepository) UpdateStatus(ctx context.Context, rec *domain.Recommendation) error {
	query, args, err := psql.
		Update(recommendationsTable).
		Set("status", rec.Status).
		Set("rejection_reason", rec.RejectionReason).
		Set("acted_by", rec.ActedBy).
		Set("applied_at", rec.AppliedAt).
		Set("rejected_at", rec.RejectedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rec.ID, "status": domain.RecommendationPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar recomendação: %w", err)
	}

	return affectedOrNotFound(result.RowsAffected())
}

func (r *recommendationRepository) CountPending(ctx context.Context, scope domain.Scope, clientID *string) (int, error) {
	builder := psql.
		Select("COUNT(*)").
		From("recommendations r").
		Join("campaigns ca ON ca.id = r.campaign_id").
		Join("clients c ON c.id = ca.client_id").
		Where(squirrel.Eq{"r.status": domain.RecommendationPending}).
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
		return 0, fmt.Errorf("erro ao contar recomendações: %w", err)
	}

	return count, nil
}

func scanRecommendation(row rowScanner) (*domain.Recommendation, error) {
	var rec domain.Recommendation
	var actedBy sql.NullInt64

	err := row.Scan(
		&rec.ID,
		&rec.CampaignID,
		&rec.CampaignName,
		&rec.Type,
		&rec.Title,
		&rec.Description,
		&rec.ExpectedImpact,
		&rec.Priority,
		&rec.Status,
		&rec.RejectionReason,
		&actedBy,
		&rec.AppliedAt,
		&rec.RejectedAt,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if actedBy.Valid {
		id := int(actedBy.Int64)
		rec.ActedBy = &id
	}

	return &rec, nil
}
