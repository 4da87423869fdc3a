package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

const assetGroupsTable = "asset_groups"

var assetGroupColumns = []string{
	"id", "campaign_id", "external_id", "name", "status", "final_url",
	"headlines", "long_headlines", "descriptions", "images", "videos",
	"ad_strength", "created_at", "updated_at",
}

type AssetGroupRepository interface {
	Create(ctx context.Context, group *domain.AssetGroup) error
	Update(ctx context.Context, group *domain.AssetGroup) error
	Delete(ctx context.Context, campaignID string, id int64) error
	GetByID(ctx context.Context, campaignID string, id int64) (*domain.AssetGroup, error)
	FindByID(ctx context.Context, id int64) (*domain.AssetGroup, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]*domain.AssetGroup, error)
	UpsertByExternalID(ctx context.Context, group *domain.AssetGroup) error
}

type assetGroupRepository struct {
	conn postgres.Queryer
}

func NewAssetGroupRepository(conn postgres.Queryer) AssetGroupRepository {
	return &assetGroupRepository{conn: conn}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func (r *assetGroupRepository) Create(ctx context.Context, group *domain.AssetGroup) error {
	query, args, err := psql.
		Insert(assetGroupsTable).
		Columns("campaign_id", "external_id", "name", "status", "final_url",
			"headlines", "long_headlines", "descriptions", "images", "videos", "ad_strength").
		Values(group.CampaignID, group.ExternalID, group.Name, group.Status, group.FinalURL,
			pq.Array(nonNil(group.Headlines)), pq.Array(nonNil(group.LongHeadlines)), pq.Array(nonNil(group.Descriptions)),
			pq.Array(nonNil(group.Images)), pq.Array(nonNil(group.Videos)), group.AdStrength).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar grupo de recursos: %w", err)
	}

	return nil
}

func (r *assetGroupRepository) Update(ctx context.Context, group *domain.AssetGroup) error {
	query, args, err := psql.
		Update(assetGroupsTable).
		Set("name", group.Name).
		Set("status", group.Status).
		Set("final_url", group.FinalURL).
		Set("headlines", pq.Array(nonNil(group.Headlines))).
		Set("long_headlines", pq.Array(nonNil(group.LongHeadlines))).
		Set("descriptions", pq.Array(nonNil(group.Descriptions))).
		Set("images", pq.Array(nonNil(group.Images))).
		Set("videos", pq.Array(nonNil(group.Videos))).
		Set("ad_strength", group.AdStrength).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": group.ID, "campaign_id": group.CampaignID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar grupo de recursos: %w", err)
	}

	return affectedOrNotFound(result.RowsAffected())
}

func (r *assetGroupRepository) Delete(ctx context.Context, campaignID string, id int64) error {
	query, args, err := psql.
		Delete(assetGroupsTable).
		Where(squirrel.Eq{"id": id, "campaign_id": campaignID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover grupo de recursos: %w", err)
	}

	return affectedOrNotFound(result.RowsAffected())
}

func (r *assetGroupRepository) GetByID(ctx context.Context, campaignID string, id int64) (*domain.AssetGroup, error) {
	query, args, err := psql.
		Select(assetGroupColumns...).
		From(assetGroupsTable).
		Where(squirrel.Eq{"id": id, "campaign_id": campaignID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	group, err := scanAssetGroup(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear grupo de recursos: %w", err)
	}

	return group, nil
}

// FindByID busca sem filtrar pela campanha; o acesso é validado pela campanha devolvida
func (r *assetGroupRepository) FindByID(ctx context.Context, id int64) (*domain.AssetGroup, error) {
	query, args, err := psql.
		Select(assetGroupColumns...).
		From(assetGroupsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	group, err := scanAssetGroup(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear grupo de recursos: %w", err)
	}

	return group, nil
}

func (r *assetGroupRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*domain.AssetGroup, error) {
	query, args, err := psql.
		Select(assetGroupColumns...).
		From(assetGroupsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	groups := make([]*domain.AssetGroup, 0)
	for rows.Next() {
		group, err := scanAssetGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear grupo de recursos: %w", err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return groups, nil
}

// UpsertByExternalID sincroniza o grupo importado do Google Ads.
// Imagens e vídeos locais são preservados no update.
func (r *assetGroupRepository) UpsertByExternalID(ctx context.Context, group *domain.AssetGroup) error {
	query, args, err := psql.
		Insert(assetGroupsTable).
		Columns("campaign_id", "external_id", "name", "status", "final_url",
			"headlines", "long_headlines", "descriptions", "ad_strength").
		Values(group.CampaignID, group.ExternalID, group.Name, group.Status, group.FinalURL,
			pq.Array(nonNil(group.Headlines)), pq.Array(nonNil(group.LongHeadlines)), pq.Array(nonNil(group.Descriptions)),
			group.AdStrength).
		Suffix(`ON CONFLICT (campaign_id, external_id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			final_url = EXCLUDED.final_url,
			headlines = EXCLUDED.headlines,
			long_headlines = EXCLUDED.long_headlines,
			descriptions = EXCLUDED.descriptions,
			ad_strength = EXCLUDED.ad_strength,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao sincronizar grupo de recursos: %w", err)
	}

	return nil
}

func scanAssetGroup(row rowScanner) (*domain.AssetGroup, error) {
	var g domain.AssetGroup
	err := row.Scan(
		&g.ID,
		&g.CampaignID,
		&g.ExternalID,
		&g.Name,
		&g.Status,
		&g.FinalURL,
		pq.Array(&g.Headlines),
		pq.Array(&g.LongHeadlines),
		pq.Array(&g.Descriptions),
		pq.Array(&g.Images),
		pq.Array(&g.Videos),
		&g.AdStrength,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
