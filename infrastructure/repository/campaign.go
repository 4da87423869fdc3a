package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

const campaignsTable = "campaigns"

var campaignColumns = []string{
	"ca.id", "ca.client_id", "c.name", "ca.external_id", "ca.name", "ca.status", "ca.type",
	"ca.daily_budget", "ca.target_roas", "ca.start_date", "ca.end_date",
	"ca.min_roas", "ca.min_ctr", "ca.max_budget_usage",
	"c.manager_id", "c.user_id", "c.google_ads_customer_id",
	"ca.created_at", "ca.updated_at",
}

type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	Update(ctx context.Context, campaign *domain.Campaign) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string, scope domain.Scope) (*domain.Campaign, error)
	List(ctx context.Context, filters domain.CampaignFilters, scope domain.Scope) ([]*domain.Campaign, error)
	ListActive(ctx context.Context) ([]*domain.Campaign, error)
	UpsertByExternalID(ctx context.Context, campaign *domain.Campaign) (bool, error)
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{conn: conn}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := psql.
		Insert(campaignsTable).
		Columns("id", "client_id", "external_id", "name", "status", "type", "daily_budget", "target_roas",
			"start_date", "end_date", "min_roas", "min_ctr", "max_budget_usage").
		Values(campaign.ID, campaign.ClientID, campaign.ExternalID, campaign.Name, campaign.Status, campaign.Type,
			campaign.DailyBudget, campaign.TargetROAS, campaign.StartDate, campaign.EndDate,
			campaign.MinROAS, campaign.MinCTR, campaign.MaxBudgetUsage).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.QueryRowContext(ctx, query, args...).Scan(&campaign.CreatedAt, &campaign.UpdatedAt)
}

func (r *campaignRepository) Update(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := psql.
		Update(campaignsTable).
		Set("external_id", campaign.ExternalID).
		Set("name", campaign.Name).
		Set("status", campaign.Status).
		Set("daily_budget", campaign.DailyBudget).
		Set("target_roas", campaign.TargetROAS).
		Set("start_date", campaign.StartDate).
		Set("end_date", campaign.EndDate).
		Set("min_roas", campaign.MinROAS).
		Set("min_ctr", campaign.MinCTR).
		Set("max_budget_usage", campaign.MaxBudgetUsage).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaign.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar campanha: %w", err)
	}

	return affectedOrNotFound(result.RowsAffected())
}

func (r *campaignRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete(campaignsTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover campanha: %w", err)
	}

	return affectedOrNotFound(result.RowsAffected())
}

func (r *campaignRepository) selectCampaigns() squirrel.SelectBuilder {
	return psql.
		Select(campaignColumns...).
		From("campaigns ca").
		Join("clients c ON c.id = ca.client_id")
}

// GetByID devolve nil quando a campanha não existe ou está fora do escopo
func (r *campaignRepository) GetByID(ctx context.Context, id string, scope domain.Scope) (*domain.Campaign, error) {
	query, args, err := r.selectCampaigns().
		Where(squirrel.Eq{"ca.id": id}).
		Where(clientScope(scope)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) List(ctx context.Context, filters domain.CampaignFilters, scope domain.Scope) ([]*domain.Campaign, error) {
	builder := r.selectCampaigns().
		Where(clientScope(scope)).
		OrderBy("ca.name ASC")

	if filters.ClientID != nil {
		builder = builder.Where(squirrel.Eq{"ca.client_id": *filters.ClientID})
	}
	if filters.Status != nil {
		builder = builder.Where(squirrel.Eq{"ca.status": *filters.Status})
	}
	if filters.Search != nil && *filters.Search != "" {
		builder = builder.Where(squirrel.ILike{"ca.name": "%" + *filters.Search + "%"})
	}

	return r.list(ctx, builder)
}

// ListActive lista campanhas habilitadas de clientes ativos, usado pelos agendadores
func (r *campaignRepository) ListActive(ctx context.Context) ([]*domain.Campaign, error) {
	builder := r.selectCampaigns().
		Where(squirrel.Eq{"ca.status": domain.CampaignStatusEnabled, "c.active": true}).
		OrderBy("ca.created_at ASC")

	return r.list(ctx, builder)
}

func (r *campaignRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Campaign, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

// UpsertByExternalID importa uma campanha do Google Ads; retorna true quando a linha foi criada
func (r *campaignRepository) UpsertByExternalID(ctx context.Context, campaign *domain.Campaign) (bool, error) {
	query, args, err := psql.
		Insert(campaignsTable).
		Columns("id", "client_id", "external_id", "name", "status", "type", "daily_budget", "target_roas", "start_date", "end_date").
		Values(campaign.ID, campaign.ClientID, campaign.ExternalID, campaign.Name, campaign.Status, campaign.Type,
			campaign.DailyBudget, campaign.TargetROAS, campaign.StartDate, campaign.EndDate).
		Suffix(`ON CONFLICT (client_id, external_id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			daily_budget = EXCLUDED.daily_budget,
			target_roas = EXCLUDED.target_roas,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			updated_at = NOW()
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted`).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var inserted bool
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt, &inserted)
	if err != nil {
		return false, fmt.Errorf("erro ao salvar campanha importada: %w", err)
	}

	return inserted, nil
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var campaign domain.Campaign
	var clientUserID sql.NullInt64

	err := row.Scan(
		&campaign.ID,
		&campaign.ClientID,
		&campaign.ClientName,
		&campaign.ExternalID,
		&campaign.Name,
		&campaign.Status,
		&campaign.Type,
		&campaign.DailyBudget,
		&campaign.TargetROAS,
		&campaign.StartDate,
		&campaign.EndDate,
		&campaign.MinROAS,
		&campaign.MinCTR,
		&campaign.MaxBudgetUsage,
		&campaign.ManagerID,
		&clientUserID,
		&campaign.CustomerID,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if clientUserID.Valid {
		id := int(clientUserID.Int64)
		campaign.ClientUserID = &id
	}

	return &campaign, nil
}
