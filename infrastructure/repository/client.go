package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

const clientsTable = "clients"

var clientColumns = []string{
	"c.id", "c.manager_id", "c.user_id", "c.name", "c.company", "c.email", "c.phone",
	"c.google_ads_customer_id", "c.active", "c.created_at", "c.updated_at",
	"(SELECT COUNT(*) FROM campaigns ca WHERE ca.client_id = c.id) AS campaign_count",
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string, scope domain.Scope) (*domain.Client, error)
	List(ctx context.Context, scope domain.Scope) ([]*domain.Client, error)
}

type clientRepository struct {
	conn postgres.Queryer
}

func NewClientRepository(conn postgres.Queryer) ClientRepository {
	return &clientRepository{conn: conn}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query, args, err := psql.
		Insert(clientsTable).
		Columns("id", "manager_id", "user_id", "name", "company", "email", "phone", "google_ads_customer_id", "active").
		Values(client.ID, client.ManagerID, client.UserID, client.Name, client.Company, client.Email, client.Phone, client.GoogleAdsCustomerID, client.Active).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.QueryRowContext(ctx, query, args...).Scan(&client.CreatedAt, &client.UpdatedAt)
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	query, args, err := psql.
		Update(clientsTable).
		Set("manager_id", client.ManagerID).
		Set("user_id", client.UserID).
		Set("name", client.Name).
		Set("company", client.Company).
		Set("email", client.Email).
		Set("phone", client.Phone).
		Set("google_ads_customer_id", client.GoogleAdsCustomerID).
		Set("active", client.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": client.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	return affectedOrNotFound(result.RowsAffected())
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete(clientsTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover cliente: %w", err)
	}

	return affectedOrNotFound(result.RowsAffected())
}

// GetByID devolve nil quando o cliente não existe ou está fora do escopo
func (r *clientRepository) GetByID(ctx context.Context, id string, scope domain.Scope) (*domain.Client, error) {
	query, args, err := psql.
		Select(clientColumns...).
		From("clients c").
		Where(squirrel.Eq{"c.id": id}).
		Where(clientScope(scope)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	client, err := scanClient(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) List(ctx context.Context, scope domain.Scope) ([]*domain.Client, error) {
	query, args, err := psql.
		Select(clientColumns...).
		From("clients c").
		Where(clientScope(scope)).
		OrderBy("c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clients, nil
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var client domain.Client
	var userID sql.NullInt64

	err := row.Scan(
		&client.ID,
		&client.ManagerID,
		&userID,
		&client.Name,
		&client.Company,
		&client.Email,
		&client.Phone,
		&client.GoogleAdsCustomerID,
		&client.Active,
		&client.CreatedAt,
		&client.UpdatedAt,
		&client.CampaignCount,
	)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		id := int(userID.Int64)
		client.UserID = &id
	}

	return &client, nil
}
