package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const historyTable = "change_history"

type HistoryRepository interface {
	Create(ctx context.Context, entry *domain.ChangeHistory) error
	List(ctx context.Context, filters domain.HistoryFilters, scope domain.Scope) ([]*domain.ChangeHistory, int, error)
}

type historyRepository struct {
	conn postgres.Queryer
}

func NewHistoryRepository(conn postgres.Queryer) HistoryRepository {
	return &historyRepository{conn: conn}
}

func (r *historyRepository) Create(ctx context.Context, entry *domain.ChangeHistory) error {
	var changes any
	if len(entry.Changes) > 0 {
		raw, err := json.Marshal(entry.Changes)
		if err != nil {
			return fmt.Errorf("erro ao serializar alterações: %w", err)
		}
		changes = string(raw)
	}

	query, args, err := psql.
		Insert(historyTable).
		Columns("user_id", "entity_type", "entity_id", "action", "description", "changes").
		Values(entry.UserID, entry.EntityType, entry.EntityID, entry.Action, entry.Description, changes).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao registrar histórico: %w", err)
	}

	return nil
}

// historyScope: gestor vê as próprias ações e as dos usuários dos seus clientes
func historyScope(scope domain.Scope) squirrel.Sqlizer {
	switch {
	case scope.ManagerID != nil:
		return squirrel.Or{
			squirrel.Eq{"h.user_id": *scope.ManagerID},
			squirrel.Expr("h.user_id IN (SELECT user_id FROM clients WHERE manager_id = ? AND user_id IS NOT NULL)", *scope.ManagerID),
		}
	case scope.ClientUserID != nil:
		return squirrel.Eq{"h.user_id": *scope.ClientUserID}
	}
	return squirrel.And{}
}

func historyWhere(filters domain.HistoryFilters, scope domain.Scope) squirrel.And {
	where := squirrel.And{historyScope(scope)}

	if filters.EntityType != nil {
		where = append(where, squirrel.Eq{"h.entity_type": *filters.EntityType})
	}
	if filters.EntityID != nil {
		where = append(where, squirrel.Eq{"h.entity_id": *filters.EntityID})
	}
	if filters.UserID != nil {
		where = append(where, squirrel.Eq{"h.user_id": *filters.UserID})
	}
	if filters.Action != nil {
		where = append(where, squirrel.Eq{"h.action": *filters.Action})
	}
	if filters.StartDate != nil {
		where = append(where, squirrel.GtOrEq{"h.created_at": *filters.StartDate})
	}
	if filters.EndDate != nil {
		where = append(where, squirrel.Lt{"h.created_at": filters.EndDate.AddDate(0, 0, 1)})
	}

	return where
}

// List devolve a página pedida, da mais recente para a mais antiga, e o total
func (r *historyRepository) List(ctx context.Context, filters domain.HistoryFilters, scope domain.Scope) ([]*domain.ChangeHistory, int, error) {
	filters.Normalize()
	where := historyWhere(filters, scope)

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("change_history h").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar histórico: %w", err)
	}

	query, args, err := psql.
		Select("h.id", "h.user_id", "COALESCE(TRIM(u.name || ' ' || u.lastname), '')", "h.entity_type",
			"h.entity_id", "h.action", "h.description", "h.changes", "h.created_at").
		From("change_history h").
		LeftJoin("users u ON u.id = h.user_id").
		Where(where).
		OrderBy("h.created_at DESC", "h.id DESC").
		Limit(uint64(filters.PageSize)).
		Offset(uint64((filters.Page - 1) * filters.PageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.ChangeHistory, 0, filters.PageSize)
	for rows.Next() {
		var (
			h       domain.ChangeHistory
			userID  sql.NullInt64
			changes []byte
		)

		err := rows.Scan(&h.ID, &userID, &h.UserName, &h.EntityType, &h.EntityID, &h.Action, &h.Description, &changes, &h.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear histórico: %w", err)
		}

		if userID.Valid {
			id := int(userID.Int64)
			h.UserID = &id
		}
		if len(changes) > 0 {
			if err := json.Unmarshal(changes, &h.Changes); err != nil {
				return nil, 0, fmt.Errorf("erro ao decodificar alterações: %w", err)
			}
		}

		items = append(items, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, total, nil
}
