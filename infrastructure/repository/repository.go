package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

// ErrNotFound indica que nenhuma linha foi afetada ou encontrada
var ErrNotFound = errors.New("registro não encontrado")

const dateLayout = "2006-01-02"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// clientScope filtra pela tabela clients (alias c) conforme o tenant
func clientScope(scope domain.Scope) squirrel.Sqlizer {
	conds := squirrel.And{}
	if scope.ManagerID != nil {
		conds = append(conds, squirrel.Eq{"c.manager_id": *scope.ManagerID})
	}
	if scope.ClientUserID != nil {
		conds = append(conds, squirrel.Eq{"c.user_id": *scope.ClientUserID})
	}
	return conds
}

// scopedCampaignIDs devolve o subselect de campanhas visíveis para o tenant
func scopedCampaignIDs(scope domain.Scope) squirrel.SelectBuilder {
	return squirrel.Select("ca.id").
		From("campaigns ca").
		Join("clients c ON c.id = ca.client_id").
		Where(clientScope(scope))
}

func affectedOrNotFound(rowsAffected int64, err error) error {
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// inTransaction executa fn numa transação própria; se conn já for uma *sql.Tx, usa a transação do chamador
func inTransaction(ctx context.Context, conn postgres.Queryer, fn func(postgres.Queryer) error) error {
	db, ok := conn.(txBeginner)
	if !ok {
		return fn(conn)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
