package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func intPtr(v int) *int { return &v }

var campaignRowColumns = []string{
	"id", "client_id", "client_name", "external_id", "name", "status", "type", "daily_budget", "target_roas",
	"start_date", "end_date", "min_roas", "min_ctr", "max_budget_usage", "manager_id", "user_id",
	"google_ads_customer_id", "created_at", "updated_at",
}

func TestCampaignRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("campanha no escopo do gestor", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewCampaignRepository(db)

		rows := sqlmock.NewRows(campaignRowColumns).AddRow(
			"Ab12Cd", "Cl34Ef", "Loja Centro", "987", "PMax Verão", "ENABLED", "PERFORMANCE_MAX", 150.0, 4.0,
			nil, nil, 3.0, nil, nil, 7, 12, "1234567890", now, now,
		)
		mock.ExpectQuery("FROM campaigns ca JOIN clients c ON c.id = ca.client_id WHERE ca.id = \\$1 AND \\(c.manager_id = \\$2\\)").
			WithArgs("Ab12Cd", 7).
			WillReturnRows(rows)

		campaign, err := repo.GetByID(ctx, "Ab12Cd", domain.Scope{ManagerID: intPtr(7)})
		require.NoError(t, err)
		require.NotNil(t, campaign)
		assert.Equal(t, "PMax Verão", campaign.Name)
		assert.Equal(t, domain.CampaignStatusEnabled, campaign.Status)
		assert.Equal(t, 7, campaign.ManagerID)
		require.NotNil(t, campaign.ClientUserID)
		assert.Equal(t, 12, *campaign.ClientUserID)
		require.NotNil(t, campaign.MinROAS)
		assert.Equal(t, 3.0, *campaign.MinROAS)
		assert.Nil(t, campaign.MinCTR)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fora do escopo devolve nil sem erro", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewCampaignRepository(db)

		mock.ExpectQuery("FROM campaigns ca").
			WithArgs("Ab12Cd", 99).
			WillReturnRows(sqlmock.NewRows(campaignRowColumns))

		campaign, err := repo.GetByID(ctx, "Ab12Cd", domain.Scope{ManagerID: intPtr(99)})
		assert.NoError(t, err)
		assert.Nil(t, campaign)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCampaignRepository_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCampaignRepository(db)

	mock.ExpectExec("DELETE FROM campaigns WHERE id = \\$1").
		WithArgs("zz99zz").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "zz99zz")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_List_ClientUserScope(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "manager_id", "user_id", "name", "company", "email", "phone",
		"google_ads_customer_id", "active", "created_at", "updated_at", "campaign_count",
	}).AddRow("Cl34Ef", 7, 12, "Loja Centro", nil, nil, nil, nil, true, now, now, 2)

	mock.ExpectQuery("FROM clients c WHERE \\(c.user_id = \\$1\\) ORDER BY c.name ASC").
		WithArgs(12).
		WillReturnRows(rows)

	clients, err := repo.List(context.Background(), domain.Scope{ClientUserID: intPtr(12)})
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, 2, clients[0].CampaignCount)
	require.NotNil(t, clients[0].UserID)
	assert.Equal(t, 12, *clients[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignMetricRepository_Upsert(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCampaignMetricRepository(db)
	now := time.Now()

	metric := &domain.CampaignMetric{
		CampaignID:      "Ab12Cd",
		Date:            time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Impressions:     1000,
		Clicks:          20,
		Cost:            50,
		Conversions:     2,
		ConversionValue: 200,
	}

	mock.ExpectQuery("INSERT INTO campaign_metrics .* ON CONFLICT \\(campaign_id, date\\) DO UPDATE").
		WithArgs("Ab12Cd", "2024-05-01", int64(1000), int64(20), 50.0, 2.0, 200.0, 2.0, 2.5, 4.0, 25.0, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(31), now, now))

	err := repo.Upsert(context.Background(), metric)
	require.NoError(t, err)
	assert.Equal(t, int64(31), metric.ID)
	assert.Equal(t, 4.0, metric.ROAS)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetGroupRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAssetGroupRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows(assetGroupColumns).AddRow(
		int64(5), "Ab12Cd", "555", "Óculos de sol", "ENABLED", "https://loja.com.br",
		"{Frete grátis,Até 10x sem juros}", "{}", "{\"Modelos novos toda semana\"}", "{}", "{}",
		"GOOD", now, now,
	)
	mock.ExpectQuery("FROM asset_groups WHERE").
		WithArgs("Ab12Cd", int64(5)).
		WillReturnRows(rows)

	group, err := repo.GetByID(context.Background(), "Ab12Cd", 5)
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, []string{"Frete grátis", "Até 10x sem juros"}, group.Headlines)
	assert.Equal(t, []string{"Modelos novos toda semana"}, group.Descriptions)
	assert.Empty(t, group.Images)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_CreateIfNotExists(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	newAlert := func() *domain.Alert {
		return &domain.Alert{
			CampaignID:  "Ab12Cd",
			Type:        domain.AlertLowROAS,
			Severity:    domain.SeverityWarning,
			Title:       "ROAS abaixo do mínimo",
			Message:     "ROAS 1.50 abaixo de 2.00",
			MetricValue: 1.5,
			Threshold:   2,
			Date:        date,
		}
	}

	t.Run("primeira execução cria o alerta", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewAlertRepository(db)

		mock.ExpectQuery("INSERT INTO alerts .* ON CONFLICT \\(campaign_id, type, date\\) DO NOTHING").
			WithArgs("Ab12Cd", domain.AlertLowROAS, domain.SeverityWarning, sqlmock.AnyArg(), sqlmock.AnyArg(), 1.5, 2.0, "2024-05-01").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))

		alert := newAlert()
		created, err := repo.CreateIfNotExists(ctx, alert)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(1), alert.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("segunda execução no mesmo dia não duplica", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewAlertRepository(db)

		mock.ExpectQuery("INSERT INTO alerts").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))

		created, err := repo.CreateIfNotExists(ctx, newAlert())
		require.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAlertRepository_MarkAllRead_ScopedByManager(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAlertRepository(db)

	mock.ExpectExec("UPDATE alerts SET read = \\$1, read_at = NOW\\(\\) WHERE read = \\$2 AND campaign_id IN \\(SELECT ca.id FROM campaigns ca JOIN clients c ON c.id = ca.client_id WHERE \\(c.manager_id = \\$3\\)\\)").
		WithArgs(true, false, 7).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.MarkAllRead(context.Background(), domain.Scope{ManagerID: intPtr(7)})
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationRepository_CreateBatch(t *testing.T) {
	newBatch := func() []*domain.Recommendation {
		return []*domain.Recommendation{
			{CampaignID: "Ab12Cd", Type: "BUDGET", Title: "Aumentar orçamento", Priority: "HIGH"},
			{CampaignID: "Ab12Cd", Type: "ASSETS", Title: "Novos títulos", Priority: "MEDIUM"},
		}
	}
	returning := []string{"id", "status", "created_at", "updated_at"}
	now := time.Now()

	t.Run("grava todas na mesma transação", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRecommendationRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO recommendations").
			WillReturnRows(sqlmock.NewRows(returning).AddRow(int64(1), "PENDING", now, now))
		mock.ExpectQuery("INSERT INTO recommendations").
			WillReturnRows(sqlmock.NewRows(returning).AddRow(int64(2), "PENDING", now, now))
		mock.ExpectCommit()

		recs := newBatch()
		require.NoError(t, repo.CreateBatch(context.Background(), recs))
		assert.Equal(t, int64(1), recs[0].ID)
		assert.Equal(t, int64(2), recs[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha no segundo insert desfaz o primeiro", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRecommendationRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO recommendations").
			WillReturnRows(sqlmock.NewRows(returning).AddRow(int64(1), "PENDING", now, now))
		mock.ExpectQuery("INSERT INTO recommendations").
			WillReturnError(errors.New("conexão perdida"))
		mock.ExpectRollback()

		err := repo.CreateBatch(context.Background(), newBatch())
		assert.ErrorContains(t, err, "erro ao criar recomendação")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecommendationRepository_UpdateStatus(t *testing.T) {
	applied := time.Now()
	rec := &domain.Recommendation{
		ID:        3,
		Status:    domain.RecommendationApplied,
		ActedBy:   intPtr(7),
		AppliedAt: &applied,
	}

	t.Run("pendente é atualizada", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRecommendationRepository(db)

		mock.ExpectExec("UPDATE recommendations SET .* WHERE id = \\$6 AND status = \\$7").
			WithArgs(domain.RecommendationApplied, nil, 7, applied, nil, int64(3), domain.RecommendationPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(context.Background(), rec))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("já decidida devolve ErrNotFound", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRecommendationRepository(db)

		mock.ExpectExec("UPDATE recommendations").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateStatus(context.Background(), rec), ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestChatRepository_ListMessages_InsertionOrder(t *testing.T) {
	db, mock := newMock(t)
	repo := NewChatRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows(messageColumns).
		AddRow(int64(9), int64(1), 7, "terceira", false, nil, now).
		AddRow(int64(8), int64(1), 12, "segunda", true, now, now).
		AddRow(int64(7), int64(1), 7, "primeira", true, now, now)

	mock.ExpectQuery("FROM chat_messages WHERE conversation_id = \\$1 AND id < \\$2 ORDER BY id DESC LIMIT 3").
		WithArgs(int64(1), int64(10)).
		WillReturnRows(rows)

	before := int64(10)
	messages, err := repo.ListMessages(context.Background(), 1, domain.MessageFilters{BeforeID: &before, Limit: 3})
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "primeira", messages[0].Content)
	assert.Equal(t, "terceira", messages[2].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_MarkRead(t *testing.T) {
	db, mock := newMock(t)
	repo := NewChatRepository(db)

	mock.ExpectExec("UPDATE chat_messages SET read = \\$1, read_at = NOW\\(\\) WHERE .* AND sender_id <> \\$4").
		WithArgs(true, int64(1), false, 12).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.MarkRead(context.Background(), 1, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewHistoryRepository(db)
	now := time.Now()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM change_history h WHERE").
		WithArgs(7, 7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery("FROM change_history h LEFT JOIN users u ON u.id = h.user_id WHERE .* LIMIT 20 OFFSET 0").
		WithArgs(7, 7).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "user_name", "entity_type", "entity_id", "action", "description", "changes", "created_at",
		}).AddRow(int64(1), 7, "Maria Souza", domain.EntityCampaign, "Ab12Cd", "UPDATE", "Campanha atualizada", []byte(`{"daily_budget":{"from":100,"to":150}}`), now))

	items, total, err := repo.List(context.Background(), domain.HistoryFilters{}, domain.Scope{ManagerID: intPtr(7)})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, domain.ActionUpdate, items[0].Action)
	assert.Contains(t, items[0].Changes, "daily_budget")
	assert.NoError(t, mock.ExpectationsWereMet())
}
