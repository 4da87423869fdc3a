package main

import (
	"context"
	"database/sql"
	"math"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedClientID = "SEEDCL"
	metricDays   = 30
)

type seedUser struct {
	Name     string
	Lastname string
	Email    string
	Password string
	RoleID   int
}

type seedCampaign struct {
	ID          string
	ExternalID  string
	Name        string
	DailyBudget float64
	TargetROAS  float64
	// fatores usados para gerar séries com perfis diferentes
	BaseImpressions int64
	BaseCTR         float64
	BaseROAS        float64
}

type seedAssetGroup struct {
	CampaignID   string
	ExternalID   string
	Name         string
	FinalURL     string
	Headlines    []string
	LongHeadline []string
	Descriptions []string
}

var (
	adminUser   = seedUser{Name: "Admin", Lastname: "AdsOptimizer", Email: "admin@adsoptimizer.local", Password: "Admin@12345", RoleID: domain.RoleAdmin}
	managerUser = seedUser{Name: "Marina", Lastname: "Gestora", Email: "gestor@adsoptimizer.local", Password: "Gestor@12345", RoleID: domain.RoleManager}
	clientUser  = seedUser{Name: "Carlos", Lastname: "Cliente", Email: "cliente@adsoptimizer.local", Password: "Cliente@12345", RoleID: domain.RoleClient}

	seedCampaigns = []seedCampaign{
		{ID: "SEEDC1", ExternalID: "900000001", Name: "PMax | Loja Online | Conversões", DailyBudget: 150, TargetROAS: 4,
			BaseImpressions: 12000, BaseCTR: 1.8, BaseROAS: 4.2},
		{ID: "SEEDC2", ExternalID: "900000002", Name: "PMax | Remarketing | Valor", DailyBudget: 80, TargetROAS: 3,
			BaseImpressions: 5000, BaseCTR: 0.7, BaseROAS: 1.6},
	}

	seedAssetGroups = []seedAssetGroup{
		{
			CampaignID: "SEEDC1", ExternalID: "800000001", Name: "Coleção Verão", FinalURL: "https://loja.exemplo.com.br/verao",
			Headlines:    []string{"Coleção Verão 2024", "Frete Grátis Acima de R$199", "Até 40% Off"},
			LongHeadline: []string{"Renove o guarda-roupa com a nova coleção de verão"},
			Descriptions: []string{"Peças leves e confortáveis para o calor.", "Parcele em até 10x sem juros."},
		},
		{
			CampaignID: "SEEDC2", ExternalID: "800000002", Name: "Carrinho Abandonado", FinalURL: "https://loja.exemplo.com.br/carrinho",
			Headlines:    []string{"Seu Carrinho Está Esperando", "Cupom VOLTA10"},
			LongHeadline: []string{"Finalize sua compra hoje e ganhe 10% de desconto"},
			Descriptions: []string{"Os itens que você escolheu ainda estão disponíveis."},
		},
	}
)

// seed grava os dados de demonstração; pode ser executado várias vezes sem duplicar registros
func seed(ctx context.Context, tx *sql.Tx, today time.Time) error {
	adminID, err := upsertUser(ctx, tx, adminUser, nil)
	if err != nil {
		return err
	}

	managerID, err := upsertUser(ctx, tx, managerUser, nil)
	if err != nil {
		return err
	}

	clientUserID, err := upsertUser(ctx, tx, clientUser, &managerID)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"admin_id":       adminID,
		"manager_id":     managerID,
		"client_user_id": clientUserID,
	}).Info("Usuários prontos")

	_, err = tx.ExecContext(ctx, `
		INSERT INTO clients (id, manager_id, user_id, name, company, email, google_ads_customer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`,
		seedClientID, managerID, clientUserID, "Carlos Cliente", "Loja Exemplo LTDA", clientUser.Email, "1234567890")
	if err != nil {
		return errors.Wrap(err, "erro ao inserir cliente")
	}

	if err := insertCampaigns(ctx, tx, today); err != nil {
		return err
	}

	metricCount, err := insertMetrics(ctx, tx, today)
	if err != nil {
		return err
	}

	if err := insertAssetGroups(ctx, tx); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"campaigns": len(seedCampaigns),
		"metrics":   metricCount,
	}).Info("Campanhas e métricas prontas")

	return nil
}

func upsertUser(ctx context.Context, tx *sql.Tx, u seedUser, managerID *int) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	// o DO UPDATE sem alteração garante o RETURNING quando o usuário já existe
	var id int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (name, lastname, email, password_hash, role_id, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`,
		u.Name, u.Lastname, u.Email, string(hash), u.RoleID, managerID).Scan(&id)
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao inserir usuário %s", u.Email)
	}

	return id, nil
}

func insertCampaigns(ctx context.Context, tx *sql.Tx, today time.Time) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO campaigns (id, client_id, external_id, name, status, daily_budget, target_roas, start_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return errors.Wrap(err, "erro ao preparar statement de campanhas")
	}
	defer stmt.Close()

	startDate := utils.Truncate(today).AddDate(0, 0, -metricDays)
	for _, c := range seedCampaigns {
		_, err := stmt.ExecContext(ctx, c.ID, seedClientID, c.ExternalID, c.Name, domain.CampaignStatusEnabled, c.DailyBudget, c.TargetROAS, startDate)
		if err != nil {
			return errors.Wrapf(err, "erro ao inserir campanha %s", c.Name)
		}
	}

	return nil
}

func insertMetrics(ctx context.Context, tx *sql.Tx, today time.Time) (int, error) {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO campaign_metrics (campaign_id, date, impressions, clicks, cost, conversions, conversion_value,
			ctr, cpc, roas, cpa, search_impression_share, budget_lost_impression_share)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (campaign_id, date) DO NOTHING`)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao preparar statement de métricas")
	}
	defer stmt.Close()

	count := 0
	for _, c := range seedCampaigns {
		for _, m := range buildMetrics(c, today, metricDays) {
			_, err := stmt.ExecContext(ctx, m.CampaignID, m.Date, m.Impressions, m.Clicks, m.Cost, m.Conversions, m.ConversionValue,
				m.CTR, m.CPC, m.ROAS, m.CPA, m.SearchImpressionShare, m.BudgetLostImpressionShare)
			if err != nil {
				return count, errors.Wrapf(err, "erro ao inserir métrica de %s", m.Date.Format(utils.DateLayout))
			}
			count++
		}
	}

	return count, nil
}

// buildMetrics gera uma série determinística terminando ontem, com variação semanal
func buildMetrics(c seedCampaign, today time.Time, days int) []*domain.CampaignMetric {
	end := utils.Truncate(today).AddDate(0, 0, -1)
	metrics := make([]*domain.CampaignMetric, 0, days)

	for i := days - 1; i >= 0; i-- {
		date := end.AddDate(0, 0, -i)
		wave := 1 + 0.15*math.Sin(float64(date.YearDay())*2*math.Pi/7)

		impressions := int64(float64(c.BaseImpressions) * wave)
		clicks := int64(float64(impressions) * c.BaseCTR / 100)
		cost := utils.RoundWithTwoDecimalPlace(c.DailyBudget * 0.85 * wave)
		value := utils.RoundWithTwoDecimalPlace(cost * c.BaseROAS * (2 - wave))
		conversions := math.Round(value / 120)

		sis := utils.RoundWithTwoDecimalPlace(55 * wave)
		lost := utils.RoundWithTwoDecimalPlace(30 * (wave - 0.8))

		m := &domain.CampaignMetric{
			CampaignID:                c.ID,
			Date:                      date,
			Impressions:               impressions,
			Clicks:                    clicks,
			Cost:                      cost,
			Conversions:               conversions,
			ConversionValue:           value,
			SearchImpressionShare:     &sis,
			BudgetLostImpressionShare: &lost,
		}
		m.Derive()
		metrics = append(metrics, m)
	}

	return metrics
}

func insertAssetGroups(ctx context.Context, tx *sql.Tx) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO asset_groups (campaign_id, external_id, name, final_url, headlines, long_headlines, descriptions)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (campaign_id, external_id) DO NOTHING`)
	if err != nil {
		return errors.Wrap(err, "erro ao preparar statement de grupos de recursos")
	}
	defer stmt.Close()

	for _, g := range seedAssetGroups {
		_, err := stmt.ExecContext(ctx, g.CampaignID, g.ExternalID, g.Name, g.FinalURL,
			pq.Array(g.Headlines), pq.Array(g.LongHeadline), pq.Array(g.Descriptions))
		if err != nil {
			return errors.Wrapf(err, "erro ao inserir grupo de recursos %s", g.Name)
		}
	}

	return nil
}
