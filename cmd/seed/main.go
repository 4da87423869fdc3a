package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/database/migrations"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando carga de dados de demonstração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := migrations.Up(conn.DB); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrations")
	}

	startTime := time.Now()
	today := time.Now().UTC()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return seed(ctx, tx, today)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar dados, transação revertida")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Carga de dados concluída")
}
