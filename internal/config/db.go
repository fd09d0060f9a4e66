package config

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(ctx context.Context, dsn string) error {
	log := WithContext(ctx)

	if dsn == "" {
		return fmt.Errorf("DATABASE_DSN não configurado")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.WithError(err).Error("Erro ao conectar no banco de dados")
		return fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		log.WithError(err).Error("Banco de dados inacessível")
		return fmt.Errorf("failed to ping database: %w", err)
	}

	DB = db
	log.Info("Conexão com o banco de dados estabelecida")
	return nil
}
