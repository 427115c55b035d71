package gormdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/skillsmatrix/backend/internal/domain/ports"
	"github.com/skillsmatrix/backend/internal/infrastructure/config"
)

// NewDatabaseConnection abre a conexão com o banco configurado.
// O default é um arquivo SQLite local (WAL, foreign keys ligadas,
// escritor único); PostgreSQL fica disponível via DB_DRIVER=postgres.
func NewDatabaseConnection(cfg *config.DatabaseConfig, log ports.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: false,
	}

	var dialector gorm.Dialector

	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	default:
		if dir := filepath.Dir(cfg.File); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.File + "?_journal_mode=WAL&_foreign_keys=on&_txlock=immediate")
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver != "postgres" {
		// arquivo SQLite: um único escritor serializa as transações
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("database connected successfully",
		"driver", cfg.Driver,
		"file", cfg.File,
		"database", cfg.DBName,
	)

	return db, nil
}

// AutoMigrate cria/atualiza as tabelas do schema
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&CollaboratorModel{},
		&ModuleModel{},
		&SkillClaimModel{},
		&AssessmentModel{},
		&CareerPlanModel{},
		&CareerPlanModuleModel{},
		&AuditLogModel{},
	)
}

// dbFrom extrai a transação do contexto quando presente (para suportar
// o UnitOfWork); caso contrário usa a conexão do repositório
func dbFrom(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
