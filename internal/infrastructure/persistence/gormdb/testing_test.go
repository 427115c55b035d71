package gormdb

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

// newTestDB abre um banco SQLite em memória com o schema migrado
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("falha ao migrar schema de teste: %v", err)
	}

	return db
}

func createTestCollaborator(t *testing.T, db *gorm.DB, fullName string) *entities.CollaboratorWithUser {
	t.Helper()

	repo := NewCollaboratorRepository(db)
	collaborator, err := repo.Create(context.Background(), repositories.CollaboratorInput{
		FullName:      fullName,
		AdmissionDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		Activities:    []string{"implantacao"},
	})
	if err != nil {
		t.Fatalf("falha ao criar colaborador de teste: %v", err)
	}
	return collaborator
}

func createTestModule(t *testing.T, db *gorm.DB, code, description string) *entities.ModuleRoutine {
	t.Helper()

	repo := NewModuleRepository(db)
	module, err := repo.Create(context.Background(), repositories.ModuleInput{
		Code:        code,
		Description: description,
	})
	if err != nil {
		t.Fatalf("falha ao criar módulo de teste: %v", err)
	}
	return module
}
