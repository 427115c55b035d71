package seed

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/ports"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
	"github.com/skillsmatrix/backend/internal/infrastructure/config"
)

type defaultModule struct {
	code        string
	description string
	observation string
}

var defaultModules = []defaultModule{
	{"FOLHA_CALCULOS", "Folha de Pagamento - Calculos", "Folha de Pagamento"},
	{"PONTO_CONTROLE", "Controle de Ponto", "Jornada e Frequencia"},
	{"TREINAMENTO_GESTAO", "Gestao de Treinamentos", "Desenvolvimento"},
}

// Run garante os dados mínimos do sistema: o usuário MASTER e o
// catálogo inicial de módulos. Idempotente: execuções repetidas não
// duplicam nada.
func Run(
	ctx context.Context,
	userRepo repositories.UserRepository,
	moduleRepo repositories.ModuleRepository,
	cfg config.SeedConfig,
	logger ports.Logger,
) error {
	if err := seedAdmin(ctx, userRepo, cfg, logger); err != nil {
		return err
	}
	return seedModules(ctx, moduleRepo)
}

func seedAdmin(ctx context.Context, userRepo repositories.UserRepository, cfg config.SeedConfig, logger ports.Logger) error {
	existing, err := userRepo.FindByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = userRepo.Create(ctx, repositories.CreateUserInput{
		Email:              cfg.AdminEmail,
		PasswordHash:       string(hash),
		Role:               entities.RoleMaster,
		MustChangePassword: false,
	})
	if err != nil {
		return err
	}

	logger.Info("admin user seeded", "email", cfg.AdminEmail)
	return nil
}

func seedModules(ctx context.Context, moduleRepo repositories.ModuleRepository) error {
	for _, module := range defaultModules {
		observation := module.observation
		_, err := moduleRepo.UpsertByCode(ctx, repositories.ModuleInput{
			Code:        module.code,
			Description: module.description,
			Observation: &observation,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
