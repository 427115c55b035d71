package services

import (
	"context"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/errors"
	"github.com/skillsmatrix/backend/internal/domain/ports"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

// SkillClaimService contém a lógica de negócio para autoavaliações
type SkillClaimService struct {
	claimRepo        repositories.SkillClaimRepository
	collaboratorRepo repositories.CollaboratorRepository
	moduleRepo       repositories.ModuleRepository
	audit            *AuditService
	logger           ports.Logger
}

// NewSkillClaimService cria um novo SkillClaimService
func NewSkillClaimService(
	claimRepo repositories.SkillClaimRepository,
	collaboratorRepo repositories.CollaboratorRepository,
	moduleRepo repositories.ModuleRepository,
	audit *AuditService,
	logger ports.Logger,
) *SkillClaimService {
	return &SkillClaimService{
		claimRepo:        claimRepo,
		collaboratorRepo: collaboratorRepo,
		moduleRepo:       moduleRepo,
		audit:            audit,
		logger:           logger,
	}
}

// Upsert grava a autoavaliação do par (colaborador, módulo) após
// validar que ambos existem
func (s *SkillClaimService) Upsert(ctx context.Context, input repositories.SkillClaimInput) (*entities.SkillClaimWithModule, error) {
	collaborator, err := s.collaboratorRepo.FindByID(ctx, input.CollaboratorID)
	if err != nil {
		return nil, err
	}
	if collaborator == nil {
		return nil, errors.ErrCollaboratorNotFound
	}

	module, err := s.moduleRepo.FindByID(ctx, input.ModuleID)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, errors.ErrModuleNotFound
	}

	claim, err := s.claimRepo.Upsert(ctx, input)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "upsert", "skill_claim", &claim.ID, map[string]any{
		"collaboratorId": input.CollaboratorID,
		"moduleId":       input.ModuleID,
		"currentLevel":   string(input.CurrentLevel),
	})
	return claim, nil
}

// Update atualiza parcialmente uma autoavaliação existente
func (s *SkillClaimService) Update(ctx context.Context, id string, input repositories.SkillClaimUpdateInput) (*entities.SkillClaimWithModule, error) {
	existing, err := s.claimRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrSkillClaimNotFound
	}

	claim, err := s.claimRepo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "update", "skill_claim", &id, nil)
	return claim, nil
}

// Get busca uma autoavaliação por ID, com o módulo relacionado
func (s *SkillClaimService) Get(ctx context.Context, id string) (*entities.SkillClaimWithModule, error) {
	claim, err := s.claimRepo.FindWithModuleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, errors.ErrSkillClaimNotFound
	}
	return claim, nil
}

// List retorna autoavaliações, opcionalmente filtradas por colaborador
func (s *SkillClaimService) List(ctx context.Context, params repositories.SkillClaimListParams) ([]*entities.SkillClaimWithModule, error) {
	return s.claimRepo.List(ctx, params)
}
