package services

import (
	"context"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/errors"
	"github.com/skillsmatrix/backend/internal/domain/ports"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

// CareerPlanService contém a lógica de negócio para planos de carreira
type CareerPlanService struct {
	planRepo         repositories.CareerPlanRepository
	collaboratorRepo repositories.CollaboratorRepository
	moduleRepo       repositories.ModuleRepository
	audit            *AuditService
	logger           ports.Logger
}

// NewCareerPlanService cria um novo CareerPlanService
func NewCareerPlanService(
	planRepo repositories.CareerPlanRepository,
	collaboratorRepo repositories.CollaboratorRepository,
	moduleRepo repositories.ModuleRepository,
	audit *AuditService,
	logger ports.Logger,
) *CareerPlanService {
	return &CareerPlanService{
		planRepo:         planRepo,
		collaboratorRepo: collaboratorRepo,
		moduleRepo:       moduleRepo,
		audit:            audit,
		logger:           logger,
	}
}

// Create cria um plano de carreira com seus vínculos de módulo
func (s *CareerPlanService) Create(ctx context.Context, input repositories.CareerPlanInput) (*entities.CareerPlanWithModules, error) {
	collaborator, err := s.collaboratorRepo.FindByID(ctx, input.CollaboratorID)
	if err != nil {
		return nil, err
	}
	if collaborator == nil {
		return nil, errors.ErrCollaboratorNotFound
	}

	if err := s.requireModules(ctx, input.ModuleIDs); err != nil {
		return nil, err
	}

	plan, err := s.planRepo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "create", "career_plan", &plan.ID, map[string]any{
		"collaboratorId": input.CollaboratorID,
		"modules":        len(input.ModuleIDs),
	})
	return plan, nil
}

// Update atualiza parcialmente um plano; ModuleIDs presente substitui
// integralmente os vínculos
func (s *CareerPlanService) Update(ctx context.Context, id string, input repositories.UpdateCareerPlanInput) (*entities.CareerPlanWithModules, error) {
	existing, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrCareerPlanNotFound
	}

	if collaboratorID, ok := input.CollaboratorID.Get(); ok {
		collaborator, err := s.collaboratorRepo.FindByID(ctx, collaboratorID)
		if err != nil {
			return nil, err
		}
		if collaborator == nil {
			return nil, errors.ErrCollaboratorNotFound
		}
	}

	if moduleIDs, ok := input.ModuleIDs.Get(); ok {
		if err := s.requireModules(ctx, moduleIDs); err != nil {
			return nil, err
		}
	}

	plan, err := s.planRepo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "update", "career_plan", &id, nil)
	return plan, nil
}

// Delete remove um plano de carreira e seus vínculos
func (s *CareerPlanService) Delete(ctx context.Context, id string) error {
	existing, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.ErrCareerPlanNotFound
	}

	if err := s.planRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, "delete", "career_plan", &id, nil)
	return nil
}

// Get busca um plano por ID com seus módulos
func (s *CareerPlanService) Get(ctx context.Context, id string) (*entities.CareerPlanWithModules, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, errors.ErrCareerPlanNotFound
	}
	return plan, nil
}

// List retorna planos, opcionalmente filtrados por colaborador
func (s *CareerPlanService) List(ctx context.Context, params repositories.CareerPlanListParams) ([]*entities.CareerPlanWithModules, error) {
	return s.planRepo.List(ctx, params)
}

func (s *CareerPlanService) requireModules(ctx context.Context, moduleIDs []string) error {
	for _, moduleID := range moduleIDs {
		module, err := s.moduleRepo.FindByID(ctx, moduleID)
		if err != nil {
			return err
		}
		if module == nil {
			return errors.ErrModuleNotFound
		}
	}
	return nil
}
