package services

import (
	"context"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/errors"
	"github.com/skillsmatrix/backend/internal/domain/ports"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

// AssessmentService contém a lógica de negócio para avaliações do
// gestor
type AssessmentService struct {
	assessmentRepo   repositories.AssessmentRepository
	collaboratorRepo repositories.CollaboratorRepository
	moduleRepo       repositories.ModuleRepository
	audit            *AuditService
	logger           ports.Logger
}

// NewAssessmentService cria um novo AssessmentService
func NewAssessmentService(
	assessmentRepo repositories.AssessmentRepository,
	collaboratorRepo repositories.CollaboratorRepository,
	moduleRepo repositories.ModuleRepository,
	audit *AuditService,
	logger ports.Logger,
) *AssessmentService {
	return &AssessmentService{
		assessmentRepo:   assessmentRepo,
		collaboratorRepo: collaboratorRepo,
		moduleRepo:       moduleRepo,
		audit:            audit,
		logger:           logger,
	}
}

// Upsert grava a avaliação do par (colaborador, módulo) após validar
// que ambos existem
func (s *AssessmentService) Upsert(ctx context.Context, input repositories.AssessmentInput) (*entities.ManagerAssessmentWithModule, error) {
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

	assessment, err := s.assessmentRepo.Upsert(ctx, input)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "upsert", "assessment", &assessment.ID, map[string]any{
		"collaboratorId": input.CollaboratorID,
		"moduleId":       input.ModuleID,
		"targetLevel":    string(input.TargetLevel),
	})
	return assessment, nil
}

// List retorna avaliações, opcionalmente filtradas por colaborador
func (s *AssessmentService) List(ctx context.Context, params repositories.AssessmentListParams) ([]*entities.ManagerAssessmentWithModule, error) {
	return s.assessmentRepo.List(ctx, params)
}
