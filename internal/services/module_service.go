package services

import (
	"context"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/errors"
	"github.com/skillsmatrix/backend/internal/domain/ports"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

// ModuleService contém a lógica de negócio para módulos/rotinas
type ModuleService struct {
	moduleRepo repositories.ModuleRepository
	audit      *AuditService
	logger     ports.Logger
}

// NewModuleService cria um novo ModuleService
func NewModuleService(
	moduleRepo repositories.ModuleRepository,
	audit *AuditService,
	logger ports.Logger,
) *ModuleService {
	return &ModuleService{
		moduleRepo: moduleRepo,
		audit:      audit,
		logger:     logger,
	}
}

// ModulePage é uma página de módulos com metadados
type ModulePage struct {
	Data []*entities.ModuleRoutine
	Meta repositories.PageMeta
}

// Create cria um módulo
func (s *ModuleService) Create(ctx context.Context, input repositories.ModuleInput) (*entities.ModuleRoutine, error) {
	module, err := s.moduleRepo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "create", "module", &module.ID, map[string]any{"code": module.Code})
	return module, nil
}

// Update atualiza um módulo existente
func (s *ModuleService) Update(ctx context.Context, id string, input repositories.ModuleInput) (*entities.ModuleRoutine, error) {
	existing, err := s.moduleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrModuleNotFound
	}

	module, err := s.moduleRepo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "update", "module", &id, map[string]any{"code": input.Code})
	return module, nil
}

// Delete remove um módulo. Autoavaliações, avaliações e vínculos de
// plano associados caem por cascata no banco.
func (s *ModuleService) Delete(ctx context.Context, id string) error {
	existing, err := s.moduleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.ErrModuleNotFound
	}

	if err := s.moduleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, "delete", "module", &id, map[string]any{"code": existing.Code})
	return nil
}

// Get busca um módulo por ID
func (s *ModuleService) Get(ctx context.Context, id string) (*entities.ModuleRoutine, error) {
	module, err := s.moduleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, errors.ErrModuleNotFound
	}
	return module, nil
}

// List retorna módulos paginados com filtros de código e descrição
func (s *ModuleService) List(ctx context.Context, params repositories.ModuleListParams) (*ModulePage, error) {
	page, perPage := repositories.NormalizePage(params.Page, params.PerPage)
	params.Page = page
	params.PerPage = perPage

	result, err := s.moduleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &ModulePage{
		Data: result.Data,
		Meta: repositories.NewPageMeta(page, perPage, result.Total),
	}, nil
}

// ListAll retorna todos os módulos ordenados por código
func (s *ModuleService) ListAll(ctx context.Context) ([]*entities.ModuleRoutine, error) {
	return s.moduleRepo.ListAll(ctx)
}
