package gormdb

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	domerrors "github.com/skillsmatrix/backend/internal/domain/errors"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

// AssessmentRepository implementa repositories.AssessmentRepository
type AssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository cria um novo AssessmentRepository
func NewAssessmentRepository(db *gorm.DB) repositories.AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Upsert grava a avaliação do gestor para o par (colaborador, módulo):
// atualiza a linha existente ou insere uma nova
func (r *AssessmentRepository) Upsert(ctx context.Context, input repositories.AssessmentInput) (*entities.ManagerAssessmentWithModule, error) {
	db := dbFrom(ctx, r.db)

	var existing AssessmentModel
	err := db.Select("id").
		Where("collaborator_id = ? AND module_id = ?", input.CollaboratorID, input.ModuleID).
		First(&existing).Error

	switch {
	case err == nil:
		updates := map[string]any{
			"target_level": string(input.TargetLevel),
			"comment":      input.Comment,
			"updated_at":   time.Now().UTC(),
		}
		if err := db.Model(&AssessmentModel{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
			return nil, err
		}
		return r.requireWithModule(ctx, existing.ID)

	case errors.Is(err, gorm.ErrRecordNotFound):
		now := Now()
		model := &AssessmentModel{
			ID:             uuid.NewString(),
			CollaboratorID: input.CollaboratorID,
			ModuleID:       input.ModuleID,
			TargetLevel:    string(input.TargetLevel),
			Comment:        input.Comment,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := db.Create(model).Error; err != nil {
			return nil, err
		}
		return r.requireWithModule(ctx, model.ID)

	default:
		return nil, err
	}
}

func (r *AssessmentRepository) FindWithModuleByID(ctx context.Context, id string) (*entities.ManagerAssessmentWithModule, error) {
	var model AssessmentModel

	db := dbFrom(ctx, r.db)
	if err := db.Preload("Module").Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toAssessmentWithModule(&model), nil
}

func (r *AssessmentRepository) List(ctx context.Context, params repositories.AssessmentListParams) ([]*entities.ManagerAssessmentWithModule, error) {
	db := dbFrom(ctx, r.db)
	query := db.Preload("Module")

	if params.CollaboratorID != "" {
		query = query.Where("collaborator_id = ?", params.CollaboratorID)
	}

	var models []*AssessmentModel
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.ManagerAssessmentWithModule, 0, len(models))
	for _, model := range models {
		out = append(out, toAssessmentWithModule(model))
	}

	return out, nil
}

func (r *AssessmentRepository) ListAll(ctx context.Context) ([]*entities.ManagerAssessment, error) {
	var models []*AssessmentModel

	db := dbFrom(ctx, r.db)
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.ManagerAssessment, 0, len(models))
	for _, model := range models {
		out = append(out, toAssessmentEntity(model))
	}

	return out, nil
}

func (r *AssessmentRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	db := dbFrom(ctx, r.db)
	if err := db.Model(&AssessmentModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *AssessmentRepository) requireWithModule(ctx context.Context, id string) (*entities.ManagerAssessmentWithModule, error) {
	assessment, err := r.FindWithModuleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, domerrors.ErrPersistenceFailure
	}
	return assessment, nil
}

// Conversores
func toAssessmentEntity(model *AssessmentModel) *entities.ManagerAssessment {
	return &entities.ManagerAssessment{
		ID:             model.ID,
		CollaboratorID: model.CollaboratorID,
		ModuleID:       model.ModuleID,
		TargetLevel:    entities.SkillLevel(model.TargetLevel),
		Comment:        model.Comment,
		CreatedAt:      model.CreatedAt.Time(),
		UpdatedAt:      model.UpdatedAt.Time(),
	}
}

func toAssessmentWithModule(model *AssessmentModel) *entities.ManagerAssessmentWithModule {
	assessment := &entities.ManagerAssessmentWithModule{
		ManagerAssessment: *toAssessmentEntity(model),
	}

	if model.Module != nil {
		assessment.Module = *toModuleEntity(model.Module)
	}

	return assessment
}
