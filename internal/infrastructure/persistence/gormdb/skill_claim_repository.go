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

// SkillClaimRepository implementa repositories.SkillClaimRepository
type SkillClaimRepository struct {
	db *gorm.DB
}

// NewSkillClaimRepository cria um novo SkillClaimRepository
func NewSkillClaimRepository(db *gorm.DB) repositories.SkillClaimRepository {
	return &SkillClaimRepository{db: db}
}

// Upsert grava a autoavaliação do par (colaborador, módulo): atualiza a
// linha existente ou insere uma nova, e retorna o estado pós-escrita
// com o módulo relacionado
func (r *SkillClaimRepository) Upsert(ctx context.Context, input repositories.SkillClaimInput) (*entities.SkillClaimWithModule, error) {
	db := dbFrom(ctx, r.db)

	var existing SkillClaimModel
	err := db.Select("id").
		Where("collaborator_id = ? AND module_id = ?", input.CollaboratorID, input.ModuleID).
		First(&existing).Error

	switch {
	case err == nil:
		updates := map[string]any{
			"current_level": string(input.CurrentLevel),
			"evidence":      input.Evidence,
			"updated_at":    time.Now().UTC(),
		}
		if err := db.Model(&SkillClaimModel{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
			return nil, err
		}
		return r.requireWithModule(ctx, existing.ID)

	case errors.Is(err, gorm.ErrRecordNotFound):
		now := Now()
		model := &SkillClaimModel{
			ID:             uuid.NewString(),
			CollaboratorID: input.CollaboratorID,
			ModuleID:       input.ModuleID,
			CurrentLevel:   string(input.CurrentLevel),
			Evidence:       input.Evidence,
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

func (r *SkillClaimRepository) Update(ctx context.Context, id string, input repositories.SkillClaimUpdateInput) (*entities.SkillClaimWithModule, error) {
	updates := map[string]any{}

	if input.CurrentLevel != nil {
		updates["current_level"] = string(*input.CurrentLevel)
	}
	if input.Evidence.IsSet() {
		if value, ok := input.Evidence.Get(); ok {
			updates["evidence"] = value
		} else {
			updates["evidence"] = nil
		}
	}

	if len(updates) == 0 {
		return r.FindWithModuleByID(ctx, id)
	}

	updates["updated_at"] = time.Now().UTC()

	db := dbFrom(ctx, r.db)
	if err := db.Model(&SkillClaimModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.FindWithModuleByID(ctx, id)
}

func (r *SkillClaimRepository) FindByID(ctx context.Context, id string) (*entities.SkillClaim, error) {
	var model SkillClaimModel

	db := dbFrom(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toSkillClaimEntity(&model), nil
}

func (r *SkillClaimRepository) FindWithModuleByID(ctx context.Context, id string) (*entities.SkillClaimWithModule, error) {
	var model SkillClaimModel

	db := dbFrom(ctx, r.db)
	if err := db.Preload("Module").Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toSkillClaimWithModule(&model), nil
}

func (r *SkillClaimRepository) List(ctx context.Context, params repositories.SkillClaimListParams) ([]*entities.SkillClaimWithModule, error) {
	db := dbFrom(ctx, r.db)
	query := db.Preload("Module")

	if params.CollaboratorID != "" {
		query = query.Where("collaborator_id = ?", params.CollaboratorID)
	}

	var models []*SkillClaimModel
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.SkillClaimWithModule, 0, len(models))
	for _, model := range models {
		out = append(out, toSkillClaimWithModule(model))
	}

	return out, nil
}

func (r *SkillClaimRepository) ListAll(ctx context.Context) ([]*entities.SkillClaim, error) {
	var models []*SkillClaimModel

	db := dbFrom(ctx, r.db)
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.SkillClaim, 0, len(models))
	for _, model := range models {
		out = append(out, toSkillClaimEntity(model))
	}

	return out, nil
}

func (r *SkillClaimRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	db := dbFrom(ctx, r.db)
	if err := db.Model(&SkillClaimModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// requireWithModule relê a linha recém-escrita; a ausência indica falha
// de persistência
func (r *SkillClaimRepository) requireWithModule(ctx context.Context, id string) (*entities.SkillClaimWithModule, error) {
	claim, err := r.FindWithModuleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, domerrors.ErrPersistenceFailure
	}
	return claim, nil
}

// Conversores
func toSkillClaimEntity(model *SkillClaimModel) *entities.SkillClaim {
	return &entities.SkillClaim{
		ID:             model.ID,
		CollaboratorID: model.CollaboratorID,
		ModuleID:       model.ModuleID,
		CurrentLevel:   entities.SkillLevel(model.CurrentLevel),
		Evidence:       model.Evidence,
		CreatedAt:      model.CreatedAt.Time(),
		UpdatedAt:      model.UpdatedAt.Time(),
	}
}

func toSkillClaimWithModule(model *SkillClaimModel) *entities.SkillClaimWithModule {
	claim := &entities.SkillClaimWithModule{
		SkillClaim: *toSkillClaimEntity(model),
	}

	if model.Module != nil {
		claim.Module = *toModuleEntity(model.Module)
	}

	return claim
}
