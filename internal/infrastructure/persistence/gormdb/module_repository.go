package gormdb

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	domerrors "github.com/skillsmatrix/backend/internal/domain/errors"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

// ModuleRepository implementa repositories.ModuleRepository
type ModuleRepository struct {
	db *gorm.DB
}

// NewModuleRepository cria um novo ModuleRepository
func NewModuleRepository(db *gorm.DB) repositories.ModuleRepository {
	return &ModuleRepository{db: db}
}

func (r *ModuleRepository) Create(ctx context.Context, input repositories.ModuleInput) (*entities.ModuleRoutine, error) {
	now := Now()
	model := &ModuleModel{
		ID:          uuid.NewString(),
		Code:        normalizeModuleCode(input.Code),
		Description: input.Description,
		Observation: input.Observation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	db := dbFrom(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return nil, err
	}

	module, err := r.FindByID(ctx, model.ID)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, domerrors.ErrPersistenceFailure
	}

	return module, nil
}

func (r *ModuleRepository) Update(ctx context.Context, id string, input repositories.ModuleInput) (*entities.ModuleRoutine, error) {
	updates := map[string]any{
		"code":        normalizeModuleCode(input.Code),
		"description": input.Description,
		"observation": input.Observation,
		"updated_at":  time.Now().UTC(),
	}

	db := dbFrom(ctx, r.db)
	if err := db.Model(&ModuleModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *ModuleRepository) Delete(ctx context.Context, id string) error {
	db := dbFrom(ctx, r.db)
	return db.Where("id = ?", id).Delete(&ModuleModel{}).Error
}

func (r *ModuleRepository) FindByID(ctx context.Context, id string) (*entities.ModuleRoutine, error) {
	var model ModuleModel

	db := dbFrom(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toModuleEntity(&model), nil
}

func (r *ModuleRepository) FindByCode(ctx context.Context, code string) (*entities.ModuleRoutine, error) {
	var model ModuleModel

	db := dbFrom(ctx, r.db)
	if err := db.Where("UPPER(code) = ?", normalizeModuleCode(code)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toModuleEntity(&model), nil
}

func (r *ModuleRepository) List(ctx context.Context, params repositories.ModuleListParams) (*repositories.ModuleListResult, error) {
	db := dbFrom(ctx, r.db)
	query := db.Model(&ModuleModel{})

	if len(params.CodeExact) > 0 {
		codes := make([]string, len(params.CodeExact))
		for i, code := range params.CodeExact {
			codes[i] = normalizeModuleCode(code)
		}
		query = query.Where("UPPER(code) IN ?", codes)
	}

	if params.CodeContains != "" {
		query = query.Where("UPPER(code) LIKE ?", "%"+normalizeModuleCode(params.CodeContains)+"%")
	}

	if params.Description != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(params.Description))+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	page, perPage := repositories.NormalizePage(params.Page, params.PerPage)
	offset := (page - 1) * perPage

	var models []*ModuleModel
	if err := query.Order("code ASC").Limit(perPage).Offset(offset).Find(&models).Error; err != nil {
		return nil, err
	}

	data := make([]*entities.ModuleRoutine, 0, len(models))
	for _, model := range models {
		data = append(data, toModuleEntity(model))
	}

	return &repositories.ModuleListResult{Data: data, Total: total}, nil
}

func (r *ModuleRepository) ListAll(ctx context.Context) ([]*entities.ModuleRoutine, error) {
	var models []*ModuleModel

	db := dbFrom(ctx, r.db)
	if err := db.Order("code ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	data := make([]*entities.ModuleRoutine, 0, len(models))
	for _, model := range models {
		data = append(data, toModuleEntity(model))
	}

	return data, nil
}

func (r *ModuleRepository) UpsertByCode(ctx context.Context, input repositories.ModuleInput) (*entities.ModuleRoutine, error) {
	existing, err := r.FindByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return r.Update(ctx, existing.ID, input)
	}

	return r.Create(ctx, input)
}

func (r *ModuleRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	db := dbFrom(ctx, r.db)
	if err := db.Model(&ModuleModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func normalizeModuleCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Conversores
func toModuleEntity(model *ModuleModel) *entities.ModuleRoutine {
	return &entities.ModuleRoutine{
		ID:          model.ID,
		Code:        model.Code,
		Description: model.Description,
		Observation: model.Observation,
		CreatedAt:   model.CreatedAt.Time(),
		UpdatedAt:   model.UpdatedAt.Time(),
	}
}
