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

// CareerPlanRepository implementa repositories.CareerPlanRepository
type CareerPlanRepository struct {
	db *gorm.DB
}

// NewCareerPlanRepository cria um novo CareerPlanRepository
func NewCareerPlanRepository(db *gorm.DB) repositories.CareerPlanRepository {
	return &CareerPlanRepository{db: db}
}

// withTx executa fn na transação do contexto quando houver uma; caso
// contrário abre uma transação própria. Mantém atômicas as escritas que
// tocam career_plans e career_plan_modules.
func (r *CareerPlanRepository) withTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return fn(tx)
	}
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *CareerPlanRepository) Create(ctx context.Context, input repositories.CareerPlanInput) (*entities.CareerPlanWithModules, error) {
	planID := uuid.NewString()

	err := r.withTx(ctx, func(tx *gorm.DB) error {
		now := Now()
		model := &CareerPlanModel{
			ID:             planID,
			CollaboratorID: input.CollaboratorID,
			Objectives:     input.Objectives,
			Notes:          input.Notes,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if input.DueDate != nil {
			due := Timestamp(input.DueDate.UTC())
			model.DueDate = &due
		}

		if err := tx.Create(model).Error; err != nil {
			return err
		}

		return replacePlanModules(tx, planID, input.ModuleIDs)
	})
	if err != nil {
		return nil, err
	}

	plan, err := r.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domerrors.ErrPersistenceFailure
	}

	return plan, nil
}

func (r *CareerPlanRepository) Update(ctx context.Context, id string, input repositories.UpdateCareerPlanInput) (*entities.CareerPlanWithModules, error) {
	updates := map[string]any{}

	if value, ok := input.CollaboratorID.Get(); ok {
		updates["collaborator_id"] = value
	}
	if value, ok := input.Objectives.Get(); ok {
		updates["objectives"] = value
	}
	if input.DueDate.IsSet() {
		if value, ok := input.DueDate.Get(); ok {
			updates["due_date"] = value.UTC()
		} else {
			updates["due_date"] = nil
		}
	}
	if input.Notes.IsSet() {
		if value, ok := input.Notes.Get(); ok {
			updates["notes"] = value
		} else {
			updates["notes"] = nil
		}
	}

	err := r.withTx(ctx, func(tx *gorm.DB) error {
		if len(updates) > 0 {
			updates["updated_at"] = time.Now().UTC()
			if err := tx.Model(&CareerPlanModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}

		if input.ModuleIDs.IsSet() {
			moduleIDs, _ := input.ModuleIDs.Get()
			if err := tx.Where("career_plan_id = ?", id).Delete(&CareerPlanModuleModel{}).Error; err != nil {
				return err
			}
			return replacePlanModules(tx, id, moduleIDs)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *CareerPlanRepository) Delete(ctx context.Context, id string) error {
	return r.withTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("career_plan_id = ?", id).Delete(&CareerPlanModuleModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&CareerPlanModel{}).Error
	})
}

func (r *CareerPlanRepository) FindByID(ctx context.Context, id string) (*entities.CareerPlanWithModules, error) {
	var model CareerPlanModel

	db := dbFrom(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	modules, err := r.findPlanModules(ctx, id)
	if err != nil {
		return nil, err
	}

	plan := toCareerPlanWithModules(&model)
	plan.Modules = modules
	return plan, nil
}

func (r *CareerPlanRepository) List(ctx context.Context, params repositories.CareerPlanListParams) ([]*entities.CareerPlanWithModules, error) {
	db := dbFrom(ctx, r.db)
	query := db.Order("created_at DESC")

	if params.CollaboratorID != "" {
		query = query.Where("collaborator_id = ?", params.CollaboratorID)
	}

	var models []*CareerPlanModel
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.CareerPlanWithModules, 0, len(models))
	for _, model := range models {
		modules, err := r.findPlanModules(ctx, model.ID)
		if err != nil {
			return nil, err
		}
		plan := toCareerPlanWithModules(model)
		plan.Modules = modules
		out = append(out, plan)
	}

	return out, nil
}

func (r *CareerPlanRepository) findPlanModules(ctx context.Context, planID string) ([]entities.CareerPlanModuleWithModule, error) {
	db := dbFrom(ctx, r.db)

	var links []*CareerPlanModuleModel
	err := db.Preload("Module").
		Joins("JOIN module_routines ON module_routines.id = career_plan_modules.module_id").
		Where("career_plan_modules.career_plan_id = ?", planID).
		Order("module_routines.code ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	out := make([]entities.CareerPlanModuleWithModule, 0, len(links))
	for _, link := range links {
		item := entities.CareerPlanModuleWithModule{
			CareerPlanModule: entities.CareerPlanModule{
				ID:           link.ID,
				CareerPlanID: link.CareerPlanID,
				ModuleID:     link.ModuleID,
				CreatedAt:    link.CreatedAt.Time(),
			},
		}
		if link.Module != nil {
			item.Module = *toModuleEntity(link.Module)
		}
		out = append(out, item)
	}

	return out, nil
}

// replacePlanModules insere os vínculos do plano, deduplicando IDs
// repetidos na entrada
func replacePlanModules(tx *gorm.DB, planID string, moduleIDs []string) error {
	seen := make(map[string]bool, len(moduleIDs))
	for _, moduleID := range moduleIDs {
		if moduleID == "" || seen[moduleID] {
			continue
		}
		seen[moduleID] = true

		link := &CareerPlanModuleModel{
			ID:           uuid.NewString(),
			CareerPlanID: planID,
			ModuleID:     moduleID,
			CreatedAt:    Now(),
		}
		if err := tx.Create(link).Error; err != nil {
			return err
		}
	}
	return nil
}

// Conversores
func toCareerPlanEntity(model *CareerPlanModel) *entities.CareerPlan {
	plan := &entities.CareerPlan{
		ID:             model.ID,
		CollaboratorID: model.CollaboratorID,
		Objectives:     model.Objectives,
		Notes:          model.Notes,
		CreatedAt:      model.CreatedAt.Time(),
		UpdatedAt:      model.UpdatedAt.Time(),
	}

	if model.DueDate != nil {
		due := model.DueDate.Time()
		plan.DueDate = &due
	}

	return plan
}

func toCareerPlanWithModules(model *CareerPlanModel) *entities.CareerPlanWithModules {
	return &entities.CareerPlanWithModules{
		CareerPlan: *toCareerPlanEntity(model),
		Modules:    []entities.CareerPlanModuleWithModule{},
	}
}
