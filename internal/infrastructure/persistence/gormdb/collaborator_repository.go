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

// CollaboratorRepository implementa repositories.CollaboratorRepository
type CollaboratorRepository struct {
	db *gorm.DB
}

// NewCollaboratorRepository cria um novo CollaboratorRepository
func NewCollaboratorRepository(db *gorm.DB) repositories.CollaboratorRepository {
	return &CollaboratorRepository{db: db}
}

func (r *CollaboratorRepository) Create(ctx context.Context, input repositories.CollaboratorInput) (*entities.CollaboratorWithUser, error) {
	activities := input.Activities
	if activities == nil {
		activities = []string{}
	}

	now := Now()
	model := &CollaboratorModel{
		ID:            uuid.NewString(),
		UserID:        input.UserID,
		FullName:      input.FullName,
		AdmissionDate: Timestamp(input.AdmissionDate.UTC()),
		Activities:    StringList(activities),
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	db := dbFrom(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return nil, err
	}

	collaborator, err := r.FindByID(ctx, model.ID)
	if err != nil {
		return nil, err
	}
	if collaborator == nil {
		return nil, domerrors.ErrPersistenceFailure
	}

	return collaborator, nil
}

func (r *CollaboratorRepository) Update(ctx context.Context, id string, input repositories.CollaboratorInput) (*entities.CollaboratorWithUser, error) {
	activities := input.Activities
	if activities == nil {
		activities = []string{}
	}

	updates := map[string]any{
		"user_id":        input.UserID,
		"full_name":      input.FullName,
		"admission_date": input.AdmissionDate.UTC(),
		"activities":     StringList(activities),
		"notes":          input.Notes,
		"updated_at":     time.Now().UTC(),
	}

	db := dbFrom(ctx, r.db)
	if err := db.Model(&CollaboratorModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *CollaboratorRepository) Delete(ctx context.Context, id string) error {
	db := dbFrom(ctx, r.db)
	return db.Where("id = ?", id).Delete(&CollaboratorModel{}).Error
}

func (r *CollaboratorRepository) FindByID(ctx context.Context, id string) (*entities.CollaboratorWithUser, error) {
	var model CollaboratorModel

	db := dbFrom(ctx, r.db)
	if err := db.Preload("User").Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toCollaboratorWithUser(&model), nil
}

func (r *CollaboratorRepository) FindByUserID(ctx context.Context, userID string) (*entities.CollaboratorProfile, error) {
	var model CollaboratorModel

	db := dbFrom(ctx, r.db)
	if err := db.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	profile := toCollaboratorProfile(&model)
	return &profile, nil
}

func (r *CollaboratorRepository) FindDetail(ctx context.Context, id string) (*entities.CollaboratorDetail, error) {
	collaborator, err := r.FindByID(ctx, id)
	if err != nil || collaborator == nil {
		return nil, err
	}

	db := dbFrom(ctx, r.db)

	var claimModels []*SkillClaimModel
	if err := db.Where("collaborator_id = ?", id).Find(&claimModels).Error; err != nil {
		return nil, err
	}

	var assessmentModels []*AssessmentModel
	if err := db.Where("collaborator_id = ?", id).Find(&assessmentModels).Error; err != nil {
		return nil, err
	}

	var planModels []*CareerPlanModel
	if err := db.Where("collaborator_id = ?", id).Order("created_at DESC").Find(&planModels).Error; err != nil {
		return nil, err
	}

	detail := &entities.CollaboratorDetail{
		CollaboratorWithUser: *collaborator,
		SkillClaims:          make([]*entities.SkillClaim, 0, len(claimModels)),
		Assessments:          make([]*entities.ManagerAssessment, 0, len(assessmentModels)),
		CareerPlans:          make([]*entities.CareerPlan, 0, len(planModels)),
	}

	for _, claim := range claimModels {
		detail.SkillClaims = append(detail.SkillClaims, toSkillClaimEntity(claim))
	}
	for _, assessment := range assessmentModels {
		detail.Assessments = append(detail.Assessments, toAssessmentEntity(assessment))
	}
	for _, plan := range planModels {
		detail.CareerPlans = append(detail.CareerPlans, toCareerPlanEntity(plan))
	}

	return detail, nil
}

func (r *CollaboratorRepository) List(ctx context.Context, params repositories.CollaboratorListParams) (*repositories.CollaboratorListResult, error) {
	db := dbFrom(ctx, r.db)
	query := db.Model(&CollaboratorModel{})
	query = applyNameFilter(query, params.Name)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	page, perPage := repositories.NormalizePage(params.Page, params.PerPage)
	offset := (page - 1) * perPage

	var models []*CollaboratorModel
	if err := query.Preload("User").Order("full_name ASC").Limit(perPage).Offset(offset).Find(&models).Error; err != nil {
		return nil, err
	}

	return &repositories.CollaboratorListResult{
		Data:  toCollaboratorsWithUser(models),
		Total: total,
	}, nil
}

func (r *CollaboratorRepository) ListAll(ctx context.Context, name string) ([]*entities.CollaboratorWithUser, error) {
	db := dbFrom(ctx, r.db)
	query := applyNameFilter(db.Model(&CollaboratorModel{}), name)

	var models []*CollaboratorModel
	if err := query.Preload("User").Order("full_name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return toCollaboratorsWithUser(models), nil
}

func (r *CollaboratorRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	db := dbFrom(ctx, r.db)
	if err := db.Model(&CollaboratorModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func applyNameFilter(query *gorm.DB, name string) *gorm.DB {
	if name == "" {
		return query
	}
	return query.Where("LOWER(full_name) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(name))+"%")
}

// Conversores
func toCollaboratorProfile(model *CollaboratorModel) entities.CollaboratorProfile {
	activities := []string(model.Activities)
	if activities == nil {
		activities = []string{}
	}

	return entities.CollaboratorProfile{
		ID:            model.ID,
		UserID:        model.UserID,
		FullName:      model.FullName,
		AdmissionDate: model.AdmissionDate.Time(),
		Activities:    activities,
		Notes:         model.Notes,
		CreatedAt:     model.CreatedAt.Time(),
		UpdatedAt:     model.UpdatedAt.Time(),
	}
}

func toCollaboratorWithUser(model *CollaboratorModel) *entities.CollaboratorWithUser {
	collaborator := &entities.CollaboratorWithUser{
		CollaboratorProfile: toCollaboratorProfile(model),
	}

	if model.User != nil {
		collaborator.User = &entities.UserSummary{
			ID:    model.User.ID,
			Email: model.User.Email,
		}
	}

	return collaborator
}

func toCollaboratorsWithUser(models []*CollaboratorModel) []*entities.CollaboratorWithUser {
	out := make([]*entities.CollaboratorWithUser, 0, len(models))
	for _, model := range models {
		out = append(out, toCollaboratorWithUser(model))
	}
	return out
}
