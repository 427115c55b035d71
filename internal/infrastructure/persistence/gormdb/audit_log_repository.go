package gormdb

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

// AuditLogRepository implementa repositories.AuditLogRepository
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository cria um novo AuditLogRepository
func NewAuditLogRepository(db *gorm.DB) repositories.AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(ctx context.Context, input repositories.AuditLogInput) (*entities.AuditLog, error) {
	model := &AuditLogModel{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Action:    input.Action,
		Entity:    input.Entity,
		EntityID:  input.EntityID,
		Payload:   input.Payload,
		CreatedAt: Now(),
	}

	db := dbFrom(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return nil, err
	}

	return toAuditLogEntity(model), nil
}

func (r *AuditLogRepository) List(ctx context.Context, limit int) ([]*entities.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var models []*AuditLogModel
	db := dbFrom(ctx, r.db)
	if err := db.Order("created_at DESC").Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.AuditLog, 0, len(models))
	for _, model := range models {
		out = append(out, toAuditLogEntity(model))
	}

	return out, nil
}

func toAuditLogEntity(model *AuditLogModel) *entities.AuditLog {
	return &entities.AuditLog{
		ID:        model.ID,
		UserID:    model.UserID,
		Action:    model.Action,
		Entity:    model.Entity,
		EntityID:  model.EntityID,
		Payload:   model.Payload,
		CreatedAt: model.CreatedAt.Time(),
	}
}
