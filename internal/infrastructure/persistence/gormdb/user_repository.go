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
	"github.com/skillsmatrix/backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, input repositories.CreateUserInput) (*entities.User, error) {
	id := uuid.NewString()
	if input.ID != nil {
		id = *input.ID
	}

	now := Now()
	model := &UserModel{
		ID:                 id,
		Email:              normalizeEmail(input.Email),
		PasswordHash:       input.PasswordHash,
		Role:               string(input.Role),
		MustChangePassword: LooseBool(input.MustChangePassword),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	db := dbFrom(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return nil, err
	}

	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrPersistenceFailure
	}

	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, input repositories.UpdateUserInput) (*entities.User, error) {
	updates := map[string]any{}

	if input.Email != nil {
		updates["email"] = normalizeEmail(*input.Email)
	}
	if input.PasswordHash != nil {
		updates["password_hash"] = *input.PasswordHash
	}
	if input.Role != nil {
		updates["role"] = string(*input.Role)
	}
	if input.MustChangePassword != nil {
		updates["must_change_password"] = *input.MustChangePassword
	}

	if len(updates) == 0 {
		return r.FindByID(ctx, id)
	}

	updates["updated_at"] = time.Now().UTC()

	db := dbFrom(ctx, r.db)
	if err := db.Model(&UserModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	db := dbFrom(ctx, r.db)
	return db.Where("id = ?", id).Delete(&UserModel{}).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	db := dbFrom(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toUserEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := dbFrom(ctx, r.db)
	if err := db.Where("email = ?", normalizeEmail(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toUserEntity(&model)
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// Conversores
func toUserEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:                 model.ID,
		Email:              email,
		PasswordHash:       model.PasswordHash,
		Role:               entities.Role(model.Role),
		MustChangePassword: bool(model.MustChangePassword),
		CreatedAt:          model.CreatedAt.Time(),
		UpdatedAt:          model.UpdatedAt.Time(),
	}, nil
}
