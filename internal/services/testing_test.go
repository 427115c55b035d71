package services

import (
	"context"
	"fmt"
	"time"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/ports"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
	"github.com/skillsmatrix/backend/internal/domain/valueobjects"
)

// noopLogger descarta tudo
type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}
func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (l noopLogger) With(args ...any) ports.Logger {
	return l
}

// noopUnitOfWork executa a função diretamente, sem transação real
type noopUnitOfWork struct{}

func (noopUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (noopUnitOfWork) Commit(ctx context.Context) error                   { return nil }
func (noopUnitOfWork) Rollback(ctx context.Context) error                 { return nil }
func (noopUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type fakeAuditRepo struct {
	entries []*entities.AuditLog
}

func (r *fakeAuditRepo) Create(ctx context.Context, input repositories.AuditLogInput) (*entities.AuditLog, error) {
	entry := &entities.AuditLog{
		ID:        fmt.Sprintf("audit-%d", len(r.entries)+1),
		UserID:    input.UserID,
		Action:    input.Action,
		Entity:    input.Entity,
		EntityID:  input.EntityID,
		Payload:   input.Payload,
		CreatedAt: time.Now().UTC(),
	}
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *fakeAuditRepo) List(ctx context.Context, limit int) ([]*entities.AuditLog, error) {
	return r.entries, nil
}

type fakeUserRepo struct {
	users []*entities.User
}

func (r *fakeUserRepo) Create(ctx context.Context, input repositories.CreateUserInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	id := fmt.Sprintf("user-%d", len(r.users)+1)
	if input.ID != nil {
		id = *input.ID
	}

	user := &entities.User{
		ID:                 id,
		Email:              email,
		PasswordHash:       input.PasswordHash,
		Role:               input.Role,
		MustChangePassword: input.MustChangePassword,
		CreatedAt:          time.Now().UTC(),
		UpdatedAt:          time.Now().UTC(),
	}
	r.users = append(r.users, user)
	return user, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id string, input repositories.UpdateUserInput) (*entities.User, error) {
	for _, user := range r.users {
		if user.ID != id {
			continue
		}
		if input.PasswordHash != nil {
			user.PasswordHash = *input.PasswordHash
		}
		if input.Role != nil {
			user.Role = *input.Role
		}
		if input.MustChangePassword != nil {
			user.MustChangePassword = *input.MustChangePassword
		}
		return user, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	kept := r.users[:0]
	for _, user := range r.users {
		if user.ID != id {
			kept = append(kept, user)
		}
	}
	r.users = kept
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email.String() == email {
			return user, nil
		}
	}
	return nil, nil
}

type fakeCollaboratorRepo struct {
	collaborators []*entities.CollaboratorWithUser
}

func (r *fakeCollaboratorRepo) Create(ctx context.Context, input repositories.CollaboratorInput) (*entities.CollaboratorWithUser, error) {
	collaborator := &entities.CollaboratorWithUser{
		CollaboratorProfile: entities.CollaboratorProfile{
			ID:            fmt.Sprintf("collab-%d", len(r.collaborators)+1),
			UserID:        input.UserID,
			FullName:      input.FullName,
			AdmissionDate: input.AdmissionDate,
			Activities:    input.Activities,
			Notes:         input.Notes,
			CreatedAt:     time.Now().UTC(),
			UpdatedAt:     time.Now().UTC(),
		},
	}
	r.collaborators = append(r.collaborators, collaborator)
	return collaborator, nil
}

func (r *fakeCollaboratorRepo) Update(ctx context.Context, id string, input repositories.CollaboratorInput) (*entities.CollaboratorWithUser, error) {
	for _, collaborator := range r.collaborators {
		if collaborator.ID != id {
			continue
		}
		collaborator.FullName = input.FullName
		collaborator.AdmissionDate = input.AdmissionDate
		collaborator.Activities = input.Activities
		collaborator.Notes = input.Notes
		collaborator.UserID = input.UserID
		return collaborator, nil
	}
	return nil, nil
}

func (r *fakeCollaboratorRepo) Delete(ctx context.Context, id string) error {
	kept := r.collaborators[:0]
	for _, collaborator := range r.collaborators {
		if collaborator.ID != id {
			kept = append(kept, collaborator)
		}
	}
	r.collaborators = kept
	return nil
}

func (r *fakeCollaboratorRepo) FindByID(ctx context.Context, id string) (*entities.CollaboratorWithUser, error) {
	for _, collaborator := range r.collaborators {
		if collaborator.ID == id {
			return collaborator, nil
		}
	}
	return nil, nil
}

func (r *fakeCollaboratorRepo) FindByUserID(ctx context.Context, userID string) (*entities.CollaboratorProfile, error) {
	for _, collaborator := range r.collaborators {
		if collaborator.UserID != nil && *collaborator.UserID == userID {
			profile := collaborator.CollaboratorProfile
			return &profile, nil
		}
	}
	return nil, nil
}

func (r *fakeCollaboratorRepo) FindDetail(ctx context.Context, id string) (*entities.CollaboratorDetail, error) {
	collaborator, _ := r.FindByID(ctx, id)
	if collaborator == nil {
		return nil, nil
	}
	return &entities.CollaboratorDetail{CollaboratorWithUser: *collaborator}, nil
}

func (r *fakeCollaboratorRepo) List(ctx context.Context, params repositories.CollaboratorListParams) (*repositories.CollaboratorListResult, error) {
	return &repositories.CollaboratorListResult{
		Data:  r.collaborators,
		Total: int64(len(r.collaborators)),
	}, nil
}

func (r *fakeCollaboratorRepo) ListAll(ctx context.Context, name string) ([]*entities.CollaboratorWithUser, error) {
	return r.collaborators, nil
}

func (r *fakeCollaboratorRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.collaborators)), nil
}

func newTestCollaboratorService() (*CollaboratorService, *fakeCollaboratorRepo, *fakeUserRepo) {
	collaboratorRepo := &fakeCollaboratorRepo{}
	userRepo := &fakeUserRepo{}
	audit := NewAuditService(&fakeAuditRepo{}, nil, noopLogger{})
	service := NewCollaboratorService(collaboratorRepo, userRepo, noopUnitOfWork{}, audit, noopLogger{})
	return service, collaboratorRepo, userRepo
}
