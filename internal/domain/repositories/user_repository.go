package repositories

import (
	"context"

	"github.com/skillsmatrix/backend/internal/domain/entities"
)

// CreateUserInput contém os dados para criação de um usuário
type CreateUserInput struct {
	ID                 *string
	Email              string
	PasswordHash       string
	Role               entities.Role
	MustChangePassword bool
}

// UpdateUserInput contém os campos mutáveis de um usuário.
// Campos nil não são tocados.
type UpdateUserInput struct {
	Email              *string
	PasswordHash       *string
	Role               *entities.Role
	MustChangePassword *bool
}

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (*entities.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*entities.User, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
