package entities

import (
	"time"

	"github.com/skillsmatrix/backend/internal/domain/valueobjects"
)

// User representa um usuário com acesso ao sistema
type User struct {
	ID                 string
	Email              valueobjects.Email
	PasswordHash       string
	Role               Role
	MustChangePassword bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsMaster verifica se o usuário é o gestor da matriz
func (u *User) IsMaster() bool {
	return u.Role == RoleMaster
}

// UserSummary é a projeção pública de um usuário vinculado a um perfil
type UserSummary struct {
	ID    string
	Email string
}
