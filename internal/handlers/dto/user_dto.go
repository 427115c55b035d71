package dto

import (
	"time"

	"github.com/skillsmatrix/backend/internal/domain/entities"
)

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Role               string    `json:"role"`
	MustChangePassword bool      `json:"mustChangePassword"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:                 user.ID,
		Email:              user.Email.String(),
		Role:               string(user.Role),
		MustChangePassword: user.MustChangePassword,
		CreatedAt:          user.CreatedAt,
	}
}

// UserSummaryResponse é a projeção pública do usuário vinculado a um
// colaborador
type UserSummaryResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ToUserSummaryResponse converte um UserSummary para a resposta
func ToUserSummaryResponse(summary *entities.UserSummary) *UserSummaryResponse {
	if summary == nil {
		return nil
	}
	return &UserSummaryResponse{
		ID:    summary.ID,
		Email: summary.Email,
	}
}
