package dto

import (
	"time"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

// SkillClaimUpsertRequest representa a requisição de gravação de uma
// autoavaliação. CollaboratorID é ignorado para o perfil COLABORADOR,
// que só grava sobre o próprio perfil.
type SkillClaimUpsertRequest struct {
	CollaboratorID string  `json:"collaboratorId"`
	ModuleID       string  `json:"moduleId" binding:"required"`
	CurrentLevel   string  `json:"currentLevel" binding:"required,skilllevel"`
	Evidence       *string `json:"evidence" binding:"omitempty,max=2000"`
}

// SkillClaimUpdateRequest representa a atualização parcial de uma
// autoavaliação
type SkillClaimUpdateRequest struct {
	CurrentLevel *string        `json:"currentLevel" binding:"omitempty,skilllevel"`
	Evidence     OptionalString `json:"evidence"`
}

// ToUpdateInput converte a requisição para a entrada do repositório
func (r *SkillClaimUpdateRequest) ToUpdateInput() repositories.SkillClaimUpdateInput {
	input := repositories.SkillClaimUpdateInput{}

	if r.CurrentLevel != nil {
		level := entities.SkillLevel(*r.CurrentLevel)
		input.CurrentLevel = &level
	}
	if r.Evidence.Set {
		if r.Evidence.Value != nil {
			input.Evidence = repositories.Some(*r.Evidence.Value)
		} else {
			input.Evidence = repositories.Null[string]()
		}
	}

	return input
}

// SkillClaimResponse representa a resposta de uma autoavaliação.
// Module aparece quando a consulta traz o módulo relacionado.
type SkillClaimResponse struct {
	ID             string          `json:"id"`
	CollaboratorID string          `json:"collaboratorId"`
	ModuleID       string          `json:"moduleId"`
	CurrentLevel   string          `json:"currentLevel"`
	Evidence       *string         `json:"evidence"`
	Module         *ModuleResponse `json:"module,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToSkillClaimResponse converte uma autoavaliação sem módulo
func ToSkillClaimResponse(claim *entities.SkillClaim) SkillClaimResponse {
	return SkillClaimResponse{
		ID:             claim.ID,
		CollaboratorID: claim.CollaboratorID,
		ModuleID:       claim.ModuleID,
		CurrentLevel:   string(claim.CurrentLevel),
		Evidence:       claim.Evidence,
		CreatedAt:      claim.CreatedAt,
		UpdatedAt:      claim.UpdatedAt,
	}
}

// ToSkillClaimWithModuleResponse converte uma autoavaliação com o
// módulo relacionado
func ToSkillClaimWithModuleResponse(claim *entities.SkillClaimWithModule) SkillClaimResponse {
	response := ToSkillClaimResponse(&claim.SkillClaim)
	module := ToModuleResponse(&claim.Module)
	response.Module = &module
	return response
}

// ToSkillClaimWithModuleResponses converte uma lista de autoavaliações
func ToSkillClaimWithModuleResponses(claims []*entities.SkillClaimWithModule) []SkillClaimResponse {
	responses := make([]SkillClaimResponse, len(claims))
	for i, claim := range claims {
		responses[i] = ToSkillClaimWithModuleResponse(claim)
	}
	return responses
}
