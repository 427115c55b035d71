package dto

import (
	"time"

	"github.com/skillsmatrix/backend/internal/domain/entities"
)

// AssessmentUpsertRequest representa a requisição de gravação de uma
// avaliação do gestor
type AssessmentUpsertRequest struct {
	CollaboratorID string  `json:"collaboratorId" binding:"required"`
	ModuleID       string  `json:"moduleId" binding:"required"`
	TargetLevel    string  `json:"targetLevel" binding:"required,skilllevel"`
	Comment        *string `json:"comment" binding:"omitempty,max=2000"`
}

// AssessmentResponse representa a resposta de uma avaliação do gestor
type AssessmentResponse struct {
	ID             string          `json:"id"`
	CollaboratorID string          `json:"collaboratorId"`
	ModuleID       string          `json:"moduleId"`
	TargetLevel    string          `json:"targetLevel"`
	Comment        *string         `json:"comment"`
	Module         *ModuleResponse `json:"module,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToAssessmentResponse converte uma avaliação sem módulo
func ToAssessmentResponse(assessment *entities.ManagerAssessment) AssessmentResponse {
	return AssessmentResponse{
		ID:             assessment.ID,
		CollaboratorID: assessment.CollaboratorID,
		ModuleID:       assessment.ModuleID,
		TargetLevel:    string(assessment.TargetLevel),
		Comment:        assessment.Comment,
		CreatedAt:      assessment.CreatedAt,
		UpdatedAt:      assessment.UpdatedAt,
	}
}

// ToAssessmentWithModuleResponse converte uma avaliação com o módulo
// relacionado
func ToAssessmentWithModuleResponse(assessment *entities.ManagerAssessmentWithModule) AssessmentResponse {
	response := ToAssessmentResponse(&assessment.ManagerAssessment)
	module := ToModuleResponse(&assessment.Module)
	response.Module = &module
	return response
}

// ToAssessmentWithModuleResponses converte uma lista de avaliações
func ToAssessmentWithModuleResponses(assessments []*entities.ManagerAssessmentWithModule) []AssessmentResponse {
	responses := make([]AssessmentResponse, len(assessments))
	for i, assessment := range assessments {
		responses[i] = ToAssessmentWithModuleResponse(assessment)
	}
	return responses
}
