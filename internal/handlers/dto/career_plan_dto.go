package dto

import (
	"time"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

// CareerPlanCreateRequest representa a requisição de criação de um
// plano de carreira
type CareerPlanCreateRequest struct {
	CollaboratorID string   `json:"collaboratorId" binding:"required"`
	Objectives     string   `json:"objectives" binding:"required,min=3,max=4000"`
	DueDate        *string  `json:"dueDate"`
	Notes          *string  `json:"notes" binding:"omitempty,max=2000"`
	ModuleIDs      []string `json:"moduleIds"`
}

// ToCreateInput converte a requisição para a entrada do repositório
func (r *CareerPlanCreateRequest) ToCreateInput() (repositories.CareerPlanInput, error) {
	input := repositories.CareerPlanInput{
		CollaboratorID: r.CollaboratorID,
		Objectives:     r.Objectives,
		Notes:          r.Notes,
		ModuleIDs:      r.ModuleIDs,
	}

	if r.DueDate != nil {
		dueDate, err := ParseDate(*r.DueDate)
		if err != nil {
			return repositories.CareerPlanInput{}, err
		}
		input.DueDate = &dueDate
	}

	return input, nil
}

// CareerPlanUpdateRequest representa a atualização parcial de um
// plano. ModuleIDs presente substitui integralmente os vínculos.
type CareerPlanUpdateRequest struct {
	CollaboratorID *string             `json:"collaboratorId"`
	Objectives     *string             `json:"objectives" binding:"omitempty,min=3,max=4000"`
	DueDate        OptionalTime        `json:"dueDate"`
	Notes          OptionalString      `json:"notes"`
	ModuleIDs      OptionalStringSlice `json:"moduleIds"`
}

// ToUpdateInput converte a requisição para a entrada do repositório
func (r *CareerPlanUpdateRequest) ToUpdateInput() repositories.UpdateCareerPlanInput {
	input := repositories.UpdateCareerPlanInput{}

	if r.CollaboratorID != nil {
		input.CollaboratorID = repositories.Some(*r.CollaboratorID)
	}
	if r.Objectives != nil {
		input.Objectives = repositories.Some(*r.Objectives)
	}
	if r.DueDate.Set {
		if r.DueDate.Value != nil {
			input.DueDate = repositories.Some(*r.DueDate.Value)
		} else {
			input.DueDate = repositories.Null[time.Time]()
		}
	}
	if r.Notes.Set {
		if r.Notes.Value != nil {
			input.Notes = repositories.Some(*r.Notes.Value)
		} else {
			input.Notes = repositories.Null[string]()
		}
	}
	if r.ModuleIDs.Set {
		input.ModuleIDs = repositories.Some(r.ModuleIDs.Value)
	}

	return input
}

// CareerPlanModuleResponse é o vínculo de módulo na resposta de um
// plano
type CareerPlanModuleResponse struct {
	ID       string         `json:"id"`
	ModuleID string         `json:"moduleId"`
	Module   ModuleResponse `json:"module"`
}

// CareerPlanResponse representa a resposta de um plano de carreira
type CareerPlanResponse struct {
	ID             string                     `json:"id"`
	CollaboratorID string                     `json:"collaboratorId"`
	Objectives     string                     `json:"objectives"`
	DueDate        *time.Time                 `json:"dueDate"`
	Notes          *string                    `json:"notes"`
	Modules        []CareerPlanModuleResponse `json:"modules,omitempty"`
	CreatedAt      time.Time                  `json:"createdAt"`
	UpdatedAt      time.Time                  `json:"updatedAt"`
}

// ToCareerPlanResponse converte um plano sem os vínculos de módulo
func ToCareerPlanResponse(plan *entities.CareerPlan) CareerPlanResponse {
	return CareerPlanResponse{
		ID:             plan.ID,
		CollaboratorID: plan.CollaboratorID,
		Objectives:     plan.Objectives,
		DueDate:        plan.DueDate,
		Notes:          plan.Notes,
		CreatedAt:      plan.CreatedAt,
		UpdatedAt:      plan.UpdatedAt,
	}
}

// ToCareerPlanWithModulesResponse converte um plano com seus vínculos
func ToCareerPlanWithModulesResponse(plan *entities.CareerPlanWithModules) CareerPlanResponse {
	response := ToCareerPlanResponse(&plan.CareerPlan)

	modules := make([]CareerPlanModuleResponse, len(plan.Modules))
	for i, link := range plan.Modules {
		modules[i] = CareerPlanModuleResponse{
			ID:       link.ID,
			ModuleID: link.ModuleID,
			Module:   ToModuleResponse(&link.Module),
		}
	}
	response.Modules = modules

	return response
}

// ToCareerPlanWithModulesResponses converte uma lista de planos
func ToCareerPlanWithModulesResponses(plans []*entities.CareerPlanWithModules) []CareerPlanResponse {
	responses := make([]CareerPlanResponse, len(plans))
	for i, plan := range plans {
		responses[i] = ToCareerPlanWithModulesResponse(plan)
	}
	return responses
}
