package dto

import (
	"time"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

// ModuleRequest representa a requisição de escrita de um módulo
type ModuleRequest struct {
	Code        string  `json:"code" binding:"required,min=2,max=60"`
	Description string  `json:"description" binding:"required,min=2,max=200"`
	Observation *string `json:"observation" binding:"omitempty,max=500"`
}

// ModuleResponse representa a resposta de um módulo
type ModuleResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Observation *string   `json:"observation"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ModuleListResponse é a resposta paginada da listagem de módulos
type ModuleListResponse struct {
	Data []ModuleResponse      `json:"data"`
	Meta repositories.PageMeta `json:"meta"`
}

// ToModuleResponse converte uma entidade ModuleRoutine para a resposta
func ToModuleResponse(module *entities.ModuleRoutine) ModuleResponse {
	return ModuleResponse{
		ID:          module.ID,
		Code:        module.Code,
		Description: module.Description,
		Observation: module.Observation,
		CreatedAt:   module.CreatedAt,
		UpdatedAt:   module.UpdatedAt,
	}
}

// ToModuleResponses converte uma lista de módulos para as respostas
func ToModuleResponses(modules []*entities.ModuleRoutine) []ModuleResponse {
	responses := make([]ModuleResponse, len(modules))
	for i, module := range modules {
		responses[i] = ToModuleResponse(module)
	}
	return responses
}
