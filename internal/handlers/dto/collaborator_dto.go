package dto

import (
	"time"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
	"github.com/skillsmatrix/backend/internal/services"
)

// CollaboratorRequest representa a requisição de escrita de um
// colaborador. CreateAccess dispara o provisionamento de acesso e
// exige AccessEmail.
type CollaboratorRequest struct {
	FullName      string   `json:"fullName" binding:"required,min=2,max=120"`
	AdmissionDate string   `json:"admissionDate" binding:"required"`
	Activities    []string `json:"activities"`
	Notes         *string  `json:"notes" binding:"omitempty,max=2000"`
	CreateAccess  bool     `json:"createAccess"`
	AccessEmail   *string  `json:"accessEmail" binding:"omitempty,email"`
}

// ToWriteInput converte a requisição para a entrada do serviço
func (r *CollaboratorRequest) ToWriteInput() (services.CollaboratorWriteInput, error) {
	admissionDate, err := ParseDate(r.AdmissionDate)
	if err != nil {
		return services.CollaboratorWriteInput{}, err
	}

	return services.CollaboratorWriteInput{
		FullName:      r.FullName,
		AdmissionDate: admissionDate,
		Activities:    r.Activities,
		Notes:         r.Notes,
		CreateAccess:  r.CreateAccess,
		AccessEmail:   r.AccessEmail,
	}, nil
}

// CollaboratorResponse representa a resposta de um colaborador.
// Access só aparece na resposta da escrita que provisionou o acesso.
type CollaboratorResponse struct {
	ID            string                      `json:"id"`
	FullName      string                      `json:"fullName"`
	AdmissionDate time.Time                   `json:"admissionDate"`
	Activities    []string                    `json:"activities"`
	Notes         *string                     `json:"notes"`
	User          *UserSummaryResponse        `json:"user"`
	Access        *services.ProvisionedAccess `json:"access,omitempty"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

// CollaboratorDetailResponse agrega o colaborador com autoavaliações,
// avaliações do gestor e planos de carreira
type CollaboratorDetailResponse struct {
	CollaboratorResponse
	SkillClaims []SkillClaimResponse `json:"skillClaims"`
	Assessments []AssessmentResponse `json:"assessments"`
	CareerPlans []CareerPlanResponse `json:"careerPlans"`
}

// CollaboratorListResponse é a resposta paginada da listagem
type CollaboratorListResponse struct {
	Data []CollaboratorResponse `json:"data"`
	Meta repositories.PageMeta  `json:"meta"`
}

// ToCollaboratorResponse converte a entidade para a resposta
func ToCollaboratorResponse(collaborator *entities.CollaboratorWithUser, access *services.ProvisionedAccess) CollaboratorResponse {
	return CollaboratorResponse{
		ID:            collaborator.ID,
		FullName:      collaborator.FullName,
		AdmissionDate: collaborator.AdmissionDate,
		Activities:    collaborator.Activities,
		Notes:         collaborator.Notes,
		User:          ToUserSummaryResponse(collaborator.User),
		Access:        access,
		CreatedAt:     collaborator.CreatedAt,
		UpdatedAt:     collaborator.UpdatedAt,
	}
}

// ToCollaboratorResponses converte uma lista de colaboradores
func ToCollaboratorResponses(collaborators []*entities.CollaboratorWithUser) []CollaboratorResponse {
	responses := make([]CollaboratorResponse, len(collaborators))
	for i, collaborator := range collaborators {
		responses[i] = ToCollaboratorResponse(collaborator, nil)
	}
	return responses
}

// ToCollaboratorDetailResponse converte o detalhe do colaborador
func ToCollaboratorDetailResponse(detail *entities.CollaboratorDetail) CollaboratorDetailResponse {
	claims := make([]SkillClaimResponse, len(detail.SkillClaims))
	for i, claim := range detail.SkillClaims {
		claims[i] = ToSkillClaimResponse(claim)
	}

	assessments := make([]AssessmentResponse, len(detail.Assessments))
	for i, assessment := range detail.Assessments {
		assessments[i] = ToAssessmentResponse(assessment)
	}

	plans := make([]CareerPlanResponse, len(detail.CareerPlans))
	for i, plan := range detail.CareerPlans {
		plans[i] = ToCareerPlanResponse(plan)
	}

	return CollaboratorDetailResponse{
		CollaboratorResponse: ToCollaboratorResponse(&detail.CollaboratorWithUser, nil),
		SkillClaims:          claims,
		Assessments:          assessments,
		CareerPlans:          plans,
	}
}
