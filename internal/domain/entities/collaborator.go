package entities

import "time"

// CollaboratorProfile representa um colaborador acompanhado pela matriz
// de habilidades, opcionalmente vinculado a um usuário com login.
type CollaboratorProfile struct {
	ID            string
	UserID        *string
	FullName      string
	AdmissionDate time.Time
	Activities    []string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasActivity verifica se o colaborador exerce a atividade informada
func (c *CollaboratorProfile) HasActivity(activity string) bool {
	for _, a := range c.Activities {
		if a == activity {
			return true
		}
	}
	return false
}

// CollaboratorWithUser agrega o perfil e o resumo do usuário vinculado
type CollaboratorWithUser struct {
	CollaboratorProfile
	User *UserSummary
}

// CollaboratorDetail agrega o perfil com autoavaliações, avaliações do
// gestor e planos de carreira do colaborador
type CollaboratorDetail struct {
	CollaboratorWithUser
	SkillClaims []*SkillClaim
	Assessments []*ManagerAssessment
	CareerPlans []*CareerPlan
}
