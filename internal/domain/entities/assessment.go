package entities

import "time"

// ManagerAssessment representa o nível alvo definido pelo gestor para
// um colaborador em um módulo. Existe no máximo uma por par
// (colaborador, módulo).
type ManagerAssessment struct {
	ID             string
	CollaboratorID string
	ModuleID       string
	TargetLevel    SkillLevel
	Comment        *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ManagerAssessmentWithModule agrega a avaliação e o módulo relacionado
type ManagerAssessmentWithModule struct {
	ManagerAssessment
	Module ModuleRoutine
}
