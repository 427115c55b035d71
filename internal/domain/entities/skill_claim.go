package entities

import "time"

// SkillClaim representa a autoavaliação de um colaborador em um módulo.
// Existe no máximo uma por par (colaborador, módulo).
type SkillClaim struct {
	ID             string
	CollaboratorID string
	ModuleID       string
	CurrentLevel   SkillLevel
	Evidence       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SkillClaimWithModule agrega a autoavaliação e o módulo relacionado
type SkillClaimWithModule struct {
	SkillClaim
	Module ModuleRoutine
}
