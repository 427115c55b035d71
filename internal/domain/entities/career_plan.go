package entities

import "time"

// CareerPlan representa um plano de carreira autorado pelo gestor
type CareerPlan struct {
	ID             string
	CollaboratorID string
	Objectives     string
	DueDate        *time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CareerPlanModule é o vínculo entre um plano e um módulo.
// Existe no máximo um por par (plano, módulo).
type CareerPlanModule struct {
	ID           string
	CareerPlanID string
	ModuleID     string
	CreatedAt    time.Time
}

// CareerPlanModuleWithModule agrega o vínculo e o módulo relacionado
type CareerPlanModuleWithModule struct {
	CareerPlanModule
	Module ModuleRoutine
}

// CareerPlanWithModules agrega o plano e seus módulos associados
type CareerPlanWithModules struct {
	CareerPlan
	Modules []CareerPlanModuleWithModule
}
