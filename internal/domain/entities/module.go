package entities

import "time"

// ModuleRoutine representa uma rotina/competência treinável.
// O campo Observation também serve de categoria nos relatórios.
type ModuleRoutine struct {
	ID          string
	Code        string
	Description string
	Observation *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
