package entities

import "time"

// AuditLog registra uma ação de escrita relevante para auditoria
type AuditLog struct {
	ID        string
	UserID    *string
	Action    string
	Entity    string
	EntityID  *string
	Payload   *string
	CreatedAt time.Time
}
