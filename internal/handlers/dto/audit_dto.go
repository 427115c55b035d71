package dto

import (
	"time"

	"github.com/skillsmatrix/backend/internal/domain/entities"
)

// AuditLogResponse representa a resposta de um registro de auditoria
type AuditLogResponse struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"userId"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  *string   `json:"entityId"`
	Payload   *string   `json:"payload"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToAuditLogResponses converte uma lista de registros de auditoria
func ToAuditLogResponses(logs []*entities.AuditLog) []AuditLogResponse {
	responses := make([]AuditLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = AuditLogResponse{
			ID:        log.ID,
			UserID:    log.UserID,
			Action:    log.Action,
			Entity:    log.Entity,
			EntityID:  log.EntityID,
			Payload:   log.Payload,
			CreatedAt: log.CreatedAt,
		}
	}
	return responses
}
