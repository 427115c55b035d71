package repositories

import (
	"context"

	"github.com/skillsmatrix/backend/internal/domain/entities"
)

// AuditLogInput contém os dados de um registro de auditoria
type AuditLogInput struct {
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Payload  *string
}

// AuditLogRepository define a interface para persistência de auditoria
type AuditLogRepository interface {
	Create(ctx context.Context, input AuditLogInput) (*entities.AuditLog, error)
	List(ctx context.Context, limit int) ([]*entities.AuditLog, error)
}
