package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/ports"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

type actorKey struct{}

// WithActor associa o usuário autenticado ao contexto para fins de
// auditoria
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

func actorFrom(ctx context.Context) *string {
	if userID, ok := ctx.Value(actorKey{}).(string); ok && userID != "" {
		return &userID
	}
	return nil
}

// AuditService registra ações de escrita relevantes e publica os
// eventos para os painéis conectados
type AuditService struct {
	auditRepo repositories.AuditLogRepository
	publisher ports.EventPublisher
	logger    ports.Logger
}

// NewAuditService cria um novo AuditService
func NewAuditService(
	auditRepo repositories.AuditLogRepository,
	publisher ports.EventPublisher,
	logger ports.Logger,
) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
		publisher: publisher,
		logger:    logger,
	}
}

type auditEvent struct {
	Type      string    `json:"type"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  *string   `json:"entityId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Record grava um registro de auditoria. A gravação é best-effort:
// falhas são registradas em log e nunca propagadas ao fluxo principal.
func (s *AuditService) Record(ctx context.Context, action, entity string, entityID *string, payload any) {
	var payloadText *string
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			text := string(raw)
			payloadText = &text
		}
	}

	entry, err := s.auditRepo.Create(ctx, repositories.AuditLogInput{
		UserID:   actorFrom(ctx),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Payload:  payloadText,
	})
	if err != nil {
		s.logger.Warn("failed to record audit entry", "action", action, "entity", entity, "error", err)
		return
	}

	if s.publisher != nil {
		event := auditEvent{
			Type:      "audit",
			Action:    entry.Action,
			Entity:    entry.Entity,
			EntityID:  entry.EntityID,
			CreatedAt: entry.CreatedAt,
		}
		if raw, err := json.Marshal(event); err == nil {
			s.publisher.Publish(raw)
		}
	}
}

// List retorna os registros de auditoria mais recentes
func (s *AuditService) List(ctx context.Context, limit int) ([]*entities.AuditLog, error) {
	return s.auditRepo.List(ctx, limit)
}
