package repositories

import (
	"context"

	"github.com/skillsmatrix/backend/internal/domain/entities"
)

// AssessmentInput contém os dados para upsert de uma avaliação do gestor
type AssessmentInput struct {
	CollaboratorID string
	ModuleID       string
	TargetLevel    entities.SkillLevel
	Comment        *string
}

// AssessmentListParams contém filtros para listagem de avaliações
type AssessmentListParams struct {
	CollaboratorID string
}

// AssessmentRepository define a interface para persistência de
// avaliações do gestor. Upsert garante no máximo uma linha por par
// (colaborador, módulo).
type AssessmentRepository interface {
	Upsert(ctx context.Context, input AssessmentInput) (*entities.ManagerAssessmentWithModule, error)
	FindWithModuleByID(ctx context.Context, id string) (*entities.ManagerAssessmentWithModule, error)
	List(ctx context.Context, params AssessmentListParams) ([]*entities.ManagerAssessmentWithModule, error)
	ListAll(ctx context.Context) ([]*entities.ManagerAssessment, error)
	Count(ctx context.Context) (int64, error)
}
