package repositories

import (
	"context"
	"time"

	"github.com/skillsmatrix/backend/internal/domain/entities"
)

// CareerPlanInput contém os dados para criação de um plano de carreira
type CareerPlanInput struct {
	CollaboratorID string
	Objectives     string
	DueDate        *time.Time
	Notes          *string
	ModuleIDs      []string
}

// UpdateCareerPlanInput contém os campos mutáveis de um plano.
// Campos ausentes não são tocados; ModuleIDs presente substitui
// integralmente os vínculos de módulo.
type UpdateCareerPlanInput struct {
	CollaboratorID Optional[string]
	Objectives     Optional[string]
	DueDate        Optional[time.Time]
	Notes          Optional[string]
	ModuleIDs      Optional[[]string]
}

// CareerPlanListParams contém filtros para listagem de planos
type CareerPlanListParams struct {
	CollaboratorID string
}

// CareerPlanRepository define a interface para persistência de planos
// de carreira. Escritas que envolvem campos escalares e vínculos de
// módulo são atômicas.
type CareerPlanRepository interface {
	Create(ctx context.Context, input CareerPlanInput) (*entities.CareerPlanWithModules, error)
	Update(ctx context.Context, id string, input UpdateCareerPlanInput) (*entities.CareerPlanWithModules, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entities.CareerPlanWithModules, error)
	List(ctx context.Context, params CareerPlanListParams) ([]*entities.CareerPlanWithModules, error)
}
