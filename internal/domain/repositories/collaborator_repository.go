package repositories

import (
	"context"
	"time"

	"github.com/skillsmatrix/backend/internal/domain/entities"
)

// CollaboratorInput contém os dados de escrita de um perfil de
// colaborador (criação e atualização completa)
type CollaboratorInput struct {
	FullName      string
	AdmissionDate time.Time
	Activities    []string
	Notes         *string
	UserID        *string
}

// CollaboratorListParams contém filtros para listagem paginada
type CollaboratorListParams struct {
	Page    int
	PerPage int
	Name    string // busca "contém", sem diferenciar maiúsculas
}

// CollaboratorListResult é o resultado de uma listagem paginada
type CollaboratorListResult struct {
	Data  []*entities.CollaboratorWithUser
	Total int64
}

// CollaboratorRepository define a interface para persistência de
// perfis de colaboradores
type CollaboratorRepository interface {
	Create(ctx context.Context, input CollaboratorInput) (*entities.CollaboratorWithUser, error)
	Update(ctx context.Context, id string, input CollaboratorInput) (*entities.CollaboratorWithUser, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entities.CollaboratorWithUser, error)
	FindByUserID(ctx context.Context, userID string) (*entities.CollaboratorProfile, error)
	FindDetail(ctx context.Context, id string) (*entities.CollaboratorDetail, error)
	List(ctx context.Context, params CollaboratorListParams) (*CollaboratorListResult, error)
	ListAll(ctx context.Context, name string) ([]*entities.CollaboratorWithUser, error)
	Count(ctx context.Context) (int64, error)
}
