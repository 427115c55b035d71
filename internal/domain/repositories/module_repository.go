package repositories

import (
	"context"

	"github.com/skillsmatrix/backend/internal/domain/entities"
)

// ModuleInput contém os dados de escrita de um módulo/rotina.
// O código é normalizado (trim + maiúsculas) pelo repositório.
type ModuleInput struct {
	Code        string
	Description string
	Observation *string
}

// ModuleListParams contém filtros para listagem paginada de módulos
type ModuleListParams struct {
	Page         int
	PerPage      int
	CodeExact    []string // códigos exatos, comparados sem diferenciar maiúsculas
	CodeContains string
	Description  string
}

// ModuleListResult é o resultado de uma listagem paginada
type ModuleListResult struct {
	Data  []*entities.ModuleRoutine
	Total int64
}

// ModuleRepository define a interface para persistência de módulos
type ModuleRepository interface {
	Create(ctx context.Context, input ModuleInput) (*entities.ModuleRoutine, error)
	Update(ctx context.Context, id string, input ModuleInput) (*entities.ModuleRoutine, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entities.ModuleRoutine, error)
	FindByCode(ctx context.Context, code string) (*entities.ModuleRoutine, error)
	List(ctx context.Context, params ModuleListParams) (*ModuleListResult, error)
	ListAll(ctx context.Context) ([]*entities.ModuleRoutine, error)
	UpsertByCode(ctx context.Context, input ModuleInput) (*entities.ModuleRoutine, error)
	Count(ctx context.Context) (int64, error)
}
