package repositories

import (
	"context"

	"github.com/skillsmatrix/backend/internal/domain/entities"
)

// SkillClaimInput contém os dados para upsert de uma autoavaliação
type SkillClaimInput struct {
	CollaboratorID string
	ModuleID       string
	CurrentLevel   entities.SkillLevel
	Evidence       *string
}

// SkillClaimUpdateInput contém os campos mutáveis de uma autoavaliação
type SkillClaimUpdateInput struct {
	CurrentLevel *entities.SkillLevel
	Evidence     Optional[string]
}

// SkillClaimListParams contém filtros para listagem de autoavaliações
type SkillClaimListParams struct {
	CollaboratorID string
}

// SkillClaimRepository define a interface para persistência de
// autoavaliações. Upsert garante no máximo uma linha por par
// (colaborador, módulo).
type SkillClaimRepository interface {
	Upsert(ctx context.Context, input SkillClaimInput) (*entities.SkillClaimWithModule, error)
	Update(ctx context.Context, id string, input SkillClaimUpdateInput) (*entities.SkillClaimWithModule, error)
	FindByID(ctx context.Context, id string) (*entities.SkillClaim, error)
	FindWithModuleByID(ctx context.Context, id string) (*entities.SkillClaimWithModule, error)
	List(ctx context.Context, params SkillClaimListParams) ([]*entities.SkillClaimWithModule, error)
	ListAll(ctx context.Context) ([]*entities.SkillClaim, error)
	Count(ctx context.Context) (int64, error)
}
