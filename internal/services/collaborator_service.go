package services

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/skillsmatrix/backend/internal/domain"
	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/errors"
	"github.com/skillsmatrix/backend/internal/domain/ports"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

// CollaboratorService contém a lógica de negócio para colaboradores,
// incluindo o provisionamento de acesso (usuário vinculado)
type CollaboratorService struct {
	collaboratorRepo repositories.CollaboratorRepository
	userRepo         repositories.UserRepository
	uow              domain.UnitOfWork
	audit            *AuditService
	logger           ports.Logger
}

// NewCollaboratorService cria um novo CollaboratorService
func NewCollaboratorService(
	collaboratorRepo repositories.CollaboratorRepository,
	userRepo repositories.UserRepository,
	uow domain.UnitOfWork,
	audit *AuditService,
	logger ports.Logger,
) *CollaboratorService {
	return &CollaboratorService{
		collaboratorRepo: collaboratorRepo,
		userRepo:         userRepo,
		uow:              uow,
		audit:            audit,
		logger:           logger,
	}
}

// CollaboratorWriteInput representa os dados de escrita de um
// colaborador. CreateAccess dispara o provisionamento de um usuário
// com a senha temporária retornada uma única vez.
type CollaboratorWriteInput struct {
	FullName      string
	AdmissionDate time.Time
	Activities    []string
	Notes         *string
	CreateAccess  bool
	AccessEmail   *string
}

// ProvisionedAccess é o payload de credenciais retornado uma única vez
// na resposta da escrita que provisionou o acesso
type ProvisionedAccess struct {
	Email             string `json:"email"`
	TemporaryPassword string `json:"temporaryPassword"`
}

// ListCollaboratorsParams contém os filtros de listagem
type ListCollaboratorsParams struct {
	Page     int
	PerPage  int
	Name     string
	Activity string
}

// CollaboratorPage é uma página de colaboradores com metadados
type CollaboratorPage struct {
	Data []*entities.CollaboratorWithUser
	Meta repositories.PageMeta
}

// Create cria um colaborador e, quando solicitado, provisiona o
// usuário de acesso na mesma transação
func (s *CollaboratorService) Create(ctx context.Context, input CollaboratorWriteInput) (*entities.CollaboratorWithUser, *ProvisionedAccess, error) {
	s.logger.Info("creating collaborator", "fullName", input.FullName)

	var collaborator *entities.CollaboratorWithUser
	var access *ProvisionedAccess

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var userID *string

		if input.CreateAccess {
			user, creds, err := s.provisionUser(txCtx, input.AccessEmail)
			if err != nil {
				return err
			}
			userID = &user.ID
			access = creds
		}

		created, err := s.collaboratorRepo.Create(txCtx, repositories.CollaboratorInput{
			FullName:      input.FullName,
			AdmissionDate: input.AdmissionDate,
			Activities:    input.Activities,
			Notes:         input.Notes,
			UserID:        userID,
		})
		if err != nil {
			return err
		}

		collaborator = created
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.audit.Record(ctx, "create", "collaborator", &collaborator.ID, map[string]any{"fullName": collaborator.FullName})
	return collaborator, access, nil
}

// Update atualiza um colaborador; CreateAccess em um perfil já
// vinculado é rejeitado
func (s *CollaboratorService) Update(ctx context.Context, id string, input CollaboratorWriteInput) (*entities.CollaboratorWithUser, *ProvisionedAccess, error) {
	existing, err := s.collaboratorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if existing == nil {
		return nil, nil, errors.ErrCollaboratorNotFound
	}

	if input.CreateAccess && existing.UserID != nil {
		return nil, nil, errors.ErrCollaboratorHasUser
	}

	var collaborator *entities.CollaboratorWithUser
	var access *ProvisionedAccess

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		userID := existing.UserID

		if input.CreateAccess {
			user, creds, err := s.provisionUser(txCtx, input.AccessEmail)
			if err != nil {
				return err
			}
			userID = &user.ID
			access = creds
		}

		updated, err := s.collaboratorRepo.Update(txCtx, id, repositories.CollaboratorInput{
			FullName:      input.FullName,
			AdmissionDate: input.AdmissionDate,
			Activities:    input.Activities,
			Notes:         input.Notes,
			UserID:        userID,
		})
		if err != nil {
			return err
		}

		collaborator = updated
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.audit.Record(ctx, "update", "collaborator", &id, map[string]any{"fullName": input.FullName})
	return collaborator, access, nil
}

// DeleteWithAccess remove o colaborador e, na mesma transação, o
// usuário vinculado quando existir. As autoavaliações, avaliações e
// planos do colaborador caem por cascata no banco.
func (s *CollaboratorService) DeleteWithAccess(ctx context.Context, id string) error {
	existing, err := s.collaboratorRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.ErrCollaboratorNotFound
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.collaboratorRepo.Delete(txCtx, id); err != nil {
			return err
		}
		if existing.UserID != nil {
			return s.userRepo.Delete(txCtx, *existing.UserID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, "delete", "collaborator", &id, nil)
	s.logger.Info("collaborator deleted", "collaboratorId", id, "hadUser", existing.UserID != nil)
	return nil
}

// ResetAccess gera uma nova senha temporária para o usuário vinculado
// e reativa a troca obrigatória de senha
func (s *CollaboratorService) ResetAccess(ctx context.Context, id string) (*ProvisionedAccess, error) {
	collaborator, err := s.collaboratorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if collaborator == nil {
		return nil, errors.ErrCollaboratorNotFound
	}
	if collaborator.UserID == nil {
		return nil, errors.ErrCollaboratorNoUser
	}

	user, err := s.userRepo.FindByID(ctx, *collaborator.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrCollaboratorNoUser
	}

	password, err := GenerateTemporaryPassword(0)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	hashText := string(hash)
	mustChange := true
	if _, err := s.userRepo.Update(ctx, user.ID, repositories.UpdateUserInput{
		PasswordHash:       &hashText,
		MustChangePassword: &mustChange,
	}); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "reset-access", "collaborator", &id, nil)

	return &ProvisionedAccess{
		Email:             user.Email.String(),
		TemporaryPassword: password,
	}, nil
}

// Get busca um colaborador por ID
func (s *CollaboratorService) Get(ctx context.Context, id string) (*entities.CollaboratorWithUser, error) {
	collaborator, err := s.collaboratorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if collaborator == nil {
		return nil, errors.ErrCollaboratorNotFound
	}
	return collaborator, nil
}

// GetDetail busca o colaborador com autoavaliações, avaliações do
// gestor e planos de carreira
func (s *CollaboratorService) GetDetail(ctx context.Context, id string) (*entities.CollaboratorDetail, error) {
	detail, err := s.collaboratorRepo.FindDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.ErrCollaboratorNotFound
	}
	return detail, nil
}

// List retorna colaboradores paginados. O filtro por atividade é
// aplicado em memória após a busca, pois atividades são armazenadas
// como JSON serializado.
func (s *CollaboratorService) List(ctx context.Context, params ListCollaboratorsParams) (*CollaboratorPage, error) {
	page, perPage := repositories.NormalizePage(params.Page, params.PerPage)

	if activity := strings.TrimSpace(params.Activity); activity != "" {
		all, err := s.collaboratorRepo.ListAll(ctx, params.Name)
		if err != nil {
			return nil, err
		}

		filtered := make([]*entities.CollaboratorWithUser, 0, len(all))
		for _, collaborator := range all {
			if collaborator.HasActivity(activity) {
				filtered = append(filtered, collaborator)
			}
		}

		total := int64(len(filtered))
		start := (page - 1) * perPage
		if start > len(filtered) {
			start = len(filtered)
		}
		end := start + perPage
		if end > len(filtered) {
			end = len(filtered)
		}

		return &CollaboratorPage{
			Data: filtered[start:end],
			Meta: repositories.NewPageMeta(page, perPage, total),
		}, nil
	}

	result, err := s.collaboratorRepo.List(ctx, repositories.CollaboratorListParams{
		Page:    page,
		PerPage: perPage,
		Name:    params.Name,
	})
	if err != nil {
		return nil, err
	}

	return &CollaboratorPage{
		Data: result.Data,
		Meta: repositories.NewPageMeta(page, perPage, result.Total),
	}, nil
}

// RequireProfileByUserID resolve o perfil do usuário autenticado.
// Usado pelo fluxo de autoatendimento de autoavaliações.
func (s *CollaboratorService) RequireProfileByUserID(ctx context.Context, userID string) (*entities.CollaboratorProfile, error) {
	profile, err := s.collaboratorRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.ErrCollaboratorNotFound
	}
	return profile, nil
}

// provisionUser cria o usuário de acesso do colaborador. Exige email
// não vazio e inédito; a senha temporária retornada nunca é
// persistida em claro.
func (s *CollaboratorService) provisionUser(ctx context.Context, email *string) (*entities.User, *ProvisionedAccess, error) {
	if email == nil || strings.TrimSpace(*email) == "" {
		return nil, nil, errors.ErrAccessEmailRequired
	}

	normalized := strings.ToLower(strings.TrimSpace(*email))

	existing, err := s.userRepo.FindByEmail(ctx, normalized)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, errors.ErrAccessEmailInUse
	}

	password, err := GenerateTemporaryPassword(0)
	if err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.Create(ctx, repositories.CreateUserInput{
		Email:              normalized,
		PasswordHash:       string(hash),
		Role:               entities.RoleColaborador,
		MustChangePassword: true,
	})
	if err != nil {
		return nil, nil, err
	}

	return user, &ProvisionedAccess{
		Email:             normalized,
		TemporaryPassword: password,
	}, nil
}
