package services

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/errors"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

func TestCollaboratorCreateWithAccess(t *testing.T) {
	ctx := context.Background()

	t.Run("provisiona usuário com senha temporária", func(t *testing.T) {
		service, _, userRepo := newTestCollaboratorService()

		email := "ana@hcm.local"
		collaborator, access, err := service.Create(ctx, CollaboratorWriteInput{
			FullName:      "Ana Silva",
			AdmissionDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			CreateAccess:  true,
			AccessEmail:   &email,
		})
		if err != nil {
			t.Fatal(err)
		}

		if access == nil {
			t.Fatal("credenciais deveriam ter sido retornadas")
		}
		if access.Email != email {
			t.Errorf("email = %s", access.Email)
		}
		if len(access.TemporaryPassword) != 12 {
			t.Errorf("senha temporária com %d caracteres", len(access.TemporaryPassword))
		}
		if collaborator.UserID == nil {
			t.Fatal("colaborador deveria estar vinculado ao usuário")
		}

		user, _ := userRepo.FindByID(ctx, *collaborator.UserID)
		if user == nil {
			t.Fatal("usuário provisionado não existe")
		}
		if user.Role != entities.RoleColaborador {
			t.Errorf("papel = %s, esperava COLABORADOR", user.Role)
		}
		if !user.MustChangePassword {
			t.Error("usuário provisionado deveria exigir troca de senha")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(access.TemporaryPassword)); err != nil {
			t.Error("hash persistido não corresponde à senha temporária")
		}
	})

	t.Run("email normalizado para minúsculas", func(t *testing.T) {
		service, _, _ := newTestCollaboratorService()

		email := "  Ana@HCM.Local  "
		_, access, err := service.Create(ctx, CollaboratorWriteInput{
			FullName:      "Ana Silva",
			AdmissionDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			CreateAccess:  true,
			AccessEmail:   &email,
		})
		if err != nil {
			t.Fatal(err)
		}
		if access.Email != "ana@hcm.local" {
			t.Errorf("email = %s", access.Email)
		}
	})

	t.Run("sem email rejeita com ACCESS_EMAIL_REQUIRED", func(t *testing.T) {
		service, collaboratorRepo, _ := newTestCollaboratorService()

		_, _, err := service.Create(ctx, CollaboratorWriteInput{
			FullName:      "Ana Silva",
			AdmissionDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			CreateAccess:  true,
		})
		if !stderrors.Is(err, errors.ErrAccessEmailRequired) {
			t.Fatalf("erro = %v, esperava ErrAccessEmailRequired", err)
		}
		if len(collaboratorRepo.collaborators) != 0 {
			t.Error("nenhum colaborador deveria ter sido criado")
		}
	})

	t.Run("email em uso rejeita com ACCESS_EMAIL_IN_USE sem criar nada", func(t *testing.T) {
		service, collaboratorRepo, userRepo := newTestCollaboratorService()

		if _, err := userRepo.Create(ctx, repositories.CreateUserInput{
			Email:        "ana@hcm.local",
			PasswordHash: "hash",
			Role:         entities.RoleColaborador,
		}); err != nil {
			t.Fatal(err)
		}

		email := "ana@hcm.local"
		_, _, err := service.Create(ctx, CollaboratorWriteInput{
			FullName:      "Outra Ana",
			AdmissionDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			CreateAccess:  true,
			AccessEmail:   &email,
		})
		if !stderrors.Is(err, errors.ErrAccessEmailInUse) {
			t.Fatalf("erro = %v, esperava ErrAccessEmailInUse", err)
		}
		if len(collaboratorRepo.collaborators) != 0 {
			t.Error("nenhum colaborador deveria ter sido criado")
		}
		if len(userRepo.users) != 1 {
			t.Error("nenhum usuário adicional deveria ter sido criado")
		}
	})
}

func TestCollaboratorUpdateAccess(t *testing.T) {
	ctx := context.Background()

	t.Run("createAccess em perfil já vinculado é rejeitado", func(t *testing.T) {
		service, _, _ := newTestCollaboratorService()

		email := "ana@hcm.local"
		collaborator, _, err := service.Create(ctx, CollaboratorWriteInput{
			FullName:      "Ana Silva",
			AdmissionDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			CreateAccess:  true,
			AccessEmail:   &email,
		})
		if err != nil {
			t.Fatal(err)
		}

		other := "ana2@hcm.local"
		_, _, err = service.Update(ctx, collaborator.ID, CollaboratorWriteInput{
			FullName:      "Ana Silva",
			AdmissionDate: collaborator.AdmissionDate,
			CreateAccess:  true,
			AccessEmail:   &other,
		})
		if !stderrors.Is(err, errors.ErrCollaboratorHasUser) {
			t.Fatalf("erro = %v, esperava ErrCollaboratorHasUser", err)
		}
	})

	t.Run("atualização preserva o vínculo existente", func(t *testing.T) {
		service, _, _ := newTestCollaboratorService()

		email := "ana@hcm.local"
		collaborator, _, err := service.Create(ctx, CollaboratorWriteInput{
			FullName:      "Ana Silva",
			AdmissionDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			CreateAccess:  true,
			AccessEmail:   &email,
		})
		if err != nil {
			t.Fatal(err)
		}

		updated, access, err := service.Update(ctx, collaborator.ID, CollaboratorWriteInput{
			FullName:      "Ana S. Oliveira",
			AdmissionDate: collaborator.AdmissionDate,
		})
		if err != nil {
			t.Fatal(err)
		}
		if access != nil {
			t.Error("atualização sem createAccess não deveria retornar credenciais")
		}
		if updated.UserID == nil || *updated.UserID != *collaborator.UserID {
			t.Error("vínculo com o usuário deveria ter sido preservado")
		}
	})
}

func TestCollaboratorResetAccess(t *testing.T) {
	ctx := context.Background()

	t.Run("gera nova senha e reativa a troca obrigatória", func(t *testing.T) {
		service, _, userRepo := newTestCollaboratorService()

		email := "ana@hcm.local"
		collaborator, first, err := service.Create(ctx, CollaboratorWriteInput{
			FullName:      "Ana Silva",
			AdmissionDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			CreateAccess:  true,
			AccessEmail:   &email,
		})
		if err != nil {
			t.Fatal(err)
		}

		access, err := service.ResetAccess(ctx, collaborator.ID)
		if err != nil {
			t.Fatal(err)
		}
		if access.TemporaryPassword == first.TemporaryPassword {
			t.Error("nova senha deveria diferir da anterior")
		}

		user, _ := userRepo.FindByID(ctx, *collaborator.UserID)
		if !user.MustChangePassword {
			t.Error("troca obrigatória de senha deveria ter sido reativada")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(access.TemporaryPassword)); err != nil {
			t.Error("hash persistido não corresponde à nova senha")
		}
	})

	t.Run("perfil sem usuário é rejeitado", func(t *testing.T) {
		service, _, _ := newTestCollaboratorService()

		collaborator, _, err := service.Create(ctx, CollaboratorWriteInput{
			FullName:      "Bruno Costa",
			AdmissionDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatal(err)
		}

		_, err = service.ResetAccess(ctx, collaborator.ID)
		if !stderrors.Is(err, errors.ErrCollaboratorNoUser) {
			t.Fatalf("erro = %v, esperava ErrCollaboratorNoUser", err)
		}
	})

	t.Run("perfil inexistente é rejeitado", func(t *testing.T) {
		service, _, _ := newTestCollaboratorService()

		_, err := service.ResetAccess(ctx, "inexistente")
		if !stderrors.Is(err, errors.ErrCollaboratorNotFound) {
			t.Fatalf("erro = %v, esperava ErrCollaboratorNotFound", err)
		}
	})
}

func TestCollaboratorListByActivity(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestCollaboratorService()

	for _, item := range []struct {
		name       string
		activities []string
	}{
		{"Ana Silva", []string{"implantacao", "suporte"}},
		{"Bruno Costa", []string{"suporte"}},
		{"Carla Dias", []string{"treinamento"}},
	} {
		if _, err := repo.Create(ctx, repositories.CollaboratorInput{
			FullName:      item.name,
			AdmissionDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			Activities:    item.activities,
		}); err != nil {
			t.Fatal(err)
		}
	}

	page, err := service.List(ctx, ListCollaboratorsParams{Activity: "suporte"})
	if err != nil {
		t.Fatal(err)
	}

	if page.Meta.Total != 2 {
		t.Errorf("Total = %d, esperava 2", page.Meta.Total)
	}
	if len(page.Data) != 2 {
		t.Errorf("len(Data) = %d, esperava 2", len(page.Data))
	}
}
