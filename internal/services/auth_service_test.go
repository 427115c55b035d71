package services

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/errors"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

const testJWTSecret = "segredo-de-teste"

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserRepo, *entities.User) {
	t.Helper()

	userRepo := &fakeUserRepo{}

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-atual"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	user, err := userRepo.Create(context.Background(), repositories.CreateUserInput{
		Email:              "admin@hcm.local",
		PasswordHash:       string(hash),
		Role:               entities.RoleMaster,
		MustChangePassword: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	service := NewAuthService(userRepo, noopLogger{}, testJWTSecret, 12*time.Hour)
	return service, userRepo, user
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("credenciais válidas emitem um token com as claims do usuário", func(t *testing.T) {
		service, _, user := newTestAuthService(t)

		out, err := service.Login(ctx, "admin@hcm.local", "senha-atual")
		if err != nil {
			t.Fatal(err)
		}

		token, err := jwt.Parse(out.Token, func(token *jwt.Token) (any, error) {
			return []byte(testJWTSecret), nil
		})
		if err != nil || !token.Valid {
			t.Fatalf("token inválido: %v", err)
		}

		claims := token.Claims.(jwt.MapClaims)
		if claims["sub"] != user.ID {
			t.Errorf("sub = %v, esperava %s", claims["sub"], user.ID)
		}
		if claims["role"] != string(entities.RoleMaster) {
			t.Errorf("role = %v", claims["role"])
		}
		if out.User.ID != user.ID {
			t.Error("usuário autenticado divergente")
		}
	})

	t.Run("senha incorreta e usuário inexistente produzem o mesmo erro", func(t *testing.T) {
		service, _, _ := newTestAuthService(t)

		_, err := service.Login(ctx, "admin@hcm.local", "senha-errada")
		if !stderrors.Is(err, errors.ErrInvalidCredentials) {
			t.Fatalf("erro = %v, esperava ErrInvalidCredentials", err)
		}

		_, err = service.Login(ctx, "ninguem@hcm.local", "qualquer")
		if !stderrors.Is(err, errors.ErrInvalidCredentials) {
			t.Fatalf("erro = %v, esperava ErrInvalidCredentials", err)
		}
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("troca bem-sucedida limpa mustChangePassword", func(t *testing.T) {
		service, userRepo, user := newTestAuthService(t)

		if err := service.ChangePassword(ctx, user.ID, "senha-atual", "senha-nova-123"); err != nil {
			t.Fatal(err)
		}

		updated, _ := userRepo.FindByID(ctx, user.ID)
		if updated.MustChangePassword {
			t.Error("mustChangePassword deveria ter sido limpo")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("senha-nova-123")); err != nil {
			t.Error("hash persistido não corresponde à nova senha")
		}
	})

	t.Run("senha atual incorreta é rejeitada", func(t *testing.T) {
		service, _, user := newTestAuthService(t)

		err := service.ChangePassword(ctx, user.ID, "senha-errada", "senha-nova-123")
		if !stderrors.Is(err, errors.ErrWrongCurrentPassword) {
			t.Fatalf("erro = %v, esperava ErrWrongCurrentPassword", err)
		}
	})

	t.Run("nova senha igual à atual é rejeitada", func(t *testing.T) {
		service, _, user := newTestAuthService(t)

		err := service.ChangePassword(ctx, user.ID, "senha-atual", "senha-atual")
		if !stderrors.Is(err, errors.ErrPasswordUnchanged) {
			t.Fatalf("erro = %v, esperava ErrPasswordUnchanged", err)
		}
	})

	t.Run("usuário inexistente é rejeitado", func(t *testing.T) {
		service, _, _ := newTestAuthService(t)

		err := service.ChangePassword(ctx, "inexistente", "a", "b")
		if !stderrors.Is(err, errors.ErrUserNotFound) {
			t.Fatalf("erro = %v, esperava ErrUserNotFound", err)
		}
	})
}
