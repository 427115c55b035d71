package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/errors"
	"github.com/skillsmatrix/backend/internal/domain/ports"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

// AuthService contém a lógica de autenticação e troca de senha
type AuthService struct {
	userRepo  repositories.UserRepository
	logger    ports.Logger
	jwtSecret []byte
	expiresIn time.Duration
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	logger ports.Logger,
	jwtSecret string,
	expiresIn time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		logger:    logger,
		jwtSecret: []byte(jwtSecret),
		expiresIn: expiresIn,
	}
}

// LoginOutput é o resultado de uma autenticação bem-sucedida
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entities.User
}

// Login autentica o usuário por email e senha e emite um token JWT.
// Credenciais inválidas e usuário inexistente produzem o mesmo erro.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginOutput, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login failed", "email", user.Email.String())
		return nil, errors.ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(s.expiresIn)

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email.String(),
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "userId", user.ID, "role", string(user.Role))

	return &LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// ChangePassword troca a senha do usuário após validar a senha atual.
// Uma troca bem-sucedida limpa o flag mustChangePassword.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return errors.ErrWrongCurrentPassword
	}

	if newPassword == currentPassword {
		return errors.ErrPasswordUnchanged
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	hashText := string(hash)
	mustChange := false
	_, err = s.userRepo.Update(ctx, user.ID, repositories.UpdateUserInput{
		PasswordHash:       &hashText,
		MustChangePassword: &mustChange,
	})
	if err != nil {
		return err
	}

	s.logger.Info("password changed", "userId", user.ID)
	return nil
}
