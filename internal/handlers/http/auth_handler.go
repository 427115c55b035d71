package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsmatrix/backend/internal/domain/errors"
	"github.com/skillsmatrix/backend/internal/handlers/dto"
	"github.com/skillsmatrix/backend/internal/handlers/middleware"
	"github.com/skillsmatrix/backend/internal/services"
)

// AuthHandler lida com autenticação e identidade do usuário
type AuthHandler struct {
	authService         *services.AuthService
	collaboratorService *services.CollaboratorService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, collaboratorService *services.CollaboratorService) *AuthHandler {
	return &AuthHandler{
		authService:         authService,
		collaboratorService: collaboratorService,
	}
}

// Login autentica por email e senha e emite o token JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse(c, dto.BindingErrors(err)))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      dto.ToUserResponse(result.User),
	})
}

// ChangePassword troca a senha do usuário autenticado
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse(c, dto.BindingErrors(err)))
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	if err := h.authService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Me retorna a identidade do usuário autenticado e, quando existir, o
// perfil de colaborador vinculado
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	response := gin.H{
		"id":    userID,
		"email": c.GetString(middleware.ContextUserEmail),
		"role":  c.GetString(middleware.ContextUserRole),
	}

	profile, err := h.collaboratorService.RequireProfileByUserID(c.Request.Context(), userID)
	if err != nil && !errs.Is(err, errors.ErrCollaboratorNotFound) {
		respondError(c, err)
		return
	}
	if profile != nil {
		response["collaboratorId"] = profile.ID
		response["fullName"] = profile.FullName
	}

	c.JSON(http.StatusOK, response)
}
