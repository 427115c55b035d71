package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
	"github.com/skillsmatrix/backend/internal/handlers/dto"
	"github.com/skillsmatrix/backend/internal/handlers/middleware"
	"github.com/skillsmatrix/backend/internal/services"
)

// SkillClaimHandler lida com requisições HTTP de autoavaliações.
// O perfil COLABORADOR opera apenas sobre o próprio perfil; o MASTER
// pode operar sobre qualquer colaborador.
type SkillClaimHandler struct {
	skillClaimService   *services.SkillClaimService
	collaboratorService *services.CollaboratorService
}

// NewSkillClaimHandler cria um novo SkillClaimHandler
func NewSkillClaimHandler(skillClaimService *services.SkillClaimService, collaboratorService *services.CollaboratorService) *SkillClaimHandler {
	return &SkillClaimHandler{
		skillClaimService:   skillClaimService,
		collaboratorService: collaboratorService,
	}
}

// resolveCollaboratorID decide sobre qual colaborador a operação age:
// o próprio perfil para COLABORADOR, o informado para MASTER
func (h *SkillClaimHandler) resolveCollaboratorID(c *gin.Context, requested string) (string, bool) {
	if entities.Role(c.GetString(middleware.ContextUserRole)) == entities.RoleMaster {
		if requested == "" {
			c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse(c, []dto.ValidationError{
				{Field: "collaboratorId", Message: "obrigatório para o perfil MASTER", Tag: "required"},
			}))
			return "", false
		}
		return requested, true
	}

	profile, err := h.collaboratorService.RequireProfileByUserID(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, err)
		return "", false
	}
	return profile.ID, true
}

// Upsert grava a autoavaliação do par (colaborador, módulo)
func (h *SkillClaimHandler) Upsert(c *gin.Context) {
	var req dto.SkillClaimUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse(c, dto.BindingErrors(err)))
		return
	}

	collaboratorID, ok := h.resolveCollaboratorID(c, req.CollaboratorID)
	if !ok {
		return
	}

	claim, err := h.skillClaimService.Upsert(c.Request.Context(), repositories.SkillClaimInput{
		CollaboratorID: collaboratorID,
		ModuleID:       req.ModuleID,
		CurrentLevel:   entities.SkillLevel(req.CurrentLevel),
		Evidence:       req.Evidence,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSkillClaimWithModuleResponse(claim))
}

// Update atualiza parcialmente uma autoavaliação. O COLABORADOR só
// pode atualizar as próprias.
func (h *SkillClaimHandler) Update(c *gin.Context) {
	var req dto.SkillClaimUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse(c, dto.BindingErrors(err)))
		return
	}

	id := c.Param("id")

	existing, err := h.skillClaimService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if entities.Role(c.GetString(middleware.ContextUserRole)) != entities.RoleMaster {
		profile, err := h.collaboratorService.RequireProfileByUserID(c.Request.Context(), c.GetString(middleware.ContextUserID))
		if err != nil {
			respondError(c, err)
			return
		}
		if existing.CollaboratorID != profile.ID {
			c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponse(c))
			return
		}
	}

	claim, err := h.skillClaimService.Update(c.Request.Context(), id, req.ToUpdateInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSkillClaimWithModuleResponse(claim))
}

// List retorna autoavaliações com seus módulos
func (h *SkillClaimHandler) List(c *gin.Context) {
	collaboratorID := c.Query("collaboratorId")

	if entities.Role(c.GetString(middleware.ContextUserRole)) != entities.RoleMaster {
		profile, err := h.collaboratorService.RequireProfileByUserID(c.Request.Context(), c.GetString(middleware.ContextUserID))
		if err != nil {
			respondError(c, err)
			return
		}
		collaboratorID = profile.ID
	}

	claims, err := h.skillClaimService.List(c.Request.Context(), repositories.SkillClaimListParams{
		CollaboratorID: collaboratorID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSkillClaimWithModuleResponses(claims))
}
