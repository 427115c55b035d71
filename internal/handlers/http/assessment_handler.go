package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
	"github.com/skillsmatrix/backend/internal/handlers/dto"
	"github.com/skillsmatrix/backend/internal/services"
)

// AssessmentHandler lida com requisições HTTP de avaliações do gestor
type AssessmentHandler struct {
	assessmentService *services.AssessmentService
}

// NewAssessmentHandler cria um novo AssessmentHandler
func NewAssessmentHandler(assessmentService *services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

// Upsert grava a avaliação do par (colaborador, módulo)
func (h *AssessmentHandler) Upsert(c *gin.Context) {
	var req dto.AssessmentUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse(c, dto.BindingErrors(err)))
		return
	}

	assessment, err := h.assessmentService.Upsert(c.Request.Context(), repositories.AssessmentInput{
		CollaboratorID: req.CollaboratorID,
		ModuleID:       req.ModuleID,
		TargetLevel:    entities.SkillLevel(req.TargetLevel),
		Comment:        req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssessmentWithModuleResponse(assessment))
}

// List retorna avaliações com seus módulos, opcionalmente filtradas
// por colaborador
func (h *AssessmentHandler) List(c *gin.Context) {
	assessments, err := h.assessmentService.List(c.Request.Context(), repositories.AssessmentListParams{
		CollaboratorID: c.Query("collaboratorId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssessmentWithModuleResponses(assessments))
}
