package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsmatrix/backend/internal/domain/repositories"
	"github.com/skillsmatrix/backend/internal/handlers/dto"
	"github.com/skillsmatrix/backend/internal/services"
)

// CareerPlanHandler lida com requisições HTTP de planos de carreira
type CareerPlanHandler struct {
	careerPlanService *services.CareerPlanService
}

// NewCareerPlanHandler cria um novo CareerPlanHandler
func NewCareerPlanHandler(careerPlanService *services.CareerPlanService) *CareerPlanHandler {
	return &CareerPlanHandler{careerPlanService: careerPlanService}
}

// Create cria um plano de carreira com seus vínculos de módulo
func (h *CareerPlanHandler) Create(c *gin.Context) {
	var req dto.CareerPlanCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse(c, dto.BindingErrors(err)))
		return
	}

	input, err := req.ToCreateInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponse(c, "", "Data limite inválida"))
		return
	}

	plan, err := h.careerPlanService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCareerPlanWithModulesResponse(plan))
}

// Update atualiza parcialmente um plano de carreira
func (h *CareerPlanHandler) Update(c *gin.Context) {
	var req dto.CareerPlanUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse(c, dto.BindingErrors(err)))
		return
	}

	plan, err := h.careerPlanService.Update(c.Request.Context(), c.Param("id"), req.ToUpdateInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCareerPlanWithModulesResponse(plan))
}

// Delete remove um plano de carreira
func (h *CareerPlanHandler) Delete(c *gin.Context) {
	if err := h.careerPlanService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get busca um plano por ID com seus módulos
func (h *CareerPlanHandler) Get(c *gin.Context) {
	plan, err := h.careerPlanService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCareerPlanWithModulesResponse(plan))
}

// List retorna planos, opcionalmente filtrados por colaborador
func (h *CareerPlanHandler) List(c *gin.Context) {
	plans, err := h.careerPlanService.List(c.Request.Context(), repositories.CareerPlanListParams{
		CollaboratorID: c.Query("collaboratorId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCareerPlanWithModulesResponses(plans))
}
