package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillsmatrix/backend/internal/domain/repositories"
	"github.com/skillsmatrix/backend/internal/handlers/dto"
	"github.com/skillsmatrix/backend/internal/services"
)

// ModuleHandler lida com requisições HTTP de módulos/rotinas
type ModuleHandler struct {
	moduleService *services.ModuleService
}

// NewModuleHandler cria um novo ModuleHandler
func NewModuleHandler(moduleService *services.ModuleService) *ModuleHandler {
	return &ModuleHandler{moduleService: moduleService}
}

// Create cria um módulo
func (h *ModuleHandler) Create(c *gin.Context) {
	var req dto.ModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse(c, dto.BindingErrors(err)))
		return
	}

	module, err := h.moduleService.Create(c.Request.Context(), repositories.ModuleInput{
		Code:        req.Code,
		Description: req.Description,
		Observation: req.Observation,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToModuleResponse(module))
}

// Update atualiza um módulo
func (h *ModuleHandler) Update(c *gin.Context) {
	var req dto.ModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse(c, dto.BindingErrors(err)))
		return
	}

	module, err := h.moduleService.Update(c.Request.Context(), c.Param("id"), repositories.ModuleInput{
		Code:        req.Code,
		Description: req.Description,
		Observation: req.Observation,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModuleResponse(module))
}

// Delete remove um módulo
func (h *ModuleHandler) Delete(c *gin.Context) {
	if err := h.moduleService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get busca um módulo por ID
func (h *ModuleHandler) Get(c *gin.Context) {
	module, err := h.moduleService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToModuleResponse(module))
}

// List retorna módulos paginados. code aceita uma lista separada por
// vírgula para busca exata; codeContains e description filtram por
// substring.
func (h *ModuleHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("perPage"))

	params := repositories.ModuleListParams{
		Page:         page,
		PerPage:      perPage,
		CodeContains: c.Query("codeContains"),
		Description:  c.Query("description"),
	}

	if codes := strings.TrimSpace(c.Query("code")); codes != "" {
		params.CodeExact = strings.Split(codes, ",")
	}

	result, err := h.moduleService.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ModuleListResponse{
		Data: dto.ToModuleResponses(result.Data),
		Meta: result.Meta,
	})
}
