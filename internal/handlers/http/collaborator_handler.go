package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillsmatrix/backend/internal/handlers/dto"
	"github.com/skillsmatrix/backend/internal/services"
)

// CollaboratorHandler lida com requisições HTTP de colaboradores
type CollaboratorHandler struct {
	collaboratorService *services.CollaboratorService
}

// NewCollaboratorHandler cria um novo CollaboratorHandler
func NewCollaboratorHandler(collaboratorService *services.CollaboratorService) *CollaboratorHandler {
	return &CollaboratorHandler{collaboratorService: collaboratorService}
}

// Create cria um colaborador, provisionando o acesso quando solicitado
func (h *CollaboratorHandler) Create(c *gin.Context) {
	var req dto.CollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse(c, dto.BindingErrors(err)))
		return
	}

	input, err := req.ToWriteInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponse(c, "", "Data de admissão inválida"))
		return
	}

	collaborator, access, err := h.collaboratorService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCollaboratorResponse(collaborator, access))
}

// Update atualiza um colaborador
func (h *CollaboratorHandler) Update(c *gin.Context) {
	var req dto.CollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse(c, dto.BindingErrors(err)))
		return
	}

	input, err := req.ToWriteInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponse(c, "", "Data de admissão inválida"))
		return
	}

	collaborator, access, err := h.collaboratorService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCollaboratorResponse(collaborator, access))
}

// Delete remove o colaborador e o usuário vinculado
func (h *CollaboratorHandler) Delete(c *gin.Context) {
	if err := h.collaboratorService.DeleteWithAccess(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get retorna o colaborador com autoavaliações, avaliações e planos
func (h *CollaboratorHandler) Get(c *gin.Context) {
	detail, err := h.collaboratorService.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCollaboratorDetailResponse(detail))
}

// List retorna colaboradores paginados com filtros de nome e atividade
func (h *CollaboratorHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("perPage"))

	result, err := h.collaboratorService.List(c.Request.Context(), services.ListCollaboratorsParams{
		Page:     page,
		PerPage:  perPage,
		Name:     c.Query("name"),
		Activity: c.Query("activity"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CollaboratorListResponse{
		Data: dto.ToCollaboratorResponses(result.Data),
		Meta: result.Meta,
	})
}

// ResetAccess gera novas credenciais temporárias para o colaborador
func (h *CollaboratorHandler) ResetAccess(c *gin.Context) {
	access, err := h.collaboratorService.ResetAccess(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, access)
}
