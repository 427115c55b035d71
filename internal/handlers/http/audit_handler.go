package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillsmatrix/backend/internal/handlers/dto"
	"github.com/skillsmatrix/backend/internal/services"
)

// AuditHandler lida com a consulta da trilha de auditoria
type AuditHandler struct {
	auditService *services.AuditService
}

// NewAuditHandler cria um novo AuditHandler
func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List retorna os registros de auditoria mais recentes
func (h *AuditHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	logs, err := h.auditService.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuditLogResponses(logs))
}
