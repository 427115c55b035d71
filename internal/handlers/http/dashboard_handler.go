package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsmatrix/backend/internal/services"
)

// DashboardHandler lida com as consultas agregadas do painel
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler cria um novo DashboardHandler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// KPIs retorna os contadores gerais e a lacuna média
func (h *DashboardHandler) KPIs(c *gin.Context) {
	kpis, err := h.dashboardService.KPIs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, kpis)
}

// Trends retorna a distribuição de níveis e as lacunas por módulo
func (h *DashboardHandler) Trends(c *gin.Context) {
	trends, err := h.dashboardService.Trends(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}
