package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsmatrix/backend/internal/services"
)

// ReportHandler lida com o relatório de cobertura
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler cria um novo ReportHandler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Coverage retorna o relatório de cobertura do colaborador em JSON ou,
// com format=csv, no CSV consumido pelo frontend
func (h *ReportHandler) Coverage(c *gin.Context) {
	entries, err := h.reportService.Coverage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		c.Header("Content-Disposition", `attachment; filename="coverage.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(services.RenderCoverageCSV(entries)))
		return
	}

	c.JSON(http.StatusOK, entries)
}
