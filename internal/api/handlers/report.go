package handlers

import (
	"net/http"

	"org-simulator/internal/logger"
	"org-simulator/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the inspection report of the generated store
type ReportHandler struct {
	service service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{service: reportService}
}

// ReportResponse is the report plus its integrity verdict
type ReportResponse struct {
	*service.Report
	Healthy bool `json:"healthy"`
}

// GetReport handles GET /api/v1/report
// @Summary Inspection report
// @Description Volume counts, largest teams, sample team leads, integrity checks and completion rates
// @Tags report
// @Produce json
// @Success 200 {object} ReportResponse "Report built"
// @Failure 500 {object} ErrorResponse "A summary query failed"
// @Router /api/v1/report [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.service.GetReport()
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to build report")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ReportResponse{Report: report, Healthy: report.Healthy()})
}
