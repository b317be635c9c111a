package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mvaldezl/ferreteria-api/internal/application/service"
	"github.com/mvaldezl/ferreteria-api/internal/presentation/http/dto/response"
)

// ReportHandler handles report-related HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Comparative returns the sales versus purchases summary
func (h *ReportHandler) Comparative(c *gin.Context) {
	report, err := h.reportService.GetComparativeReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Comparative report generated successfully", report)
}
