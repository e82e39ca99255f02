package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nurseguard/backend/internal/repository"
	"github.com/nurseguard/backend/internal/service"
	"github.com/nurseguard/backend/pkg/model"
)

// ReportHandler implements the PDF report endpoints
type ReportHandler struct {
	service *service.ReportService
	logger  *zap.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger,
	}
}

// Alerts renders the archived alerts matching the query as a downloadable
// PDF. Accepts the same severity and range params as the history endpoint.
func (h *ReportHandler) Alerts(c *gin.Context) {
	q := repository.HistoryQuery{}

	if severity := c.Query("severity"); severity != "" && severity != "all" {
		s := model.Severity(severity)
		if s.Rank() == 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    codeValidationError,
				Message: "Unknown severity filter",
				Details: stringPtr(severity),
			})
			return
		}
		q.Severity = s
	}

	if rng := c.Query("range"); rng != "" && rng != "all" {
		maxAge, ok := historyRanges[rng]
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    codeValidationError,
				Message: "Unknown time range filter",
				Details: stringPtr(rng),
			})
			return
		}
		q.MaxAge = maxAge
	}

	pdfBytes, err := h.service.AlertReport(q, time.Now())
	if err != nil {
		h.logger.Error("failed to generate alert report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    codeInternalError,
			Message: "Failed to generate report",
		})
		return
	}

	filename := fmt.Sprintf("alert-report-%s.pdf", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
