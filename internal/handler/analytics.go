package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nurseguard/backend/internal/service"
)

// AnalyticsHandler implements the analytics endpoints
type AnalyticsHandler struct {
	service *service.AnalyticsService
	logger  *zap.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(service *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		logger:  logger,
	}
}

// Summary aggregates the alert archive for the requested period
// (?period=today|week|month, default week)
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	period := c.DefaultQuery("period", service.PeriodWeek)
	c.JSON(http.StatusOK, h.service.Summary(period, time.Now()))
}
