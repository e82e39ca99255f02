package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nurseguard/backend/internal/service"
)

// EngineHandler implements the detection engine lifecycle endpoints
type EngineHandler struct {
	monitor *service.MonitoringService
	logger  *zap.Logger
}

// NewEngineHandler creates a new EngineHandler
func NewEngineHandler(monitor *service.MonitoringService, logger *zap.Logger) *EngineHandler {
	return &EngineHandler{
		monitor: monitor,
		logger:  logger,
	}
}

// Start begins alert generation
func (h *EngineHandler) Start(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.Start())
}

// Stop halts alert generation
func (h *EngineHandler) Stop(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.Stop())
}

// Status reports the engine lifecycle counters
func (h *EngineHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.Status())
}

// Critical reports the burst-of-alerts banner state
func (h *EngineHandler) Critical(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.CriticalState())
}

// DismissCritical clears the banner early
func (h *EngineHandler) DismissCritical(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.DismissCritical())
}
