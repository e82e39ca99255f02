package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nurseguard/backend/internal/service"
)

// PatientsHandler implements the patient roster and rooms endpoints
type PatientsHandler struct {
	monitor *service.MonitoringService
	logger  *zap.Logger
}

// NewPatientsHandler creates a new PatientsHandler
func NewPatientsHandler(monitor *service.MonitoringService, logger *zap.Logger) *PatientsHandler {
	return &PatientsHandler{
		monitor: monitor,
		logger:  logger,
	}
}

// List returns the monitored patient roster
func (h *PatientsHandler) List(c *gin.Context) {
	patients := h.monitor.Patients()
	c.JSON(http.StatusOK, gin.H{
		"patients": patients,
		"count":    len(patients),
	})
}

// Risk returns the current per-patient risk estimates
func (h *PatientsHandler) Risk(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.RiskScores())
}

// Rooms returns per-room state derived from patients and live alerts
func (h *PatientsHandler) Rooms(c *gin.Context) {
	rooms := h.monitor.Rooms()
	c.JSON(http.StatusOK, gin.H{
		"rooms": rooms,
		"count": len(rooms),
	})
}
