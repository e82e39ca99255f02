package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nurseguard/backend/internal/repository"
	"github.com/nurseguard/backend/internal/service"
	"github.com/nurseguard/backend/pkg/model"
)

// AlertsHandler implements the live panel and history endpoints
type AlertsHandler struct {
	monitor *service.MonitoringService
	logger  *zap.Logger
}

// NewAlertsHandler creates a new AlertsHandler
func NewAlertsHandler(monitor *service.MonitoringService, logger *zap.Logger) *AlertsHandler {
	return &AlertsHandler{
		monitor: monitor,
		logger:  logger,
	}
}

// Live returns the newest-first live alert panel
func (h *AlertsHandler) Live(c *gin.Context) {
	alerts := h.monitor.LiveAlerts()
	c.JSON(http.StatusOK, gin.H{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

// Acknowledge flips the acknowledged flag on a live alert
func (h *AlertsHandler) Acknowledge(c *gin.Context) {
	id := c.Param("id")

	alert, err := h.monitor.Acknowledge(id)
	if err != nil {
		if errors.Is(err, service.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    codeNotFound,
				Message: "Alert not found on the live panel",
			})
			return
		}
		h.logger.Error("failed to acknowledge alert", zap.Error(err), zap.String("alert_id", id))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    codeInternalError,
			Message: "Failed to acknowledge alert",
		})
		return
	}

	c.JSON(http.StatusOK, alert)
}

// historyRanges maps the dashboard's time filter values to durations.
var historyRanges = map[string]time.Duration{
	"5m":  5 * time.Minute,
	"15m": 15 * time.Minute,
	"30m": 30 * time.Minute,
	"1h":  time.Hour,
}

// History filters, searches and sorts the archived alerts.
// Query params: severity, range (5m/15m/30m/1h/all), q, sort
// (timestamp/severity/confidence/room), dir (asc/desc).
func (h *AlertsHandler) History(c *gin.Context) {
	q := repository.HistoryQuery{
		Search:    c.Query("q"),
		SortField: c.DefaultQuery("sort", repository.SortByTimestamp),
		Ascending: c.Query("dir") == "asc",
	}

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

	alerts := h.monitor.QueryHistory(q, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

// HistoryStats summarizes the archive by severity
func (h *AlertsHandler) HistoryStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.HistoryStats())
}
