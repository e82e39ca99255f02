package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nurseguard/backend/internal/service"
)

// HealthHandler implements the health check endpoint
type HealthHandler struct {
	monitor *service.MonitoringService
	pool    *pgxpool.Pool
	logger  *zap.Logger
}

// NewHealthHandler creates a new HealthHandler. pool is nil when accounts
// live in memory.
func NewHealthHandler(monitor *service.MonitoringService, pool *pgxpool.Pool, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		monitor: monitor,
		pool:    pool,
		logger:  logger,
	}
}

// Check reports service health and, when Postgres is configured, database
// connectivity
func (h *HealthHandler) Check(c *gin.Context) {
	accountStore := "memory"
	if h.pool != nil {
		accountStore = "postgres"
		if err := h.pool.Ping(c.Request.Context()); err != nil {
			h.logger.Error("health check failed: database unreachable", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "disconnected",
				"error":    err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"service":       "nurseguard-backend",
		"version":       "1.0.0",
		"accountStore":  accountStore,
		"engineRunning": h.monitor.Status().Running,
	})
}
