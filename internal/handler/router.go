package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles every endpoint group for route registration
type Handlers struct {
	Auth      *AuthHandler
	Engine    *EngineHandler
	Alerts    *AlertsHandler
	Patients  *PatientsHandler
	Analytics *AnalyticsHandler
	Report    *ReportHandler
	WS        *WSHandler
	Health    *HealthHandler
}

// RegisterRoutes wires the full API surface onto the router
func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", h.Health.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/signup", h.Auth.Signup)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/logout", h.Auth.Logout)

	engine := v1.Group("/engine")
	engine.POST("/start", h.Engine.Start)
	engine.POST("/stop", h.Engine.Stop)
	engine.GET("/status", h.Engine.Status)
	engine.GET("/critical", h.Engine.Critical)
	engine.POST("/critical/dismiss", h.Engine.DismissCritical)

	alerts := v1.Group("/alerts")
	alerts.GET("", h.Alerts.Live)
	alerts.POST("/:id/ack", h.Alerts.Acknowledge)
	alerts.GET("/history", h.Alerts.History)
	alerts.GET("/history/stats", h.Alerts.HistoryStats)

	patients := v1.Group("/patients")
	patients.GET("", h.Patients.List)
	patients.GET("/risk", h.Patients.Risk)

	v1.GET("/rooms", h.Patients.Rooms)
	v1.GET("/analytics/summary", h.Analytics.Summary)
	v1.GET("/reports/alerts", h.Report.Alerts)
	v1.GET("/ws", h.WS.Stream)
}
