// Package metrics exposes Prometheus instrumentation for the monitoring engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DetectionsTotal counts generated alerts by severity level.
	DetectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nurseguard",
		Name:      "detections_total",
		Help:      "Total number of alerts produced by the detection engine.",
	}, []string{"severity"})

	// CriticalMode is 1 while the critical-alert banner is active and 0 otherwise.
	CriticalMode = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "nurseguard",
		Name:      "critical_mode",
		Help:      "Whether the critical-alert escalation banner is currently active.",
	})

	// EngineRunning is 1 while the detection engine is started.
	EngineRunning = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "nurseguard",
		Name:      "engine_running",
		Help:      "Whether the detection engine is currently generating alerts.",
	})

	// WebSocketClients tracks connected alert-stream subscribers.
	WebSocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "nurseguard",
		Name:      "websocket_clients",
		Help:      "Number of connected websocket alert-stream clients.",
	})
)
