package service

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nurseguard/backend/internal/engine"
	"github.com/nurseguard/backend/internal/metrics"
	"github.com/nurseguard/backend/internal/repository"
	"github.com/nurseguard/backend/pkg/model"
)

// ErrAlertNotFound is returned when an acknowledgement targets an alert that
// is no longer on the live panel.
var ErrAlertNotFound = errors.New("alert not found")

// liveAlertCap bounds the dashboard's live panel; older alerts fall off into
// history only.
const liveAlertCap = 10

// Broadcaster pushes engine events to connected dashboard clients.
type Broadcaster interface {
	BroadcastAlert(alert model.Alert)
	BroadcastCritical(state model.CriticalState)
}

// MonitorOptions tunes the simulation timers. Zero values fall back to the
// engine defaults.
type MonitorOptions struct {
	InitialBatchSize  int
	InitialDelay      time.Duration
	Interval          time.Duration
	CriticalWindow    time.Duration
	CriticalThreshold int
	DisplayTimeout    time.Duration
}

// MonitoringService owns the detection engine and the dashboard-facing views
// derived from it: the live alert panel, the alert history and the per-patient
// risk scores.
type MonitoringService struct {
	generator  *engine.Generator
	controller *engine.Controller
	tracker    *engine.CriticalTracker
	scorer     *engine.RiskScorer
	history    *repository.AlertHistory
	hub        Broadcaster
	logger     *zap.Logger

	mu    sync.RWMutex
	live  []model.Alert
	risks map[string]model.RiskScore
}

// NewMonitoringService wires the engine components together and seeds the
// dashboard with an initial batch of alerts and baseline risk scores.
func NewMonitoringService(
	generator *engine.Generator,
	scorer *engine.RiskScorer,
	clock engine.Clock,
	history *repository.AlertHistory,
	hub Broadcaster,
	logger *zap.Logger,
	opts MonitorOptions,
) *MonitoringService {
	if opts.InitialBatchSize <= 0 {
		opts.InitialBatchSize = 4
	}

	s := &MonitoringService{
		generator: generator,
		scorer:    scorer,
		history:   history,
		hub:       hub,
		logger:    logger,
		risks:     scorer.InitialScores(),
	}
	s.controller = engine.NewController(generator, s.handleAlert, clock, opts.InitialDelay, opts.Interval)
	s.tracker = engine.NewCriticalTracker(clock, opts.CriticalWindow, opts.CriticalThreshold, opts.DisplayTimeout)

	seed := generator.GenerateBatch(opts.InitialBatchSize)
	for _, alert := range seed {
		history.Append(alert)
	}
	s.live = append(s.live, seed...)

	logger.Info("monitoring service initialized",
		zap.Int("seed_alerts", len(seed)),
		zap.Int("patients", len(s.risks)),
	)

	return s
}

// handleAlert is the controller sink. It runs once per engine tick with a
// freshly generated alert.
func (s *MonitoringService) handleAlert(alert model.Alert) {
	s.history.Append(alert)

	s.mu.Lock()
	s.live = append([]model.Alert{alert}, s.live...)
	if len(s.live) > liveAlertCap {
		s.live = s.live[:liveAlertCap]
	}
	s.risks = s.scorer.UpdateFromAlert(s.risks, alert)
	s.mu.Unlock()

	s.tracker.Record()
	state := s.tracker.State()

	metrics.DetectionsTotal.WithLabelValues(string(alert.SeverityLevel)).Inc()
	if state.CriticalMode {
		metrics.CriticalMode.Set(1)
	} else {
		metrics.CriticalMode.Set(0)
	}

	s.logger.Info("alert generated",
		zap.String("alert_id", alert.ID),
		zap.String("patient_id", alert.PatientID),
		zap.String("severity", string(alert.SeverityLevel)),
		zap.Int("confidence", alert.ConfidenceScore),
		zap.Bool("critical_mode", state.CriticalMode),
	)

	s.hub.BroadcastAlert(alert)
	if state.CriticalMode {
		s.hub.BroadcastCritical(state)
	}
}

// Start begins alert generation. Starting an already running engine is a
// no-op.
func (s *MonitoringService) Start() model.EngineStats {
	s.controller.Start()
	metrics.EngineRunning.Set(1)
	s.logger.Info("detection engine started")
	return s.controller.Stats()
}

// Stop halts alert generation. Stopping a stopped engine is a no-op.
func (s *MonitoringService) Stop() model.EngineStats {
	s.controller.Stop()
	metrics.EngineRunning.Set(0)
	s.logger.Info("detection engine stopped")
	return s.controller.Stats()
}

// Status reports the engine lifecycle counters.
func (s *MonitoringService) Status() model.EngineStats {
	return s.controller.Stats()
}

// CriticalState reports the burst-of-alerts banner state.
func (s *MonitoringService) CriticalState() model.CriticalState {
	return s.tracker.State()
}

// DismissCritical clears the banner early. The underlying alert window is
// kept, so an ongoing burst re-triggers on the next alert.
func (s *MonitoringService) DismissCritical() model.CriticalState {
	s.tracker.Dismiss()
	metrics.CriticalMode.Set(0)
	state := s.tracker.State()
	s.hub.BroadcastCritical(state)
	s.logger.Info("critical banner dismissed", zap.Int("window_count", state.WindowCount))
	return state
}

// LiveAlerts returns the newest-first live panel, capped at 10 entries.
func (s *MonitoringService) LiveAlerts() []model.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Alert, len(s.live))
	copy(out, s.live)
	return out
}

// Acknowledge flips the acknowledged flag on a live alert. The archived
// history copy is never touched.
func (s *MonitoringService) Acknowledge(id string) (model.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.live {
		if s.live[i].ID == id {
			s.live[i].Acknowledged = true
			return s.live[i], nil
		}
	}
	return model.Alert{}, ErrAlertNotFound
}

// Patients returns the monitored patient roster.
func (s *MonitoringService) Patients() []model.Patient {
	return engine.Patients()
}

// RiskScores returns the current per-patient risk estimates.
func (s *MonitoringService) RiskScores() map[string]model.RiskScore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]model.RiskScore, len(s.risks))
	for id, score := range s.risks {
		out[id] = score
	}
	return out
}

// QueryHistory filters, searches and sorts the archived alerts.
func (s *MonitoringService) QueryHistory(q repository.HistoryQuery, now time.Time) []model.Alert {
	return s.history.Query(q, now)
}

// HistoryStats summarizes the archive by severity.
func (s *MonitoringService) HistoryStats() repository.HistoryStats {
	return s.history.Stats()
}
