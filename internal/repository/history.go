package repository

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nurseguard/backend/pkg/model"
)

// History sort fields.
const (
	SortByTimestamp  = "timestamp"
	SortBySeverity   = "severity"
	SortByConfidence = "confidence"
	SortByRoom       = "room"
)

// HistoryQuery filters and orders the alert log. Zero values mean "no
// filter"; an empty SortField sorts by timestamp.
type HistoryQuery struct {
	Severity  model.Severity
	MaxAge    time.Duration
	Search    string
	SortField string
	Ascending bool
}

// HistoryStats summarizes the full log by severity.
type HistoryStats struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// AlertHistory is the append-only in-memory log of every alert generated
// during the session. Appended copies are never retroactively mutated; an
// acknowledgement on a live alert does not touch its archived copy.
type AlertHistory struct {
	mu     sync.RWMutex
	alerts []model.Alert
	logger *zap.Logger
}

// NewAlertHistory creates an empty alert log.
func NewAlertHistory(logger *zap.Logger) *AlertHistory {
	return &AlertHistory{logger: logger}
}

// Append archives a copy of the alert.
func (h *AlertHistory) Append(alert model.Alert) {
	h.mu.Lock()
	h.alerts = append(h.alerts, alert)
	h.mu.Unlock()

	h.logger.Debug("alert archived",
		zap.String("alert_id", alert.ID),
		zap.String("severity", string(alert.SeverityLevel)),
	)
}

// Len returns the number of archived alerts.
func (h *AlertHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.alerts)
}

// All returns a copy of the full log in insertion order.
func (h *AlertHistory) All() []model.Alert {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]model.Alert, len(h.alerts))
	copy(out, h.alerts)
	return out
}

// Query filters, searches and sorts the log. The time filter is evaluated
// relative to now.
func (h *AlertHistory) Query(q HistoryQuery, now time.Time) []model.Alert {
	h.mu.RLock()
	result := make([]model.Alert, 0, len(h.alerts))
	cutoff := int64(0)
	if q.MaxAge > 0 {
		cutoff = now.Add(-q.MaxAge).UnixMilli()
	}
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	for _, a := range h.alerts {
		if q.Severity != "" && a.SeverityLevel != q.Severity {
			continue
		}
		if cutoff > 0 && a.Timestamp <= cutoff {
			continue
		}
		if needle != "" && !matchesSearch(a, needle) {
			continue
		}
		result = append(result, a)
	}
	h.mu.RUnlock()

	sortAlerts(result, q.SortField, q.Ascending)
	return result
}

// Stats counts archived alerts per severity.
func (h *AlertHistory) Stats() HistoryStats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	stats := HistoryStats{Total: len(h.alerts)}
	for _, a := range h.alerts {
		switch a.SeverityLevel {
		case model.SeverityHigh:
			stats.High++
		case model.SeverityMedium:
			stats.Medium++
		case model.SeverityLow:
			stats.Low++
		}
	}
	return stats
}

func matchesSearch(a model.Alert, needle string) bool {
	return strings.Contains(strings.ToLower(a.PatientName), needle) ||
		strings.Contains(strings.ToLower(a.Condition), needle) ||
		strings.Contains(strings.ToLower(a.ID), needle) ||
		strings.Contains(strconv.Itoa(a.RoomNumber), needle) ||
		strings.Contains(strings.ToLower(a.Ward), needle)
}

func sortAlerts(alerts []model.Alert, field string, ascending bool) {
	less := func(a, b model.Alert) bool { return a.Timestamp < b.Timestamp }
	switch field {
	case SortBySeverity:
		less = func(a, b model.Alert) bool { return a.SeverityLevel.Rank() < b.SeverityLevel.Rank() }
	case SortByConfidence:
		less = func(a, b model.Alert) bool { return a.ConfidenceScore < b.ConfidenceScore }
	case SortByRoom:
		less = func(a, b model.Alert) bool { return a.RoomNumber < b.RoomNumber }
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if ascending {
			return less(alerts[i], alerts[j])
		}
		return less(alerts[j], alerts[i])
	})
}
