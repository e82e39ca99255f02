package service

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/nurseguard/backend/internal/repository"
)

// Analytics periods.
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// AnalyticsSummary aggregates the alert archive for the analytics page.
type AnalyticsSummary struct {
	Period               string         `json:"period"`
	TotalAlerts          int            `json:"totalAlerts"`
	AverageConfidence    float64        `json:"averageConfidence"`
	SeverityDistribution map[string]int `json:"severityDistribution"`
	CategoryDistribution map[string]int `json:"categoryDistribution"`
	WardCounts           map[string]int `json:"wardCounts"`
	HourlyBuckets        []int          `json:"hourlyBuckets"`
}

// AnalyticsService derives aggregate views from the alert history.
type AnalyticsService struct {
	history *repository.AlertHistory
	logger  *zap.Logger
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(history *repository.AlertHistory, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		history: history,
		logger:  logger,
	}
}

// Summary aggregates all archived alerts inside the period ending at now.
// Unknown periods default to a week.
func (s *AnalyticsService) Summary(period string, now time.Time) AnalyticsSummary {
	var cutoff time.Time
	switch period {
	case PeriodToday:
		cutoff = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodMonth:
		cutoff = now.AddDate(0, 0, -30)
	case PeriodWeek:
		cutoff = now.AddDate(0, 0, -7)
	default:
		s.logger.Warn("unknown analytics period, defaulting to week", zap.String("period", period))
		period = PeriodWeek
		cutoff = now.AddDate(0, 0, -7)
	}

	summary := AnalyticsSummary{
		Period:               period,
		SeverityDistribution: make(map[string]int),
		CategoryDistribution: make(map[string]int),
		WardCounts:           make(map[string]int),
		HourlyBuckets:        make([]int, 24),
	}

	confidenceSum := 0
	for _, alert := range s.history.All() {
		at := time.UnixMilli(alert.Timestamp).In(now.Location())
		if at.Before(cutoff) {
			continue
		}
		summary.TotalAlerts++
		confidenceSum += alert.ConfidenceScore
		summary.SeverityDistribution[string(alert.SeverityLevel)]++
		summary.CategoryDistribution[string(alert.Category)]++
		summary.WardCounts[alert.Ward]++
		summary.HourlyBuckets[at.Hour()]++
	}

	if summary.TotalAlerts > 0 {
		avg := float64(confidenceSum) / float64(summary.TotalAlerts)
		summary.AverageConfidence = math.Round(avg*10) / 10
	}

	s.logger.Info("analytics summary computed",
		zap.String("period", period),
		zap.Int("total_alerts", summary.TotalAlerts),
	)

	return summary
}
