package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/nurseguard/backend/internal/repository"
	"github.com/nurseguard/backend/pkg/model"
)

func analyticsFixture(now time.Time) *AnalyticsService {
	history := repository.NewAlertHistory(zap.NewNop())
	alerts := []model.Alert{
		{ID: "ALR-01001", Ward: "ICU", Category: model.CategoryCardiac, SeverityLevel: model.SeverityHigh, ConfidenceScore: 90, Timestamp: now.Add(-1 * time.Hour).UnixMilli()},
		{ID: "ALR-01002", Ward: "ICU", Category: model.CategoryRespiratory, SeverityLevel: model.SeverityMedium, ConfidenceScore: 80, Timestamp: now.Add(-2 * time.Hour).UnixMilli()},
		{ID: "ALR-01003", Ward: "General", Category: model.CategoryMotion, SeverityLevel: model.SeverityLow, ConfidenceScore: 70, Timestamp: now.AddDate(0, 0, -3).UnixMilli()},
		{ID: "ALR-01004", Ward: "Recovery", Category: model.CategoryCardiac, SeverityLevel: model.SeverityHigh, ConfidenceScore: 95, Timestamp: now.AddDate(0, 0, -20).UnixMilli()},
	}
	for _, a := range alerts {
		history.Append(a)
	}
	return NewAnalyticsService(history, zap.NewNop())
}

func TestAnalytics_TodayCountsOnlySameDay(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	summary := analyticsFixture(now).Summary(PeriodToday, now)

	assert.Equal(t, 2, summary.TotalAlerts)
	assert.Equal(t, 85.0, summary.AverageConfidence)
	assert.Equal(t, map[string]int{"high": 1, "medium": 1}, summary.SeverityDistribution)
	assert.Equal(t, 2, summary.WardCounts["ICU"])
	assert.Equal(t, 1, summary.HourlyBuckets[11])
	assert.Equal(t, 1, summary.HourlyBuckets[10])
}

func TestAnalytics_WeekAndMonthWindows(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	svc := analyticsFixture(now)

	week := svc.Summary(PeriodWeek, now)
	assert.Equal(t, 3, week.TotalAlerts)
	assert.Equal(t, 80.0, week.AverageConfidence)

	month := svc.Summary(PeriodMonth, now)
	assert.Equal(t, 4, month.TotalAlerts)
	assert.Equal(t, 2, month.SeverityDistribution["high"])
	assert.Equal(t, 2, month.CategoryDistribution["cardiac"])
}

func TestAnalytics_UnknownPeriodDefaultsToWeek(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	summary := analyticsFixture(now).Summary("quarter", now)

	assert.Equal(t, PeriodWeek, summary.Period)
	assert.Equal(t, 3, summary.TotalAlerts)
}

func TestAnalytics_EmptyHistory(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	svc := NewAnalyticsService(repository.NewAlertHistory(zap.NewNop()), zap.NewNop())

	summary := svc.Summary(PeriodWeek, now)
	assert.Zero(t, summary.TotalAlerts)
	assert.Zero(t, summary.AverageConfidence)
	assert.Empty(t, summary.SeverityDistribution)
}
