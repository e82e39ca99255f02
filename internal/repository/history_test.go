package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nurseguard/backend/pkg/model"
)

func seedHistory(t *testing.T) (*AlertHistory, time.Time) {
	t.Helper()
	h := NewAlertHistory(zap.NewNop())
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	alerts := []model.Alert{
		{ID: "ALR-01001", PatientName: "Mike Johnson", Condition: "Respiratory distress detected", Ward: "ICU Ward A", RoomNumber: 203, SeverityLevel: model.SeverityHigh, ConfidenceScore: 94, Timestamp: now.Add(-50 * time.Minute).UnixMilli()},
		{ID: "ALR-01002", PatientName: "Helen Park", Condition: "Elevated stress indicators", Ward: "General Ward B", RoomNumber: 105, SeverityLevel: model.SeverityMedium, ConfidenceScore: 81, Timestamp: now.Add(-20 * time.Minute).UnixMilli()},
		{ID: "ALR-01003", PatientName: "James Carter", Condition: "Abnormal heart rate pattern", Ward: "Cardiac Ward C", RoomNumber: 312, SeverityLevel: model.SeverityHigh, ConfidenceScore: 88, Timestamp: now.Add(-10 * time.Minute).UnixMilli()},
		{ID: "ALR-01004", PatientName: "Robert Kim", Condition: "Abnormal movement pattern detected", Ward: "Neuro Ward D", RoomNumber: 301, SeverityLevel: model.SeverityLow, ConfidenceScore: 72, Timestamp: now.Add(-2 * time.Minute).UnixMilli()},
	}
	for _, a := range alerts {
		h.Append(a)
	}
	return h, now
}

func TestHistory_AppendAndStats(t *testing.T) {
	h, _ := seedHistory(t)

	assert.Equal(t, 4, h.Len())
	stats := h.Stats()
	assert.Equal(t, HistoryStats{Total: 4, High: 2, Medium: 1, Low: 1}, stats)
}

func TestHistory_QueryDefaultsToNewestFirst(t *testing.T) {
	h, now := seedHistory(t)

	result := h.Query(HistoryQuery{}, now)
	require.Len(t, result, 4)
	assert.Equal(t, "ALR-01004", result[0].ID)
	assert.Equal(t, "ALR-01001", result[3].ID)
}

func TestHistory_QuerySeverityFilter(t *testing.T) {
	h, now := seedHistory(t)

	result := h.Query(HistoryQuery{Severity: model.SeverityHigh}, now)
	require.Len(t, result, 2)
	for _, a := range result {
		assert.Equal(t, model.SeverityHigh, a.SeverityLevel)
	}
}

func TestHistory_QueryTimeFilter(t *testing.T) {
	h, now := seedHistory(t)

	result := h.Query(HistoryQuery{MaxAge: 15 * time.Minute}, now)
	require.Len(t, result, 2)
	assert.Equal(t, "ALR-01004", result[0].ID)
	assert.Equal(t, "ALR-01003", result[1].ID)
}

func TestHistory_QuerySearchMatchesAcrossFields(t *testing.T) {
	h, now := seedHistory(t)

	byName := h.Query(HistoryQuery{Search: "helen"}, now)
	require.Len(t, byName, 1)
	assert.Equal(t, "ALR-01002", byName[0].ID)

	byWard := h.Query(HistoryQuery{Search: "cardiac"}, now)
	require.Len(t, byWard, 1)
	assert.Equal(t, "ALR-01003", byWard[0].ID)

	byRoom := h.Query(HistoryQuery{Search: "301"}, now)
	require.Len(t, byRoom, 1)
	assert.Equal(t, "ALR-01004", byRoom[0].ID)
}

func TestHistory_QuerySortVariants(t *testing.T) {
	h, now := seedHistory(t)

	bySeverity := h.Query(HistoryQuery{SortField: SortBySeverity}, now)
	assert.Equal(t, model.SeverityHigh, bySeverity[0].SeverityLevel)
	assert.Equal(t, model.SeverityLow, bySeverity[3].SeverityLevel)

	byConfidenceAsc := h.Query(HistoryQuery{SortField: SortByConfidence, Ascending: true}, now)
	assert.Equal(t, 72, byConfidenceAsc[0].ConfidenceScore)
	assert.Equal(t, 94, byConfidenceAsc[3].ConfidenceScore)

	byRoom := h.Query(HistoryQuery{SortField: SortByRoom, Ascending: true}, now)
	assert.Equal(t, 105, byRoom[0].RoomNumber)
	assert.Equal(t, 312, byRoom[3].RoomNumber)
}

func TestHistory_ArchivedCopiesAreNotMutatedByCaller(t *testing.T) {
	h, now := seedHistory(t)

	result := h.Query(HistoryQuery{}, now)
	result[0].Acknowledged = true

	again := h.Query(HistoryQuery{}, now)
	assert.False(t, again[0].Acknowledged)
}
