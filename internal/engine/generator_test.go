package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurseguard/backend/pkg/model"
)

func newTestGenerator(seed int64) (*Generator, *fakeClock) {
	clock := newFakeClock()
	return NewGenerator(rand.New(rand.NewSource(seed)), clock), clock
}

func templatesByCondition() map[string]model.ConditionTemplate {
	byName := make(map[string]model.ConditionTemplate)
	for _, t := range ConditionTemplates() {
		byName[t.Condition] = t
	}
	return byName
}

func patientsByID() map[string]model.Patient {
	byID := make(map[string]model.Patient)
	for _, p := range Patients() {
		byID[p.ID] = p
	}
	return byID
}

func TestGenerate_IDFormatAndSequence(t *testing.T) {
	gen, _ := newTestGenerator(1)

	first := gen.Generate()
	assert.Equal(t, "ALR-01001", first.ID)

	second := gen.Generate()
	assert.Equal(t, "ALR-01002", second.ID)

	for i := 3; i <= 20; i++ {
		alert := gen.Generate()
		assert.Equal(t, fmt.Sprintf("ALR-%05d", 1000+i), alert.ID)
	}
}

func TestGenerate_FieldsDenormalizedFromReferences(t *testing.T) {
	gen, clock := newTestGenerator(7)
	templates := templatesByCondition()
	patients := patientsByID()

	for i := 0; i < 100; i++ {
		alert := gen.Generate()

		patient, ok := patients[alert.PatientID]
		require.True(t, ok, "unknown patient id %s", alert.PatientID)
		assert.Equal(t, patient.Name, alert.PatientName)
		assert.Equal(t, patient.Room, alert.RoomNumber)
		assert.Equal(t, patient.Ward, alert.Ward)

		tmpl, ok := templates[alert.Condition]
		require.True(t, ok, "unknown condition %q", alert.Condition)
		assert.Equal(t, tmpl.Category, alert.Category)
		assert.Equal(t, tmpl.TriggerText, alert.TriggerDetail)
		assert.Equal(t, tmpl.Icon, alert.Icon)

		assert.GreaterOrEqual(t, alert.ConfidenceScore, tmpl.MinConfidence)
		assert.LessOrEqual(t, alert.ConfidenceScore, tmpl.MaxConfidence)
		assert.GreaterOrEqual(t, alert.SeverityLevel.Rank(), tmpl.BaseSeverity.Rank())

		assert.Equal(t, clock.Now().UnixMilli(), alert.Timestamp)
		assert.Equal(t, "09:30:00", alert.FormattedTime)
		assert.False(t, alert.Acknowledged)
	}
}

func TestGenerateBatch_CountAndStaggeredTimestamps(t *testing.T) {
	gen, clock := newTestGenerator(42)

	batch := gen.GenerateBatch(4)
	require.Len(t, batch, 4)

	now := clock.Now().UnixMilli()
	for i, alert := range batch {
		assert.Equal(t, now-int64(i)*90_000, alert.Timestamp)
	}
	for i := 1; i < len(batch); i++ {
		assert.Equal(t, int64(90_000), batch[i-1].Timestamp-batch[i].Timestamp)
	}
}

func TestGenerateBatch_AvoidsDuplicateRooms(t *testing.T) {
	gen, _ := newTestGenerator(42)

	batch := gen.GenerateBatch(6)
	rooms := make(map[int]bool)
	for _, alert := range batch {
		assert.False(t, rooms[alert.RoomNumber], "room %d repeated", alert.RoomNumber)
		rooms[alert.RoomNumber] = true
	}
}

func TestGenerateBatch_MoreRequestedThanRoomsDegradesGracefully(t *testing.T) {
	gen, _ := newTestGenerator(3)

	// Only 12 distinct rooms exist; the retry loop must give up rather than
	// spin forever.
	batch := gen.GenerateBatch(15)
	assert.Len(t, batch, 15)
}

func TestPatients_ReturnsCopies(t *testing.T) {
	a := Patients()
	a[0].Name = "changed"
	a[0].History[0] = "changed"

	b := Patients()
	assert.Equal(t, "Mike Johnson", b[0].Name)
	assert.Equal(t, "COPD", b[0].History[0])
}
