package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/nurseguard/backend/pkg/model"
)

const (
	// alertSequenceStart is the counter value before the first alert; the
	// first generated ID is ALR-01001.
	alertSequenceStart = 1000

	// batchRetryLimit bounds the duplicate-room rejection loop in
	// GenerateBatch. Exceeding it degrades to accepting the duplicate.
	batchRetryLimit = 20

	// batchStaggerMs spaces synthetic history timestamps on initial load.
	batchStaggerMs = 90_000
)

// Generator composes reference data, escalation rules and synthesized vitals
// into immutable alert records. It owns the alert sequence counter, scoped to
// its own lifetime rather than process-global state.
type Generator struct {
	mu     sync.Mutex
	seq    int
	rng    *rand.Rand
	clock  Clock
	vitals *VitalsSynthesizer
}

// NewGenerator creates a Generator over the given RNG and clock.
func NewGenerator(rng *rand.Rand, clock Clock) *Generator {
	return &Generator{
		seq:    alertSequenceStart,
		rng:    rng,
		clock:  clock,
		vitals: NewVitalsSynthesizer(rng),
	}
}

// Generate produces one alert. It always succeeds: the reference tables are
// non-empty by construction and every draw is bounded. The only side effect
// is advancing the sequence counter.
func (g *Generator) Generate() model.Alert {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generateLocked()
}

func (g *Generator) generateLocked() model.Alert {
	// Patient and condition are independent choices; any condition may be
	// attributed to any patient.
	patient := referencePatients[g.rng.Intn(len(referencePatients))]
	tmpl := conditionTemplates[g.rng.Intn(len(conditionTemplates))]

	confidence := tmpl.MinConfidence + g.rng.Intn(tmpl.MaxConfidence-tmpl.MinConfidence+1)
	severity := ResolveSeverity(tmpl.BaseSeverity, confidence, patient.History)
	vitals := g.vitals.Generate(severity)

	g.seq++
	now := g.clock.Now()

	return model.Alert{
		ID:              fmt.Sprintf("ALR-%05d", g.seq),
		RoomNumber:      patient.Room,
		PatientID:       patient.ID,
		PatientName:     patient.Name,
		Ward:            patient.Ward,
		Condition:       tmpl.Condition,
		Category:        tmpl.Category,
		ConfidenceScore: confidence,
		SeverityLevel:   severity,
		Timestamp:       now.UnixMilli(),
		FormattedTime:   now.Format("15:04:05"),
		TriggerDetail:   tmpl.TriggerText,
		Vitals:          vitals,
		Icon:            tmpl.Icon,
		Acknowledged:    false,
	}
}

// GenerateBatch produces count alerts simulating a pre-existing history on
// initial load: duplicate room numbers are rejected with a bounded retry, and
// timestamps are staggered 90 seconds apart, newest first.
func (g *Generator) GenerateBatch(count int) []model.Alert {
	g.mu.Lock()
	defer g.mu.Unlock()

	alerts := make([]model.Alert, 0, count)
	usedRooms := make(map[int]bool)
	now := g.clock.Now()

	for i := 0; i < count; i++ {
		var alert model.Alert
		for attempts := 0; ; attempts++ {
			alert = g.generateLocked()
			if !usedRooms[alert.RoomNumber] || attempts >= batchRetryLimit-1 {
				break
			}
		}
		usedRooms[alert.RoomNumber] = true

		alert.Timestamp = now.UnixMilli() - int64(i)*batchStaggerMs
		alert.FormattedTime = time.UnixMilli(alert.Timestamp).Format("15:04:05")
		alerts = append(alerts, alert)
	}

	return alerts
}
