package model

import "time"

// Severity is the ordinal alert classification driving escalation rules and
// vitals generation ranges.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank returns the ordinal position of a severity (low < medium < high).
// Unknown values rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	default:
		return 0
	}
}

// Category classifies what kind of detector produced an alert.
type Category string

const (
	CategoryRespiratory Category = "respiratory"
	CategoryCardiac     Category = "cardiac"
	CategoryMotion      Category = "motion"
	CategoryAudio       Category = "audio"
	CategoryStress      Category = "stress"
	CategoryVitals      Category = "vitals"
)

// Patient is immutable reference data; never mutated at runtime.
type Patient struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Age     int      `json:"age"`
	Room    int      `json:"room"`
	Ward    string   `json:"ward"`
	History []string `json:"history"`
}

// ConditionTemplate describes one detectable condition: its category, severity
// baseline and the inclusive confidence range alerts are sampled from.
type ConditionTemplate struct {
	Condition     string   `json:"condition"`
	Category      Category `json:"category"`
	BaseSeverity  Severity `json:"baseSeverity"`
	MinConfidence int      `json:"minConfidence"`
	MaxConfidence int      `json:"maxConfidence"`
	Icon          string   `json:"icon"`
	TriggerText   string   `json:"triggerText"`
}

// VitalsSnapshot is generated fresh per alert and never mutated.
type VitalsSnapshot struct {
	HeartRate       int     `json:"heartRate"`
	SpO2            int     `json:"spO2"`
	Temperature     float64 `json:"temperature"`
	BloodPressure   string  `json:"bloodPressure"`
	RespiratoryRate int     `json:"respiratoryRate"`
}

// Alert is one simulated detection event. Patient fields are denormalized at
// creation time and never re-synced; Acknowledged is the only field mutated
// after creation, and only on the live copy.
type Alert struct {
	ID              string         `json:"id"`
	RoomNumber      int            `json:"roomNumber"`
	PatientID       string         `json:"patientId"`
	PatientName     string         `json:"patientName"`
	Ward            string         `json:"ward"`
	Condition       string         `json:"condition"`
	Category        Category       `json:"category"`
	ConfidenceScore int            `json:"confidenceScore"`
	SeverityLevel   Severity       `json:"severityLevel"`
	Timestamp       int64          `json:"timestamp"`
	FormattedTime   string         `json:"formattedTime"`
	TriggerDetail   string         `json:"triggerDetail"`
	Vitals          VitalsSnapshot `json:"vitals"`
	Icon            string         `json:"icon"`
	Acknowledged    bool           `json:"acknowledged"`
}

// Risk label thresholds.
const (
	RiskLabelHighThreshold   = 70
	RiskLabelMediumThreshold = 40
)

// RiskLabel derives the display label for a risk score.
func RiskLabel(score int) string {
	switch {
	case score >= RiskLabelHighThreshold:
		return "HIGH"
	case score >= RiskLabelMediumThreshold:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// Risk trend glyphs.
const (
	TrendUp     = "↑"
	TrendDown   = "↓"
	TrendSteady = "→"
)

// RiskScore is a per-patient clinical risk estimate, seeded from history and
// age and bumped by incoming alerts.
type RiskScore struct {
	Score      int    `json:"score"`
	Label      string `json:"label"`
	Trend      string `json:"trend"`
	LastUpdate int64  `json:"lastUpdate"`
}

// EngineStats reports the detection engine lifecycle counters.
type EngineStats struct {
	TotalDetections int   `json:"totalDetections"`
	Running         bool  `json:"running"`
	UptimeSeconds   int64 `json:"uptimeSeconds"`
	IntervalMs      int64 `json:"intervalMs"`
}

// CriticalState is the derived burst-of-alerts flag shown by the dashboard.
type CriticalState struct {
	CriticalMode bool `json:"criticalMode"`
	WindowCount  int  `json:"windowCount"`
}

// User is a registered staff account. The password is stored as entered; this
// is demo plumbing, not a security model.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Password   string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// Session is the single active login session.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
