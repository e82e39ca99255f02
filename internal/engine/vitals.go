package engine

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/nurseguard/backend/pkg/model"
)

// VitalsSynthesizer produces plausible vitals snapshots for a severity tier.
// Every field is an independent uniform draw; there is no cross-field
// correlation beyond the tier's own ranges.
type VitalsSynthesizer struct {
	rng *rand.Rand
}

// NewVitalsSynthesizer creates a VitalsSynthesizer over the given RNG.
func NewVitalsSynthesizer(rng *rand.Rand) *VitalsSynthesizer {
	return &VitalsSynthesizer{rng: rng}
}

// Generate returns a vitals snapshot for the given severity tier. Any
// unrecognized tier gets the baseline ranges.
func (v *VitalsSynthesizer) Generate(severity model.Severity) model.VitalsSnapshot {
	snapshot := model.VitalsSnapshot{
		HeartRate:       v.uniform(72, 91),
		SpO2:            v.uniform(94, 96),
		Temperature:     v.uniformTemp(36.5, 37.3),
		BloodPressure:   v.bloodPressure(115, 129, 72, 81),
		RespiratoryRate: v.uniform(14, 17),
	}

	switch severity {
	case model.SeverityHigh:
		snapshot.HeartRate = v.uniform(105, 139)
		snapshot.SpO2 = v.uniform(85, 91)
		snapshot.Temperature = v.uniformTemp(37.5, 40.0)
		snapshot.BloodPressure = v.bloodPressure(160, 189, 90, 104)
		snapshot.RespiratoryRate = v.uniform(22, 31)
	case model.SeverityMedium:
		// Blood pressure stays in the baseline range for medium alerts.
		snapshot.HeartRate = v.uniform(90, 114)
		snapshot.SpO2 = v.uniform(91, 95)
		snapshot.Temperature = v.uniformTemp(37.0, 38.5)
		snapshot.RespiratoryRate = v.uniform(18, 23)
	}

	return snapshot
}

func (v *VitalsSynthesizer) uniform(min, max int) int {
	return min + v.rng.Intn(max-min+1)
}

func (v *VitalsSynthesizer) uniformTemp(min, max float64) float64 {
	t := min + v.rng.Float64()*(max-min)
	return math.Round(t*10) / 10
}

func (v *VitalsSynthesizer) bloodPressure(sysMin, sysMax, diaMin, diaMax int) string {
	return fmt.Sprintf("%d/%d", v.uniform(sysMin, sysMax), v.uniform(diaMin, diaMax))
}
