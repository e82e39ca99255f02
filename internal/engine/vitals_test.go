package engine

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurseguard/backend/pkg/model"
)

func parseBloodPressure(t *testing.T, bp string) (int, int) {
	t.Helper()
	parts := strings.Split(bp, "/")
	require.Len(t, parts, 2)
	sys, err := strconv.Atoi(parts[0])
	require.NoError(t, err)
	dia, err := strconv.Atoi(parts[1])
	require.NoError(t, err)
	return sys, dia
}

func TestVitalsSynthesizer_TierRanges(t *testing.T) {
	cases := []struct {
		name               string
		severity           model.Severity
		hrMin, hrMax       int
		spO2Min, spO2Max   int
		tempMin, tempMax   float64
		sysMin, sysMax     int
		diaMin, diaMax     int
		rrMin, rrMax       int
	}{
		{"low uses baseline", model.SeverityLow, 72, 91, 94, 96, 36.5, 37.3, 115, 129, 72, 81, 14, 17},
		{"unrecognized tier uses baseline", model.Severity("bogus"), 72, 91, 94, 96, 36.5, 37.3, 115, 129, 72, 81, 14, 17},
		{"medium keeps baseline blood pressure", model.SeverityMedium, 90, 114, 91, 95, 37.0, 38.5, 115, 129, 72, 81, 18, 23},
		{"high", model.SeverityHigh, 105, 139, 85, 91, 37.5, 40.0, 160, 189, 90, 104, 22, 31},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			synth := NewVitalsSynthesizer(rand.New(rand.NewSource(11)))
			for i := 0; i < 250; i++ {
				v := synth.Generate(tc.severity)

				assert.GreaterOrEqual(t, v.HeartRate, tc.hrMin)
				assert.LessOrEqual(t, v.HeartRate, tc.hrMax)
				assert.GreaterOrEqual(t, v.SpO2, tc.spO2Min)
				assert.LessOrEqual(t, v.SpO2, tc.spO2Max)
				assert.GreaterOrEqual(t, v.Temperature, tc.tempMin)
				assert.LessOrEqual(t, v.Temperature, tc.tempMax)
				assert.GreaterOrEqual(t, v.RespiratoryRate, tc.rrMin)
				assert.LessOrEqual(t, v.RespiratoryRate, tc.rrMax)

				sys, dia := parseBloodPressure(t, v.BloodPressure)
				assert.GreaterOrEqual(t, sys, tc.sysMin)
				assert.LessOrEqual(t, sys, tc.sysMax)
				assert.GreaterOrEqual(t, dia, tc.diaMin)
				assert.LessOrEqual(t, dia, tc.diaMax)
			}
		})
	}
}

func TestVitalsSynthesizer_TemperatureRoundedToOneDecimal(t *testing.T) {
	synth := NewVitalsSynthesizer(rand.New(rand.NewSource(5)))
	for i := 0; i < 100; i++ {
		v := synth.Generate(model.SeverityHigh)
		scaled := v.Temperature * 10
		assert.InDelta(t, math.Round(scaled), scaled, 1e-9)
	}
}
