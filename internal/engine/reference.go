package engine

import "github.com/nurseguard/backend/pkg/model"

// Static reference tables. Both are non-empty by construction and never
// mutated at runtime.

var referencePatients = []model.Patient{
	{ID: "P-1001", Name: "Mike Johnson", Age: 67, Room: 203, Ward: "ICU Ward A", History: []string{"COPD", "hypertension"}},
	{ID: "P-1002", Name: "Helen Park", Age: 54, Room: 105, Ward: "General Ward B", History: []string{"anxiety", "insomnia"}},
	{ID: "P-1003", Name: "James Carter", Age: 72, Room: 312, Ward: "Cardiac Ward C", History: []string{"arrhythmia", "CHF"}},
	{ID: "P-1004", Name: "David Lee", Age: 81, Room: 207, Ward: "Neuro Ward D", History: []string{"Parkinsons", "fall risk"}},
	{ID: "P-1005", Name: "Anna White", Age: 59, Room: 118, Ward: "ICU Ward A", History: []string{"sleep apnea", "obesity"}},
	{ID: "P-1006", Name: "Emily Davis", Age: 34, Room: 204, Ward: "General Ward B", History: []string{"panic disorder"}},
	{ID: "P-1007", Name: "Robert Kim", Age: 45, Room: 301, Ward: "Neuro Ward D", History: []string{"epilepsy"}},
	{ID: "P-1008", Name: "Grace Miller", Age: 62, Room: 215, Ward: "General Ward B", History: []string{"pneumonia", "asthma"}},
	{ID: "P-1009", Name: "Thomas Brown", Age: 70, Room: 109, Ward: "Cardiac Ward C", History: []string{"hypertension", "diabetes"}},
	{ID: "P-1010", Name: "Lisa Chen", Age: 28, Room: 220, Ward: "General Ward B", History: []string{"post-surgery"}},
	{ID: "P-1011", Name: "Kevin Patel", Age: 55, Room: 310, Ward: "ICU Ward A", History: []string{"stroke recovery"}},
	{ID: "P-1012", Name: "Sarah Lopez", Age: 48, Room: 112, Ward: "General Ward B", History: []string{"fever", "infection"}},
}

var conditionTemplates = []model.ConditionTemplate{
	// Respiratory
	{Condition: "Respiratory distress detected", Category: model.CategoryRespiratory, BaseSeverity: model.SeverityHigh, MinConfidence: 88, MaxConfidence: 97, Icon: "🫁", TriggerText: "Abnormal breathing pattern with reduced SpO2"},
	{Condition: "Persistent cough pattern detected", Category: model.CategoryRespiratory, BaseSeverity: model.SeverityMedium, MinConfidence: 72, MaxConfidence: 86, Icon: "🤧", TriggerText: "Cough frequency exceeds 12/min threshold"},
	{Condition: "Sleep apnea episode detected", Category: model.CategoryRespiratory, BaseSeverity: model.SeverityHigh, MinConfidence: 85, MaxConfidence: 95, Icon: "😴", TriggerText: "Breathing cessation >10s during sleep"},
	{Condition: "SpO2 level critically low", Category: model.CategoryRespiratory, BaseSeverity: model.SeverityHigh, MinConfidence: 90, MaxConfidence: 99, Icon: "🩸", TriggerText: "Blood oxygen saturation below 90%"},

	// Cardiac
	{Condition: "Abnormal heart rate pattern", Category: model.CategoryCardiac, BaseSeverity: model.SeverityHigh, MinConfidence: 82, MaxConfidence: 94, Icon: "❤️", TriggerText: "Irregular QRS complex detected"},
	{Condition: "Blood pressure spike detected", Category: model.CategoryCardiac, BaseSeverity: model.SeverityHigh, MinConfidence: 87, MaxConfidence: 96, Icon: "📈", TriggerText: "Systolic BP >180 mmHg sustained"},
	{Condition: "Tachycardia episode detected", Category: model.CategoryCardiac, BaseSeverity: model.SeverityMedium, MinConfidence: 78, MaxConfidence: 91, Icon: "💓", TriggerText: "Heart rate >120 BPM for >2 minutes"},

	// Motion / fall
	{Condition: "Fall detected via motion sensor", Category: model.CategoryMotion, BaseSeverity: model.SeverityHigh, MinConfidence: 80, MaxConfidence: 93, Icon: "🚶", TriggerText: "Sudden vertical acceleration change"},
	{Condition: "Abnormal movement pattern detected", Category: model.CategoryMotion, BaseSeverity: model.SeverityMedium, MinConfidence: 65, MaxConfidence: 80, Icon: "🔄", TriggerText: "Continuous restless movement >15 min"},
	{Condition: "Patient left bed unexpectedly", Category: model.CategoryMotion, BaseSeverity: model.SeverityMedium, MinConfidence: 75, MaxConfidence: 88, Icon: "🛏️", TriggerText: "Pressure sensor released outside schedule"},

	// Audio / stress
	{Condition: "Panic vocalization detected", Category: model.CategoryAudio, BaseSeverity: model.SeverityHigh, MinConfidence: 83, MaxConfidence: 95, Icon: "🗣️", TriggerText: "Audio classifier: distress vocalization"},
	{Condition: "\"Help\" keyword detected in audio", Category: model.CategoryAudio, BaseSeverity: model.SeverityHigh, MinConfidence: 88, MaxConfidence: 97, Icon: "🆘", TriggerText: "Speech-to-text match: emergency keyword"},
	{Condition: "Elevated stress indicators", Category: model.CategoryStress, BaseSeverity: model.SeverityMedium, MinConfidence: 70, MaxConfidence: 84, Icon: "😰", TriggerText: "Heart rate variability + cortisol estimate"},
	{Condition: "Distress vocalization detected", Category: model.CategoryAudio, BaseSeverity: model.SeverityMedium, MinConfidence: 72, MaxConfidence: 86, Icon: "😢", TriggerText: "Crying or moaning pattern classified"},

	// Vitals
	{Condition: "Temperature spike detected", Category: model.CategoryVitals, BaseSeverity: model.SeverityMedium, MinConfidence: 80, MaxConfidence: 92, Icon: "🌡️", TriggerText: "Body temp >39.5°C sustained >10 min"},
	{Condition: "Glucose level anomaly", Category: model.CategoryVitals, BaseSeverity: model.SeverityMedium, MinConfidence: 76, MaxConfidence: 89, Icon: "💉", TriggerText: "Blood glucose outside safe range"},
}

// Condition sets used by escalation and risk scoring.
var (
	highRiskConditions = map[string]bool{
		"COPD":            true,
		"CHF":             true,
		"arrhythmia":      true,
		"stroke recovery": true,
		"fall risk":       true,
	}

	mediumRiskConditions = map[string]bool{
		"hypertension":   true,
		"diabetes":       true,
		"sleep apnea":    true,
		"obesity":        true,
		"epilepsy":       true,
		"panic disorder": true,
	}
)

func hasHighRiskHistory(history []string) bool {
	for _, h := range history {
		if highRiskConditions[h] {
			return true
		}
	}
	return false
}

// Patients returns a copy of the patient reference table.
func Patients() []model.Patient {
	out := make([]model.Patient, len(referencePatients))
	for i, p := range referencePatients {
		p.History = append([]string(nil), p.History...)
		out[i] = p
	}
	return out
}

// ConditionTemplates returns a copy of the condition reference table.
func ConditionTemplates() []model.ConditionTemplate {
	out := make([]model.ConditionTemplate, len(conditionTemplates))
	copy(out, conditionTemplates)
	return out
}
