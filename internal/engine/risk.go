package engine

import (
	"math/rand"

	"github.com/nurseguard/backend/pkg/model"
)

// RiskScorer computes per-patient risk scores from comorbidity history and
// age, and bumps them as alerts arrive.
type RiskScorer struct {
	rng   *rand.Rand
	clock Clock
}

// NewRiskScorer creates a RiskScorer over the given RNG and clock.
func NewRiskScorer(rng *rand.Rand, clock Clock) *RiskScorer {
	return &RiskScorer{rng: rng, clock: clock}
}

// InitialScores seeds a risk score for every reference patient: a uniform
// [15,30] base, weighted additions per history item, an age factor, then a
// clamp to [5,95].
func (r *RiskScorer) InitialScores() map[string]model.RiskScore {
	scores := make(map[string]model.RiskScore, len(referencePatients))
	trends := []string{model.TrendUp, model.TrendDown, model.TrendSteady}
	now := r.clock.Now().UnixMilli()

	for _, p := range referencePatients {
		base := r.uniform(15, 30)

		for _, h := range p.History {
			switch {
			case highRiskConditions[h]:
				base += r.uniform(18, 28)
			case mediumRiskConditions[h]:
				base += r.uniform(10, 18)
			default:
				base += r.uniform(5, 10)
			}
		}

		if p.Age > 70 {
			base += 12
		} else if p.Age > 55 {
			base += 6
		}

		score := clamp(base, 5, 95)
		scores[p.ID] = model.RiskScore{
			Score:      score,
			Label:      model.RiskLabel(score),
			Trend:      trends[r.rng.Intn(len(trends))],
			LastUpdate: now,
		}
	}

	return scores
}

// UpdateFromAlert returns a copy of scores with the affected patient's entry
// bumped by a severity-weighted amount, clamped to 98. Patients with no
// existing entry are left untouched.
func (r *RiskScorer) UpdateFromAlert(scores map[string]model.RiskScore, alert model.Alert) map[string]model.RiskScore {
	updated := make(map[string]model.RiskScore, len(scores))
	for id, s := range scores {
		updated[id] = s
	}

	current, ok := updated[alert.PatientID]
	if !ok {
		return updated
	}

	var bump int
	switch alert.SeverityLevel {
	case model.SeverityHigh:
		bump = r.uniform(8, 15)
	case model.SeverityMedium:
		bump = r.uniform(4, 9)
	default:
		bump = r.uniform(2, 5)
	}

	// Bumps are positive, so only the upper clamp matters.
	score := current.Score + bump
	if score > 98 {
		score = 98
	}

	updated[alert.PatientID] = model.RiskScore{
		Score:      score,
		Label:      model.RiskLabel(score),
		Trend:      model.TrendUp,
		LastUpdate: r.clock.Now().UnixMilli(),
	}

	return updated
}

func (r *RiskScorer) uniform(min, max int) int {
	return min + r.rng.Intn(max-min+1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
