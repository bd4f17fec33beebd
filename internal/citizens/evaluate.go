// Policy evaluation: the per-citizen support heuristic.
package citizens

import (
	"strings"

	"github.com/talgya/urban-sandbox/internal/entropy"
)

// Scoring constants.
const (
	BaselineSupport  = 0.5
	HerdingWeight    = 0.3
	NoiseAmplitude   = 0.15
	EnvironmentBonus = 0.4
)

// scoringRule fires when the policy contains keyword and the citizen matches.
type scoringRule struct {
	keyword string
	applies func(c *Citizen) bool
	delta   float64
}

var scoringRules = []scoringRule{
	{"healthcare", func(c *Citizen) bool { return c.Age > 60 }, 0.3},
	{"housing", func(c *Citizen) bool { return c.Age < 35 }, 0.4},
	{"public", func(c *Citizen) bool { return c.Income < 30000 }, 0.2},
	{"tax", func(c *Citizen) bool { return c.Income > 80000 }, -0.3},
	{"education", func(c *Citizen) bool { return c.Occupation == OccupationTeacher }, 0.3},
	{"regulation", func(c *Citizen) bool { return c.Occupation == OccupationBusiness }, -0.2},
}

// environmentalKeywords mark a policy as environmentally themed.
var environmentalKeywords = []string{"environment", "green", "pollution"}

// EvaluatePolicy returns the citizen's support likelihood in [0, 1].
// policy must already be lower-cased. othersSupport is the population-wide
// mean from a previous pass (0.5 when there is no social signal yet).
func (c *Citizen) EvaluatePolicy(policy string, othersSupport float64, src entropy.Source) float64 {
	support := BaselineSupport

	for _, r := range scoringRules {
		if r.applies(c) && strings.Contains(policy, r.keyword) {
			support += r.delta
		}
	}

	if containsAny(policy, environmentalKeywords) && c.HasPriority(TopicEnvironment) {
		support += EnvironmentBonus
	}

	// Herding: pull toward the population mood.
	support += (othersSupport - BaselineSupport) * HerdingWeight

	support += (src.Float64() - 0.5) * NoiseAmplitude

	return clamp(support, 0, 1)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
