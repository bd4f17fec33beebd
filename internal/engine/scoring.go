// Aggregate scoring: two passes of the citizen heuristic with one herding update.
package engine

import (
	"math"
	"strings"

	"github.com/talgya/urban-sandbox/internal/citizens"
	"github.com/talgya/urban-sandbox/internal/entropy"
)

// Scores is the outcome of scoring a population against one policy.
type Scores struct {
	FirstPassMean float64   `json:"first_pass_mean"`
	Mean          float64   `json:"mean"`
	Percentage    int       `json:"percentage"`
	PerCitizen    []float64 `json:"-"` // second-pass scores, indexed like the population
}

// ScorePopulation runs exactly two passes: the first with no social signal,
// the second with the first-pass mean as every citizen's herding input.
func ScorePopulation(pop citizens.Population, policy string, src entropy.Source) Scores {
	lower := strings.ToLower(policy)

	_, first := scorePass(pop, lower, citizens.BaselineSupport, src)
	second, mean := scorePass(pop, lower, first, src)

	return Scores{
		FirstPassMean: first,
		Mean:          mean,
		Percentage:    roundHalfUp(mean * 100),
		PerCitizen:    second,
	}
}

// scorePass evaluates every citizen once. An empty population has the
// baseline as its mean.
func scorePass(pop citizens.Population, policy string, prior float64, src entropy.Source) ([]float64, float64) {
	scores := make([]float64, len(pop))
	if len(pop) == 0 {
		return scores, citizens.BaselineSupport
	}
	sum := 0.0
	for i := range pop {
		scores[i] = pop[i].EvaluatePolicy(policy, prior, src)
		sum += scores[i]
	}
	return scores, sum / float64(len(pop))
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
