// Herding and polarization statistics over the final score distribution.
package engine

// Extreme-opinion thresholds.
const (
	StrongSupportAbove    = 0.7
	StrongOppositionBelow = 0.3
)

// Dominant trend values.
const (
	TrendSupport    = "support"
	TrendOpposition = "opposition"
)

// HerdingAnalysis summarizes how many citizens hold extreme views.
type HerdingAnalysis struct {
	StrongSupport    int    `json:"strong_support"`
	StrongOpposition int    `json:"strong_opposition"`
	HerdingStrength  int    `json:"herding_strength"` // |s-o| as % of population
	DominantTrend    string `json:"dominant_trend"`
	Polarization     int    `json:"polarization"` // (s+o) as % of population
}

// AnalyzeHerding counts strong supporters and opponents. Ties go to opposition.
func AnalyzeHerding(scores []float64) HerdingAnalysis {
	var h HerdingAnalysis
	for _, s := range scores {
		switch {
		case s > StrongSupportAbove:
			h.StrongSupport++
		case s < StrongOppositionBelow:
			h.StrongOpposition++
		}
	}

	h.DominantTrend = TrendOpposition
	if h.StrongSupport > h.StrongOpposition {
		h.DominantTrend = TrendSupport
	}

	n := len(scores)
	if n == 0 {
		return h
	}
	diff := h.StrongSupport - h.StrongOpposition
	if diff < 0 {
		diff = -diff
	}
	h.HerdingStrength = roundHalfUp(float64(diff) / float64(n) * 100)
	h.Polarization = roundHalfUp(float64(h.StrongSupport+h.StrongOpposition) / float64(n) * 100)
	return h
}
