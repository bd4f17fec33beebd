// Environmental and economic indicator projections keyed on policy themes.
package engine

import (
	"math"
	"strings"

	"github.com/talgya/urban-sandbox/internal/narrative"
)

// indicator is one projected metric: clamp(base + effectiveness×slope, lo, hi).
type indicator struct {
	key         string
	base, slope float64
	lo, hi      float64
}

// metricGroup contributes its indicators when the policy matches.
type metricGroup struct {
	kw         narrative.Keywords
	indicators []indicator
}

var metricGroups = []metricGroup{
	{
		kw: narrative.Keywords{"smart", "digital", "tech", "智能", "數字"},
		indicators: []indicator{
			{"digital_adoption", 45, 0.4, 30, 95},
			{"government_efficiency", 40, 0.35, 25, 90},
			{"citizen_satisfaction", 50, 0.3, 35, 85},
			{"innovation_index", 35, 0.45, 20, 100},
		},
	},
	{
		kw: narrative.Keywords{"fintech", "retail", "tourism", "f&b"},
		indicators: []indicator{
			{"economic_growth", 30, 0.4, 15, 80},
			{"job_creation", 25, 0.35, 10, 75},
			{"business_innovation", 35, 0.4, 20, 90},
			{"international_competitiveness", 40, 0.3, 25, 85},
		},
	},
	{
		kw: narrative.Keywords{"environment", "green", "pollution", "環境", "綠色", "污染"},
		indicators: []indicator{
			{"air_quality", 50, 0.3, 20, 100},
			{"water_quality", 60, 0.25, 30, 100},
			{"renewable_energy", 25, 0.4, 10, 80},
			{"waste_reduction", 40, 0.35, 15, 90},
		},
	},
}

// EnvironmentalData projects indicator values from the support figure.
// The key set depends on which themes the policy touches and may be empty.
func EnvironmentalData(policy string, support int) map[string]float64 {
	lower := strings.ToLower(policy)
	effectiveness := float64(roundHalfUp(float64(support) * 0.8))

	data := make(map[string]float64)
	for _, g := range metricGroups {
		if !g.kw.In(lower) {
			continue
		}
		for _, ind := range g.indicators {
			data[ind.key] = math.Max(ind.lo, math.Min(ind.hi, ind.base+effectiveness*ind.slope))
		}
	}
	return data
}
