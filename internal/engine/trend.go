// Trend synthesis: a biased random walk per metric over the requested years.
package engine

import (
	"math"
	"strings"

	"github.com/talgya/urban-sandbox/internal/entropy"
	"github.com/talgya/urban-sandbox/internal/narrative"
)

// Support bounds after year 0.
const (
	TrendMinSupport = 10
	TrendMaxSupport = 90
)

// TrendData holds equal-length series indexed by year, 0 through years.
type TrendData struct {
	Years               []int `json:"years"`
	Support             []int `json:"support"`
	Opposition          []int `json:"opposition"`
	EconomicImpact      []int `json:"economic_impact"`
	EnvironmentalImpact []int `json:"environmental_impact"`
	SocialSatisfaction  []int `json:"social_satisfaction"`
}

// Len is the number of points in each series.
func (t TrendData) Len() int { return len(t.Years) }

var (
	trendHousing     = narrative.Keywords{"housing", "房屋"}
	trendTax         = narrative.Keywords{"tax", "稅"}
	trendEnvironment = narrative.Keywords{"environment", "環境"}
	trendTech        = narrative.Keywords{"tech", "smart", "智能"}
)

// supportDelta is the year-on-year support change for year > 0. Only the
// fallback branch draws from src.
func supportDelta(policy string, year int, src entropy.Source) float64 {
	switch {
	case trendHousing.In(policy):
		if year < 3 {
			return -2
		}
		return 3
	case trendTax.In(policy):
		if year < 2 {
			return -3
		}
		return 1
	case trendEnvironment.In(policy):
		return 2
	case trendTech.In(policy):
		if year < 2 {
			return 1
		}
		return 3
	default:
		return src.Float64()*4 - 2
	}
}

// SynthesizeTrend builds the year series starting from the initial support.
// Year 0 carries initial unchanged; later years accumulate a clamped delta.
func SynthesizeTrend(initial int, policy string, years int, src entropy.Source) TrendData {
	if years < 0 {
		years = 0
	}
	n := years + 1
	t := TrendData{
		Years:               make([]int, 0, n),
		Support:             make([]int, 0, n),
		Opposition:          make([]int, 0, n),
		EconomicImpact:      make([]int, 0, n),
		EnvironmentalImpact: make([]int, 0, n),
		SocialSatisfaction:  make([]int, 0, n),
	}

	lower := strings.ToLower(policy)
	economicBase := 50.0
	if strings.Contains(lower, "tax") {
		economicBase = 30
	}
	envBase := 40.0
	if strings.Contains(lower, "environment") {
		envBase = 60
	}

	current := float64(initial)
	for year := 0; year <= years; year++ {
		t.Years = append(t.Years, year)

		support := initial
		if year > 0 {
			current = math.Max(TrendMinSupport, math.Min(TrendMaxSupport, current+supportDelta(lower, year, src)))
			support = roundHalfUp(current)
		}
		t.Support = append(t.Support, support)
		t.Opposition = append(t.Opposition, 100-support)

		y := float64(year)
		t.EconomicImpact = append(t.EconomicImpact, roundHalfUp(economicBase+y*3+src.Float64()*10))
		t.EnvironmentalImpact = append(t.EnvironmentalImpact, roundHalfUp(envBase+y*2+src.Float64()*8))
		t.SocialSatisfaction = append(t.SocialSatisfaction, roundHalfUp(float64(support)*0.8+src.Float64()*10))
	}
	return t
}
