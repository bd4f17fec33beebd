// Policy complexity scoring and affected-group identification.
package narrative

import (
	"math"
	"strings"
)

// ComplexityLevel buckets a complexity score.
type ComplexityLevel string

const (
	ComplexityLow    ComplexityLevel = "low"
	ComplexityMedium ComplexityLevel = "medium"
	ComplexityHigh   ComplexityLevel = "high"
)

// Complexity scoring constants.
const (
	complexityBase   = 3
	complexityMax    = 10
	complexityHighAt = 7
	complexityMedAt  = 4
)

// Complexity is the result of AnalyzeComplexity.
type Complexity struct {
	Score int             `json:"score"`
	Level ComplexityLevel `json:"level"`
}

var complexityWeights = []struct {
	kw     Keywords
	weight int
}{
	{kwTax, 2},
	{kwRegulation, 2},
	{kwInfrastructure, 3},
	{kwEducation, 1},
	{kwHealthcare, 2},
	{kwEnvironment, 2},
	{kwHousingCore, 3},
	{kwTransportCore, 3},
	{kwWelfareCore, 2},
}

// AnalyzeComplexity scores how hard a policy is to implement, 0–10.
// text is the raw policy text; matching is done on its lower-cased form.
func AnalyzeComplexity(text string) Complexity {
	lower := lowerText(text)
	score := complexityBase

	for _, cw := range complexityWeights {
		if cw.kw.In(lower) {
			score += cw.weight
		}
	}

	for _, s := range sectorWords {
		if strings.Contains(lower, s) {
			score++
		}
	}

	// Numbers signal concrete targets.
	if percentPattern.MatchString(text) {
		score++
	}
	if digitPattern.MatchString(text) {
		score++
	}

	if score > complexityMax {
		score = complexityMax
	}

	level := ComplexityLow
	switch {
	case score >= complexityHighAt:
		level = ComplexityHigh
	case score >= complexityMedAt:
		level = ComplexityMedium
	}
	return Complexity{Score: score, Level: level}
}

// Departments is the number of government departments needing coordination.
func (c Complexity) Departments() int { return int(math.Ceil(float64(c.Score) * 2)) }

// Checkpoints is the number of monitoring checkpoints to establish.
func (c Complexity) Checkpoints() int { return int(math.Ceil(float64(c.Score) * 1.5)) }

// BudgetPercent is the extra budget share reserved for complexity management.
func (c Complexity) BudgetPercent() int { return roundHalfUp(float64(c.Score) * 15) }

// Timeline is the recommended implementation pace.
type Timeline string

const (
	TimelineAccelerated Timeline = "Accelerated"
	TimelineStandard    Timeline = "Standard"
	TimelineExtended    Timeline = "Extended"
)

// AssessTimeline picks an implementation pace from the support level.
func AssessTimeline(support int) Timeline {
	switch {
	case support > 70:
		return TimelineAccelerated
	case support < 40:
		return TimelineExtended
	default:
		return TimelineStandard
	}
}

// Group is a demographic label key.
type Group string

const (
	GroupYoungAdults       Group = "young adults"
	GroupLowIncomeFamilies Group = "low-income families"
	GroupBusinesses        Group = "businesses"
	GroupMiddleIncome      Group = "middle-income earners"
	GroupFamiliesWithKids  Group = "families with children"
	GroupTeachers          Group = "teachers"
	GroupElderly           Group = "elderly"
	GroupChronicPatients   Group = "chronic patients"
	GroupCommuters         Group = "commuters"
	GroupOuterDistricts    Group = "outer district residents"
	GroupAllCitizens       Group = "all citizens"
	GroupFutureGenerations Group = "future generations"
	GroupGeneralPublic     Group = "general public"
)

// AffectedGroups describes who a policy touches and how they lean.
type AffectedGroups struct {
	Primary       []Group `json:"primary"`
	Supportive    []Group `json:"supportive"`
	Resistant     []Group `json:"resistant"`
	TotalAffected int     `json:"total_affected"` // per-mille of population, may exceed 1000
}

// Per-domain affected groups, evaluated in order.
var affectedDomains = []struct {
	kw       Keywords
	groups   []Group
	affected int
}{
	{kwHousingCore, []Group{GroupYoungAdults, GroupLowIncomeFamilies}, 350},
	{kwTax, []Group{GroupBusinesses, GroupMiddleIncome}, 600},
	{kwEducation, []Group{GroupFamiliesWithKids, GroupTeachers}, 400},
	{kwHealthcare, []Group{GroupElderly, GroupChronicPatients}, 300},
	{kwTransportCore, []Group{GroupCommuters, GroupOuterDistricts}, 700},
	{kwEnvironment, []Group{GroupAllCitizens, GroupFutureGenerations}, 1000},
}

const defaultAffected = 500

// IdentifyAffectedGroups maps matched domains to demographic groups and splits
// them into supportive and resistant halves depending on support.
func IdentifyAffectedGroups(text string, support int) AffectedGroups {
	lower := lowerText(text)
	g := AffectedGroups{Primary: []Group{}}

	for _, d := range affectedDomains {
		if d.kw.In(lower) {
			g.Primary = append(g.Primary, d.groups...)
			g.TotalAffected += d.affected
		}
	}

	if len(g.Primary) == 0 {
		g.Primary = append(g.Primary, GroupGeneralPublic)
		g.TotalAffected = defaultAffected
	}

	half := (len(g.Primary) + 1) / 2
	first := append([]Group(nil), g.Primary[:half]...)
	rest := append([]Group{}, g.Primary[half:]...)
	if support > 50 {
		g.Supportive, g.Resistant = first, rest
	} else {
		g.Resistant, g.Supportive = first, rest
	}
	return g
}

// AffectedShare converts the per-mille total into a percentage.
func (g AffectedGroups) AffectedShare() int {
	return roundHalfUp(float64(g.TotalAffected) / 10)
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
