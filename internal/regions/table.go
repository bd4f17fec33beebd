// Package regions biases the overall support figure per Hong Kong district
// using a static trait profile and keyword-matched policy domains.
package regions

import "github.com/talgya/urban-sandbox/internal/narrative"

// Trait is a named district attribute in [0,1].
type Trait string

const (
	TraitElderly           Trait = "elderly"
	TraitLowIncome         Trait = "low_income"
	TraitYouth             Trait = "youth"
	TraitGreenAwareness    Trait = "green_awareness"
	TraitTransitDependence Trait = "transit_dependence"
	TraitBusinessDensity   Trait = "business_density"
	TraitHousingPressure   Trait = "housing_pressure"
	TraitTechAdoption      Trait = "tech_adoption"
)

// Region is one administrative district.
type Region struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	NameZH string            `json:"name_zh"`
	Traits map[Trait]float64 `json:"traits"`
}

// OverallKey is the pseudo-region holding the unadjusted figure.
const OverallKey = "overall"

func profile(elderly, lowIncome, youth, green, transit, business, housing, tech float64) map[Trait]float64 {
	return map[Trait]float64{
		TraitElderly:           elderly,
		TraitLowIncome:         lowIncome,
		TraitYouth:             youth,
		TraitGreenAwareness:    green,
		TraitTransitDependence: transit,
		TraitBusinessDensity:   business,
		TraitHousingPressure:   housing,
		TraitTechAdoption:      tech,
	}
}

// Districts is the 18-district table. Traits are ordered as in profile().
var Districts = []Region{
	{"central-western", "Central and Western", "中西區", profile(0.45, 0.25, 0.50, 0.55, 0.80, 0.95, 0.50, 0.80)},
	{"wan-chai", "Wan Chai", "灣仔", profile(0.45, 0.25, 0.50, 0.55, 0.80, 0.90, 0.45, 0.80)},
	{"eastern", "Eastern", "東區", profile(0.55, 0.40, 0.45, 0.50, 0.75, 0.55, 0.55, 0.60)},
	{"southern", "Southern", "南區", profile(0.50, 0.35, 0.45, 0.70, 0.50, 0.35, 0.50, 0.55)},
	{"yau-tsim-mong", "Yau Tsim Mong", "油尖旺", profile(0.45, 0.50, 0.55, 0.40, 0.90, 0.85, 0.70, 0.65)},
	{"sham-shui-po", "Sham Shui Po", "深水埗", profile(0.60, 0.80, 0.45, 0.35, 0.85, 0.45, 0.90, 0.40)},
	{"kowloon-city", "Kowloon City", "九龍城", profile(0.55, 0.45, 0.50, 0.45, 0.75, 0.50, 0.60, 0.60)},
	{"wong-tai-sin", "Wong Tai Sin", "黃大仙", profile(0.70, 0.70, 0.35, 0.40, 0.80, 0.25, 0.70, 0.35)},
	{"kwun-tong", "Kwun Tong", "觀塘", profile(0.60, 0.70, 0.45, 0.40, 0.85, 0.60, 0.80, 0.45)},
	{"kwai-tsing", "Kwai Tsing", "葵青", profile(0.55, 0.70, 0.45, 0.35, 0.80, 0.55, 0.75, 0.40)},
	{"tsuen-wan", "Tsuen Wan", "荃灣", profile(0.50, 0.50, 0.50, 0.45, 0.75, 0.45, 0.60, 0.50)},
	{"tuen-mun", "Tuen Mun", "屯門", profile(0.50, 0.60, 0.50, 0.45, 0.60, 0.30, 0.65, 0.45)},
	{"yuen-long", "Yuen Long", "元朗", profile(0.40, 0.60, 0.60, 0.50, 0.55, 0.30, 0.70, 0.50)},
	{"north", "North", "北區", profile(0.45, 0.60, 0.50, 0.55, 0.50, 0.20, 0.65, 0.40)},
	{"tai-po", "Tai Po", "大埔", profile(0.55, 0.45, 0.45, 0.65, 0.55, 0.25, 0.50, 0.50)},
	{"sha-tin", "Sha Tin", "沙田", profile(0.50, 0.40, 0.60, 0.60, 0.70, 0.40, 0.60, 0.70)},
	{"sai-kung", "Sai Kung", "西貢", profile(0.40, 0.30, 0.60, 0.75, 0.50, 0.30, 0.50, 0.75)},
	{"islands", "Islands", "離島", profile(0.45, 0.45, 0.55, 0.80, 0.30, 0.20, 0.45, 0.50)},
}

// Lookup finds a district by ID.
func Lookup(id string) (Region, bool) {
	for _, r := range Districts {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// weight is one trait's contribution to a domain.
type weight struct {
	trait Trait
	w     float64
}

// Domain is a policy area that shifts district support when matched.
type Domain struct {
	Name     string
	Keywords narrative.Keywords
	weights  []weight
}

// Domains are evaluated independently; every matched domain contributes.
var Domains = []Domain{
	{"housing", narrative.Keywords{"housing", "房屋", "公屋"},
		[]weight{{TraitHousingPressure, 20}, {TraitYouth, 10}, {TraitLowIncome, 10}}},
	{"tax", narrative.Keywords{"tax", "稅"},
		[]weight{{TraitBusinessDensity, -15}, {TraitLowIncome, 6}}},
	{"environment", narrative.Keywords{"environment", "green", "renewable", "pollution", "carbon", "環境", "綠色", "可再生", "污染", "碳"},
		[]weight{{TraitGreenAwareness, 20}, {TraitYouth, 6}}},
	{"transport", narrative.Keywords{"transport", "mtr", "railway", "交通", "港鐵", "鐵路"},
		[]weight{{TraitTransitDependence, 20}}},
	{"technology", narrative.Keywords{"smart", "tech", "digital", "fintech", "智能", "科技", "數字"},
		[]weight{{TraitTechAdoption, 18}, {TraitYouth, 8}, {TraitElderly, -10}}},
	{"welfare", narrative.Keywords{"welfare", "basic income", "poverty", "福利", "基本收入", "貧困"},
		[]weight{{TraitLowIncome, 20}, {TraitElderly, 8}}},
	{"healthcare", narrative.Keywords{"healthcare", "hospital", "醫療", "醫院"},
		[]weight{{TraitElderly, 18}}},
}
