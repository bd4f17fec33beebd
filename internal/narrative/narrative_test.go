package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/urban-sandbox/internal/citizens"
)

func testCensus() citizens.Census {
	return citizens.Census{
		Size:         1000,
		YoungAdults:  270,
		MiddleAged:   330,
		Elderly:      400,
		LowIncome:    204,
		MiddleIncome: 396,
		HighIncome:   400,
		Under40:      335,
		TechSavvy:    151,
		Occupations: map[citizens.Occupation]int{
			citizens.OccupationRetail:      70,
			citizens.OccupationLogistics:   75,
			citizens.OccupationService:     68,
			citizens.OccupationTourism:     72,
			citizens.OccupationFoodService: 71,
			citizens.OccupationFinance:     66,
			citizens.OccupationFintech:     73,
			citizens.OccupationBusiness:    69,
		},
	}
}

func entryIDs(entries []Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func findEntry(t *testing.T, entries []Entry, id string) Entry {
	t.Helper()
	for _, e := range entries {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("entry %q not found in %v", id, entryIDs(entries))
	return Entry{}
}

func TestHousingScenario(t *testing.T) {
	r := NewRenderer()
	ctx := NewContext("Increase public housing supply by 30% over 5 years", 50, English, testCensus())

	entries, err := r.Build(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{EntryHousing, EntryComplexity, EntryAffectedGroups}, entryIDs(entries))

	housing := findEntry(t, entries, EntryHousing)
	assert.Equal(t, 30, housing.Data["target_increase"])
	assert.Equal(t, 23400, housing.Data["required_units"])
	assert.Equal(t, 5400, housing.Data["shortfall"])
	assert.Equal(t, 1, housing.Data["additional_years"])
	assert.Equal(t, 13500, housing.Data["extra_budget"])
	assert.Equal(t, 21, housing.Data["three_year_target"])
	assert.Equal(t, 27, housing.Data["young_adults"])

	assert.Equal(t, "30% Housing Increase: Capacity & Timeline Challenges", housing.Issue)
	assert.Equal(t, "Policy requires 23400 units annually but faces significant implementation barriers", housing.Description)
	assert.Contains(t, housing.Reasoning, "requires 5400 additional units yearly")
	assert.Contains(t, housing.Reasoning, "HK$13500M additional budget")
	assert.Contains(t, housing.Recommendation, "Achieve 21% of target within 3 years")
}

func TestHousingTarget(t *testing.T) {
	assert.Equal(t, 30, HousingTarget("build more public housing"))
	assert.Equal(t, 45, HousingTarget("raise supply 45% and rents 10%"))
	assert.Equal(t, 30, HousingTarget("grow by 99999999999999999999% overnight"))
}

func TestCascadeIsExclusive(t *testing.T) {
	r := NewRenderer()

	entries, err := r.Build(NewContext("Carbon tax to protect the environment", 50, English, testCensus()))
	require.NoError(t, err)
	ids := entryIDs(entries)
	assert.Contains(t, ids, EntryTax)
	assert.Contains(t, ids, EntryEnergyTransition)

	entries, err = r.Build(NewContext("Retail carbon tax to protect the environment", 50, English, testCensus()))
	require.NoError(t, err)
	ids = entryIDs(entries)
	assert.Contains(t, ids, EntryRetail)
	assert.NotContains(t, ids, EntryTax)
	assert.Contains(t, ids, EntryEnergyTransition)

	cascade := 0
	for _, rule := range Rules {
		if rule.Exclusive {
			for _, id := range ids {
				if id == rule.ID {
					cascade++
				}
			}
		}
	}
	assert.Equal(t, 1, cascade)
}

func TestEmptyPolicyYieldsAlwaysEntries(t *testing.T) {
	entries, err := NewRenderer().Build(NewContext("", 50, English, testCensus()))
	require.NoError(t, err)
	assert.Equal(t, []string{EntryComplexity, EntryAffectedGroups}, entryIDs(entries))

	complexity := entries[0]
	assert.Equal(t, "low", complexity.Data["level"])
	assert.Contains(t, complexity.Reasoning, "Complexity Level: LOW (3/10)")
	assert.Contains(t, complexity.Reasoning, "Primary affected groups: general public showing 50% overall support")
	assert.Contains(t, complexity.Reasoning, "coordination across 6 government departments")
	assert.Contains(t, complexity.Reasoning, "affects 50% of population directly")
	assert.Contains(t, complexity.Recommendation, "Standard implementation timeline")

	groups := entries[1]
	assert.Equal(t, "Directly affected: general public", groups.Description)
	assert.Contains(t, groups.Reasoning, "Likely resisters: general public.")
	assert.NotContains(t, groups.Reasoning, "Likely supporters")
}

func TestSupportBands(t *testing.T) {
	r := NewRenderer()

	low, err := r.Build(NewContext("", 30, English, testCensus()))
	require.NoError(t, err)
	assert.Equal(t, []string{EntryLowAcceptance, EntryComplexity, EntryAffectedGroups, EntryRedesign}, entryIDs(low))
	assert.Equal(t, 20, low[0].Data["low_income"])
	assert.Equal(t, 40, low[0].Data["elderly"])
	assert.Contains(t, low[3].Reasoning, "Critical 30% support")

	mid, err := r.Build(NewContext("", 38, English, testCensus()))
	require.NoError(t, err)
	assert.Equal(t, []string{EntryLowAcceptance, EntryComplexity, EntryAffectedGroups}, entryIDs(mid))

	high, err := r.Build(NewContext("", 60, English, testCensus()))
	require.NoError(t, err)
	assert.Equal(t, []string{EntryComplexity, EntryAffectedGroups, EntryOptimization}, entryIDs(high))
	assert.Contains(t, high[2].Reasoning, "Young adults (27%) and middle-income groups (40%)")
}

func TestAnalyzeComplexity(t *testing.T) {
	tests := []struct {
		text  string
		score int
		level ComplexityLevel
	}{
		{"", 3, ComplexityLow},
		{"housing", 6, ComplexityMedium},
		{"Increase public housing supply by 30% over 5 years", 8, ComplexityHigh},
		{"environmental", 6, ComplexityMedium},
		{"tax regulation infrastructure healthcare environment housing transport", 10, ComplexityHigh},
		{"公共房屋", 6, ComplexityMedium},
		{"plan 2030", 4, ComplexityMedium},
		{"economic and social reform", 5, ComplexityMedium},
		{"經濟社會技術", 6, ComplexityMedium},
		{"economic social technological", 6, ComplexityMedium},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			c := AnalyzeComplexity(tt.text)
			assert.Equal(t, tt.score, c.Score)
			assert.Equal(t, tt.level, c.Level)
		})
	}

	c := AnalyzeComplexity("Increase public housing supply by 30% over 5 years")
	assert.Equal(t, 16, c.Departments())
	assert.Equal(t, 12, c.Checkpoints())
	assert.Equal(t, 120, c.BudgetPercent())
}

func TestAssessTimeline(t *testing.T) {
	assert.Equal(t, TimelineAccelerated, AssessTimeline(71))
	assert.Equal(t, TimelineStandard, AssessTimeline(70))
	assert.Equal(t, TimelineStandard, AssessTimeline(40))
	assert.Equal(t, TimelineExtended, AssessTimeline(39))
}

func TestIdentifyAffectedGroups(t *testing.T) {
	g := IdentifyAffectedGroups("housing tax", 60)
	assert.Equal(t, []Group{GroupYoungAdults, GroupLowIncomeFamilies, GroupBusinesses, GroupMiddleIncome}, g.Primary)
	assert.Equal(t, []Group{GroupYoungAdults, GroupLowIncomeFamilies}, g.Supportive)
	assert.Equal(t, []Group{GroupBusinesses, GroupMiddleIncome}, g.Resistant)
	assert.Equal(t, 950, g.TotalAffected)
	assert.Equal(t, 95, g.AffectedShare())

	g = IdentifyAffectedGroups("housing tax", 50)
	assert.Equal(t, []Group{GroupYoungAdults, GroupLowIncomeFamilies}, g.Resistant)
	assert.Equal(t, []Group{GroupBusinesses, GroupMiddleIncome}, g.Supportive)

	g = IdentifyAffectedGroups("transport and environment", 80)
	assert.Equal(t, 1700, g.TotalAffected)
	assert.Equal(t, 170, g.AffectedShare())

	g = IdentifyAffectedGroups("nothing relevant", 80)
	assert.Equal(t, []Group{GroupGeneralPublic}, g.Primary)
	assert.Equal(t, []Group{GroupGeneralPublic}, g.Supportive)
	assert.Empty(t, g.Resistant)
	assert.Equal(t, 500, g.TotalAffected)
}

func TestChineseRendering(t *testing.T) {
	entries, err := NewRenderer().Build(NewContext("", 50, Chinese, testCensus()))
	require.NoError(t, err)

	complexity := findEntry(t, entries, EntryComplexity)
	assert.Equal(t, "政策複雜性與實施分析", complexity.Issue)
	assert.Equal(t, "此政策顯示低複雜性，具有特定實施要求", complexity.Description)
	assert.Contains(t, complexity.Reasoning, "複雜程度：低（3/10）")
	assert.Contains(t, complexity.Reasoning, "主要受影響群體：一般公眾")
	assert.Contains(t, complexity.Recommendation, "建議標準實施時間表")
}

func TestUnknownLocaleFallsBackToEnglish(t *testing.T) {
	entries, err := NewRenderer().Build(NewContext("", 50, Locale("fr"), testCensus()))
	require.NoError(t, err)
	assert.Equal(t, "Policy Complexity & Implementation Analysis", entries[0].Issue)
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := NewRenderer().Render(English, "no_such_entry", nil)
	assert.Error(t, err)
}

func TestRenderIsStableAcrossCalls(t *testing.T) {
	r := NewRenderer()
	data := map[string]any{"low_income": 12, "elderly": 34}
	a, err := r.Render(English, EntryLowAcceptance, data)
	require.NoError(t, err)
	b, err := r.Render(English, EntryLowAcceptance, data)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a.Reasoning, "Low-income citizens (12% of population)")
}

func TestEveryRuleHasTemplates(t *testing.T) {
	for _, l := range Locales {
		for _, rule := range Rules {
			_, ok := entryTemplates[l][rule.ID]
			assert.True(t, ok, "missing %s template for %s", l, rule.ID)
		}
	}
}

func TestVoices(t *testing.T) {
	ctx := NewContext("Smart housing tax for fintech", 60, English, testCensus())
	voices := Voices(ctx, []float64{0.8, 0.5, 0.1})

	require.Len(t, voices, 5)
	assert.Equal(t, VoiceSupport, voices[0].Type)
	assert.Equal(t, "Tech Professional, Age 32", voices[0].Demographic)
	assert.Equal(t, "Young Family, Sha Tin", voices[1].Demographic)
	assert.Equal(t, VoiceConcern, voices[2].Type)
	assert.Equal(t, VoiceOpposition, voices[3].Type)
	assert.Equal(t, "Middle-aged Professional, Central", voices[3].Demographic)
	assert.Equal(t, VoiceSupport, voices[4].Type)
	assert.Equal(t, "Banking Executive, Age 45", voices[4].Demographic)

	ctx = NewContext("金融科技 plan", 40, Chinese, testCensus())
	voices = Voices(ctx, []float64{0.1})
	require.Len(t, voices, 2)
	assert.Equal(t, "退休人士，大埔", voices[0].Demographic)
	assert.Equal(t, VoiceConcern, voices[1].Type)

	assert.Empty(t, Voices(NewContext("", 50, English, testCensus()), nil))
}

func TestLocaleTables(t *testing.T) {
	assert.Equal(t, Chinese, ParseLocale("zh-HK"))
	assert.Equal(t, Chinese, ParseLocale(" ZH "))
	assert.Equal(t, English, ParseLocale("fr"))
	assert.Equal(t, English, ParseLocale(""))

	assert.Len(t, Criteria(English), 5)
	assert.Len(t, Criteria(Chinese), 5)
	assert.Len(t, SamplePolicies(Chinese), 10)

	en := Phases(English, 5, 1000)
	require.Len(t, en, 6)
	assert.Equal(t, "Generating city model with 1000 AI citizen agents...", en[2])
	assert.Equal(t, "Running 5-year policy simulation with agent interactions...", en[3])

	en = Phases(English, 10, 400)
	assert.Equal(t, "Generating city model with 400 AI citizen agents...", en[2])
	assert.Equal(t, "Running 10-year policy simulation with agent interactions...", en[3])

	zh := Phases(Chinese, 7, 250)
	assert.Equal(t, "生成250個AI市民代理城市模型中...", zh[2])
	assert.Equal(t, "執行7年政策模擬及代理互動中...", zh[3])

	assert.Equal(t, "Inactive", LabelsFor(Locale("xx")).ActivityInactive)
}
