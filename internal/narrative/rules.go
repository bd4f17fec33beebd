// Rule table: ordered keyword/support predicates that select analysis entries.
package narrative

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/talgya/urban-sandbox/internal/citizens"
)

// Context is everything a rule may look at.
type Context struct {
	Text    string // raw policy text
	Policy  string // lower-cased policy text
	Support int    // aggregate support percentage
	Locale  Locale
	Census  citizens.Census
}

// NewContext builds a rule context for one run.
func NewContext(text string, support int, locale Locale, census citizens.Census) Context {
	return Context{
		Text:    text,
		Policy:  lowerText(text),
		Support: support,
		Locale:  locale,
		Census:  census,
	}
}

// Rule selects one entry. Exclusive rules form a first-match-wins cascade;
// the rest are evaluated independently.
type Rule struct {
	ID        string
	Exclusive bool
	Match     func(ctx Context) bool
	Data      func(ctx Context) map[string]any
}

func keywordMatch(kw Keywords) func(Context) bool {
	return func(ctx Context) bool { return kw.In(ctx.Policy) }
}

func always(Context) bool { return true }

func noData(Context) map[string]any { return nil }

// Housing baseline figures.
const (
	housingBaseUnits     = 18000
	housingDefaultTarget = 30
	housingUnitsPerYear  = 5000
	housingCostPerUnit   = 2.5 // HK$ millions per thousand units
)

// Rules is the dispatch table, in evaluation order.
var Rules = []Rule{
	{
		ID:    EntryLowAcceptance,
		Match: func(ctx Context) bool { return ctx.Support < 40 },
		Data: func(ctx Context) map[string]any {
			return map[string]any{
				"low_income": ctx.Census.Share(ctx.Census.LowIncome),
				"elderly":    ctx.Census.Share(ctx.Census.Elderly),
			}
		},
	},
	{
		ID:        EntryRetail,
		Exclusive: true,
		Match:     keywordMatch(kwRetail),
		Data: func(ctx Context) map[string]any {
			return map[string]any{
				"retail_workers":  ctx.Census.Share(ctx.Census.OccupationCount(citizens.OccupationRetail, citizens.OccupationLogistics)),
				"young_consumers": ctx.Census.Share(ctx.Census.Under40),
			}
		},
	},
	{
		ID:        EntryTourism,
		Exclusive: true,
		Match:     keywordMatch(kwTourism),
		Data: func(ctx Context) map[string]any {
			return map[string]any{
				"tourism_workers": ctx.Census.Share(ctx.Census.OccupationCount(citizens.OccupationTourism, citizens.OccupationService)),
			}
		},
	},
	{
		ID:        EntryFoodService,
		Exclusive: true,
		Match:     keywordMatch(kwFood),
		Data: func(ctx Context) map[string]any {
			return map[string]any{
				"fb_workers": ctx.Census.Share(ctx.Census.OccupationCount(citizens.OccupationFoodService, citizens.OccupationService)),
			}
		},
	},
	{
		ID:        EntryFintech,
		Exclusive: true,
		Match:     keywordMatch(kwFintech),
		Data: func(ctx Context) map[string]any {
			return map[string]any{
				"fintech_workers": ctx.Census.Share(ctx.Census.OccupationCount(citizens.OccupationFintech, citizens.OccupationFinance)),
				"tech_savvy":      ctx.Census.Share(ctx.Census.TechSavvy),
			}
		},
	},
	{
		ID:        EntryTax,
		Exclusive: true,
		Match:     keywordMatch(kwTaxCarbon),
		Data: func(ctx Context) map[string]any {
			return map[string]any{
				"business_workers": ctx.Census.Share(ctx.Census.OccupationCount(citizens.OccupationBusiness, citizens.OccupationFinance)),
				"middle_income":    ctx.Census.Share(ctx.Census.MiddleIncome),
			}
		},
	},
	{
		ID:    EntryHousing,
		Match: keywordMatch(kwHousing),
		Data:  housingData,
	},
	{
		ID:    EntryTransport,
		Match: keywordMatch(kwTransport),
		Data:  noData,
	},
	{
		ID:    EntryEnergyTransition,
		Match: keywordMatch(kwEnergy),
		Data: func(ctx Context) map[string]any {
			return map[string]any{
				"industrial_workers": ctx.Census.Share(ctx.Census.OccupationCount(citizens.OccupationIndustrial)),
			}
		},
	},
	{
		ID:    EntryWelfare,
		Match: keywordMatch(kwWelfare),
		Data:  noData,
	},
	{
		ID:    EntryComplexity,
		Match: always,
		Data:  complexityData,
	},
	{
		ID:    EntryAffectedGroups,
		Match: always,
		Data:  affectedGroupsData,
	},
	{
		ID:    EntryOptimization,
		Match: func(ctx Context) bool { return ctx.Support >= 60 },
		Data: func(ctx Context) map[string]any {
			return map[string]any{
				"support":       ctx.Support,
				"young_adults":  ctx.Census.Share(ctx.Census.YoungAdults),
				"middle_income": ctx.Census.Share(ctx.Census.MiddleIncome),
			}
		},
	},
	{
		ID:    EntryRedesign,
		Match: func(ctx Context) bool { return ctx.Support <= 35 },
		Data: func(ctx Context) map[string]any {
			return map[string]any{
				"support":     ctx.Support,
				"elderly":     ctx.Census.Share(ctx.Census.Elderly),
				"low_income":  ctx.Census.Share(ctx.Census.LowIncome),
				"high_income": ctx.Census.Share(ctx.Census.HighIncome),
			}
		},
	},
}

// HousingTarget extracts the first "N%" figure from text, defaulting to 30.
func HousingTarget(text string) int {
	m := percentPattern.FindStringSubmatch(text)
	if m == nil {
		return housingDefaultTarget
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return housingDefaultTarget
	}
	return n
}

func housingData(ctx Context) map[string]any {
	target := HousingTarget(ctx.Text)
	required := roundHalfUp(housingBaseUnits * (1 + float64(target)/100))
	shortfall := required - housingBaseUnits
	return map[string]any{
		"target_increase":   target,
		"required_units":    required,
		"shortfall":         shortfall,
		"additional_years":  roundHalfUp(float64(shortfall) / housingUnitsPerYear),
		"extra_budget":      roundHalfUp(float64(shortfall) * housingCostPerUnit),
		"three_year_target": roundHalfUp(float64(target) * 0.7),
		"young_adults":      ctx.Census.Share(ctx.Census.YoungAdults),
	}
}

func complexityData(ctx Context) map[string]any {
	c := AnalyzeComplexity(ctx.Text)
	g := IdentifyAffectedGroups(ctx.Text, ctx.Support)
	return map[string]any{
		"level":             string(c.Level),
		"score":             c.Score,
		"support":           ctx.Support,
		"departments":       c.Departments(),
		"checkpoints":       c.Checkpoints(),
		"budget":            c.BudgetPercent(),
		"affected_share":    g.AffectedShare(),
		"timeline_label":    timelineLabel(ctx.Locale, AssessTimeline(ctx.Support)),
		"primary_labels":    GroupLabels(ctx.Locale, g.Primary),
		"supportive_labels": GroupLabels(ctx.Locale, g.Supportive),
		"resistant_labels":  GroupLabels(ctx.Locale, g.Resistant),
	}
}

func affectedGroupsData(ctx Context) map[string]any {
	g := IdentifyAffectedGroups(ctx.Text, ctx.Support)
	return map[string]any{
		"support":           ctx.Support,
		"total_affected":    g.TotalAffected,
		"affected_share":    g.AffectedShare(),
		"primary_labels":    GroupLabels(ctx.Locale, g.Primary),
		"supportive_labels": GroupLabels(ctx.Locale, g.Supportive),
		"resistant_labels":  GroupLabels(ctx.Locale, g.Resistant),
		"has_supportive":    len(g.Supportive) > 0,
		"has_resistant":     len(g.Resistant) > 0,
	}
}

// Build evaluates the rule table against ctx and renders the selected entries.
func (r *Renderer) Build(ctx Context) ([]Entry, error) {
	return r.BuildWith(Rules, ctx)
}

// BuildWith is Build over a caller-supplied rule table.
func (r *Renderer) BuildWith(rules []Rule, ctx Context) ([]Entry, error) {
	var (
		entries  []Entry
		cascaded bool
	)
	for _, rule := range rules {
		if rule.Exclusive && cascaded {
			continue
		}
		if !rule.Match(ctx) {
			continue
		}
		if rule.Exclusive {
			cascaded = true
		}

		var data map[string]any
		if rule.Data != nil {
			data = rule.Data(ctx)
		}
		entry, err := r.Render(ctx.Locale, rule.ID, data)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", rule.ID, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func lowerText(s string) string {
	return strings.ToLower(s)
}
