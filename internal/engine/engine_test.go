package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/urban-sandbox/internal/citizens"
	"github.com/talgya/urban-sandbox/internal/citygrid"
	"github.com/talgya/urban-sandbox/internal/entropy"
	"github.com/talgya/urban-sandbox/internal/narrative"
	"github.com/talgya/urban-sandbox/internal/regions"
)

// countingSource always returns 0.5 (zero noise) and counts draws.
type countingSource struct{ floats int }

func (c *countingSource) Float64() float64 { c.floats++; return 0.5 }
func (c *countingSource) Intn(int) int     { return 0 }
func (c *countingSource) Int63() int64     { return 1 }

func citizen(age, income int, occ citizens.Occupation) citizens.Citizen {
	return citizens.Citizen{
		Age:        age,
		Income:     income,
		Occupation: occ,
		District:   citizens.Districts[0],
		Priorities: [citizens.PriorityCount]citizens.Topic{citizens.TopicHousing, citizens.TopicTransport, citizens.TopicEconomy},
	}
}

func TestScorePopulationTwoPasses(t *testing.T) {
	pop := citizens.Population{citizen(70, 90000, citizens.OccupationRetail)}

	src := &countingSource{}
	s := ScorePopulation(pop, "New TAX bands", src)
	assert.Equal(t, 2, src.floats, "exactly one draw per citizen per pass")
	assert.InDelta(t, 0.2, s.FirstPassMean, 1e-9)
	assert.InDelta(t, 0.11, s.Mean, 1e-9)
	assert.Equal(t, 11, s.Percentage)
	require.Len(t, s.PerCitizen, 1)

	neutral := ScorePopulation(pop, "nothing relevant", &countingSource{})
	assert.Equal(t, 50, neutral.Percentage)

	clamped := ScorePopulation(citizens.Population{citizen(25, 25000, citizens.OccupationRetail)}, "public housing", &countingSource{})
	assert.Equal(t, 100, clamped.Percentage)
}

func TestScorePopulationEmpty(t *testing.T) {
	s := ScorePopulation(nil, "housing", &countingSource{})
	assert.Equal(t, 50, s.Percentage)
	assert.Empty(t, s.PerCitizen)
}

func TestScorePercentageInRange(t *testing.T) {
	policies := []string{"", "housing", "carbon tax", "green healthcare for the elderly", "public education regulation"}
	for seed := int64(1); seed <= 5; seed++ {
		pop := citizens.NewSpawner(entropy.NewSeeded(seed)).SpawnPopulation(300)
		for _, p := range policies {
			s := ScorePopulation(pop, p, entropy.NewSeeded(seed))
			assert.GreaterOrEqual(t, s.Percentage, 0)
			assert.LessOrEqual(t, s.Percentage, 100)
			for _, v := range s.PerCitizen {
				assert.True(t, v >= 0 && v <= 1)
			}
		}
	}
}

func TestAnalyzeHerding(t *testing.T) {
	h := AnalyzeHerding([]float64{0.8, 0.9, 0.1, 0.5})
	assert.Equal(t, HerdingAnalysis{
		StrongSupport:    2,
		StrongOpposition: 1,
		HerdingStrength:  25,
		DominantTrend:    TrendSupport,
		Polarization:     75,
	}, h)

	tie := AnalyzeHerding([]float64{0.9, 0.1})
	assert.Equal(t, TrendOpposition, tie.DominantTrend)
	assert.Equal(t, 0, tie.HerdingStrength)
	assert.Equal(t, 100, tie.Polarization)

	edges := AnalyzeHerding([]float64{0.7, 0.3})
	assert.Equal(t, 0, edges.Polarization)

	empty := AnalyzeHerding(nil)
	assert.Equal(t, HerdingAnalysis{DominantTrend: TrendOpposition}, empty)
}

func TestHerdingNeverExceedsPolarization(t *testing.T) {
	rng := entropy.NewSeeded(99)
	for i := 0; i < 50; i++ {
		scores := make([]float64, 1+rng.Intn(200))
		for j := range scores {
			scores[j] = rng.Float64()
		}
		h := AnalyzeHerding(scores)
		assert.LessOrEqual(t, h.HerdingStrength, h.Polarization)
		assert.GreaterOrEqual(t, h.HerdingStrength, 0)
		assert.LessOrEqual(t, h.Polarization, 100)
	}
}

func TestEnvironmentalData(t *testing.T) {
	smart := EnvironmentalData("Smart city sensors", 50)
	require.Len(t, smart, 4)
	assert.InDelta(t, 61, smart["digital_adoption"], 1e-9)
	assert.InDelta(t, 54, smart["government_efficiency"], 1e-9)
	assert.InDelta(t, 62, smart["citizen_satisfaction"], 1e-9)
	assert.InDelta(t, 53, smart["innovation_index"], 1e-9)

	low := EnvironmentalData("fintech", 0)
	assert.InDelta(t, 30, low["economic_growth"], 1e-9)
	assert.InDelta(t, 25, low["job_creation"], 1e-9)

	green := EnvironmentalData("綠色 policy", 100)
	assert.InDelta(t, 74, green["air_quality"], 1e-9)
	assert.InDelta(t, 80, green["water_quality"], 1e-9)
	assert.InDelta(t, 57, green["renewable_energy"], 1e-9)
	assert.InDelta(t, 68, green["waste_reduction"], 1e-9)

	assert.Len(t, EnvironmentalData("smart green retail", 60), 12)
	assert.Empty(t, EnvironmentalData("nothing relevant", 60))
}

func TestTrendDeterministicDomains(t *testing.T) {
	tests := []struct {
		name    string
		policy  string
		initial int
		years   int
		want    []int
	}{
		{"housing", "Build more public housing", 50, 5, []int{50, 48, 46, 49, 52, 55}},
		{"tax", "Carbon TAX", 50, 3, []int{50, 47, 48, 49}},
		{"environment clamps high", "protect the environment", 89, 2, []int{89, 90, 90}},
		{"tech", "smart lamps", 20, 3, []int{20, 21, 24, 27}},
		{"housing wins over tax", "housing tax", 50, 1, []int{50, 48}},
		{"initial kept unclamped", "housing", 95, 1, []int{95, 90}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td := SynthesizeTrend(tt.initial, tt.policy, tt.years, entropy.NewSeeded(1))
			assert.Equal(t, tt.want, td.Support)
		})
	}
}

func TestTrendProperties(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		years := int(seed)
		initial := int(seed * 5)
		td := SynthesizeTrend(initial, "a random policy", years, entropy.NewSeeded(seed))

		require.Equal(t, years+1, td.Len())
		assert.Len(t, td.Support, years+1)
		assert.Len(t, td.Opposition, years+1)
		assert.Len(t, td.EconomicImpact, years+1)
		assert.Len(t, td.EnvironmentalImpact, years+1)
		assert.Len(t, td.SocialSatisfaction, years+1)
		assert.Equal(t, initial, td.Support[0])

		for i := range td.Years {
			assert.Equal(t, i, td.Years[i])
			assert.Equal(t, 100, td.Support[i]+td.Opposition[i])
			if i > 0 {
				assert.GreaterOrEqual(t, td.Support[i], TrendMinSupport)
				assert.LessOrEqual(t, td.Support[i], TrendMaxSupport)
			}
			assert.GreaterOrEqual(t, td.EconomicImpact[i], 50+3*i)
			assert.LessOrEqual(t, td.EconomicImpact[i], 60+3*i)
			assert.GreaterOrEqual(t, td.EnvironmentalImpact[i], 40+2*i)
			assert.LessOrEqual(t, td.EnvironmentalImpact[i], 48+2*i)
		}
	}
}

func TestTrendBases(t *testing.T) {
	td := SynthesizeTrend(50, "carbon tax for the environment", 0, entropy.NewSeeded(3))
	require.Equal(t, 1, td.Len())
	assert.GreaterOrEqual(t, td.EconomicImpact[0], 30)
	assert.LessOrEqual(t, td.EconomicImpact[0], 40)
	assert.GreaterOrEqual(t, td.EnvironmentalImpact[0], 60)
	assert.LessOrEqual(t, td.EnvironmentalImpact[0], 68)
}

func TestStagerPhases(t *testing.T) {
	var (
		msgs     []string
		percents []float64
		pulses   []int
	)
	st := NewStager(0)
	st.OnPhase = func(_ int, msg string, pct float64) {
		msgs = append(msgs, msg)
		percents = append(percents, pct)
	}
	st.OnPulse = func(i int) { pulses = append(pulses, i) }

	phases := narrative.Phases(narrative.English, 5, 100)
	require.NoError(t, st.Run(context.Background(), phases))
	assert.Equal(t, phases, msgs)
	assert.InDelta(t, 16.67, percents[0], 1e-9)
	assert.InDelta(t, 100.02, percents[5], 1e-9)
	assert.Equal(t, []int{2, 3, 4, 5}, pulses)
}

func TestStagerCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	st := NewStager(time.Hour)
	st.OnPhase = func(int, string, float64) { calls++; cancel() }

	err := st.Run(ctx, []string{"a", "b", "c"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func newTestSim(t *testing.T, cfg Config) *Simulation {
	t.Helper()
	sim, err := NewSimulation(cfg)
	require.NoError(t, err)
	return sim
}

func TestRunRejectsInvalidInput(t *testing.T) {
	sim := newTestSim(t, Config{Population: 50, Seed: 7})
	ctx := context.Background()

	for _, req := range []Request{
		{Policy: "", Years: 5},
		{Policy: "   \t\n", Years: 5},
		{Policy: "housing", Years: 0},
		{Policy: "housing", Years: -3},
	} {
		_, err := sim.Run(ctx, req)
		assert.True(t, errors.Is(err, ErrInvalidInput), "request %+v: %v", req, err)
	}

	_, err := NewSimulation(Config{Population: -1})
	assert.Error(t, err)
}

func TestRunHousingScenario(t *testing.T) {
	sim := newTestSim(t, Config{Seed: 7})
	res, err := sim.Run(context.Background(), Request{
		Policy: "Increase public housing supply by 30% over 5 years",
		Years:  5,
	})
	require.NoError(t, err)

	assert.Equal(t, citizens.DefaultPopulation, res.Population)
	assert.Equal(t, narrative.English, res.Locale)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, int64(7), res.Seed)
	assert.Len(t, res.Criteria, 5)
	assert.Equal(t, 6, res.TrendData.Len())
	assert.Equal(t, res.SupportPercentage, res.TrendData.Support[0])
	assert.Equal(t, citygrid.LevelInactive, res.ActivityLevel)
	assert.Nil(t, res.RegionalSupport)

	var housing *narrative.Entry
	for i := range res.Vulnerabilities {
		if res.Vulnerabilities[i].ID == narrative.EntryHousing {
			housing = &res.Vulnerabilities[i]
		}
	}
	require.NotNil(t, housing)
	assert.Equal(t, 30, housing.Data["target_increase"])
	assert.Equal(t, 23400, housing.Data["required_units"])
	assert.Equal(t, 5400, housing.Data["shortfall"])
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	req := Request{Policy: "Mandate 50% renewable energy for all new buildings", Years: 8, Locale: "zh"}

	a, err := newTestSim(t, Config{Population: 400, Seed: 21}).Run(context.Background(), req)
	require.NoError(t, err)
	b, err := newTestSim(t, Config{Population: 400, Seed: 21}).Run(context.Background(), req)
	require.NoError(t, err)

	ignore := cmpopts.IgnoreFields(Result{}, "RunID", "CreatedAt")
	if diff := cmp.Diff(a, b, ignore); diff != "" {
		t.Errorf("same seed produced different results (-a +b):\n%s", diff)
	}
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, narrative.Chinese, a.Locale)
	assert.Equal(t, narrative.Criteria(narrative.Chinese), a.Criteria)
}

func TestRunStaged(t *testing.T) {
	sim := newTestSim(t, Config{Population: 100, Seed: 3})

	var msgs []string
	res, err := sim.RunStaged(context.Background(), Request{Policy: "Expand MTR network", Years: 12}, func(_ int, msg string, _ float64) {
		msgs = append(msgs, msg)
	})
	require.NoError(t, err)
	require.Len(t, msgs, 6)
	assert.Equal(t, "Generating city model with 100 AI citizen agents...", msgs[2])
	assert.Equal(t, "Running 12-year policy simulation with agent interactions...", msgs[3])
	assert.NotEqual(t, citygrid.LevelInactive, res.ActivityLevel)
	assert.NotEmpty(t, res.ActivityLabel)
}

func TestRunStagedCancelled(t *testing.T) {
	sim := newTestSim(t, Config{Population: 10, Seed: 3, PhaseDelay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.RunStaged(ctx, Request{Policy: "housing", Years: 1}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunStagedStartsGridFromRest(t *testing.T) {
	sim := newTestSim(t, Config{Population: 10, Seed: 3, PhaseDelay: time.Hour})
	grid := sim.Grid()
	for i := 0; i < 3; i++ {
		grid.Pulse()
	}
	require.NotZero(t, totalIntensity(grid))

	// Cancelled before the first pulse, so only the reset is observable.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sim.RunStaged(ctx, Request{Policy: "housing", Years: 1}, nil)
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, citygrid.LevelInactive, grid.Level())
	assert.Zero(t, totalIntensity(grid))
}

func totalIntensity(g *citygrid.Grid) float64 {
	total := 0.0
	for _, b := range g.Blocks() {
		total += b.Intensity
	}
	return total
}

func TestRunWithRegions(t *testing.T) {
	adj := regions.NewAdjuster(nil)
	sim := newTestSim(t, Config{Population: 200, Seed: 5, Regions: adj})

	res, err := sim.Run(context.Background(), Request{Policy: "Expand MTR network", Years: 3})
	require.NoError(t, err)
	assert.Len(t, res.RegionalSupport, len(regions.Districts)+1)
	assert.Equal(t, res.SupportPercentage, res.RegionalSupport[regions.OverallKey])

	cached, err := adj.Cache().All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, res.RegionalSupport, cached)
}

func TestRunConcurrent(t *testing.T) {
	sim := newTestSim(t, Config{Population: 200, Seed: 11})

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := sim.Run(context.Background(), Request{Policy: "green tax", Years: 4})
			if err == nil && (res.SupportPercentage < 0 || res.SupportPercentage > 100) {
				err = errors.New("support out of range")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestReseed(t *testing.T) {
	sim := newTestSim(t, Config{Population: 50, Seed: 1})
	before := sim.Population()

	assert.Equal(t, int64(2), sim.Reseed(2))
	assert.Equal(t, int64(2), sim.Seed())
	assert.Len(t, sim.Population(), 50)
	assert.NotEqual(t, before, sim.Population())
	assert.Equal(t, 50, sim.Census().Size)

	assert.NotZero(t, sim.Reseed(0))
}
