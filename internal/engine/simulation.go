// Simulation ties the population, narrative and regional systems together
// and produces one Result per run.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/urban-sandbox/internal/citizens"
	"github.com/talgya/urban-sandbox/internal/citygrid"
	"github.com/talgya/urban-sandbox/internal/entropy"
	"github.com/talgya/urban-sandbox/internal/narrative"
	"github.com/talgya/urban-sandbox/internal/regions"
)

// ErrInvalidInput is returned for an empty policy or a non-positive year count.
var ErrInvalidInput = errors.New("invalid input")

// Config holds simulation construction parameters.
type Config struct {
	Population int               // 0 = citizens.DefaultPopulation
	Seed       int64             // 0 = crypto-random
	PhaseDelay time.Duration     // pause between staged phases
	Regions    *regions.Adjuster // optional
}

// Request is one run's input.
type Request struct {
	Policy string           `json:"policy"`
	Years  int              `json:"years"`
	Locale narrative.Locale `json:"locale"`
}

// Result is the complete output of a run. It is never merged with earlier runs.
type Result struct {
	RunID             string             `json:"run_id"`
	CreatedAt         time.Time          `json:"created_at"`
	Policy            string             `json:"policy"`
	Locale            narrative.Locale   `json:"locale"`
	Years             int                `json:"years"`
	SupportPercentage int                `json:"support_percentage"`
	Criteria          []string           `json:"criteria"`
	Vulnerabilities   []narrative.Entry  `json:"vulnerabilities"`
	EnvironmentalData map[string]float64 `json:"environmental_data"`
	HerdingAnalysis   HerdingAnalysis    `json:"herding_analysis"`
	CitizenVoices     []narrative.Voice  `json:"citizen_voices"`
	TrendData         TrendData          `json:"trend_data"`
	RegionalSupport   map[string]int     `json:"regional_support,omitempty"`
	ActivityLevel     citygrid.Level     `json:"activity_level"`
	ActivityLabel     string             `json:"activity_label"`
	Seed              int64              `json:"seed"`
	Population        int                `json:"population"`
}

// Simulation owns an immutable population and a seeded master source.
// Run and RunStaged are safe for concurrent use.
type Simulation struct {
	mu     sync.RWMutex
	pop    citizens.Population
	census citizens.Census
	grid   *citygrid.Grid
	master *entropy.Locked
	seed   int64
	size   int

	renderer   *narrative.Renderer
	regions    *regions.Adjuster
	phaseDelay time.Duration
}

// NewSimulation spawns the population and city grid for cfg.
func NewSimulation(cfg Config) (*Simulation, error) {
	if cfg.Population < 0 {
		return nil, fmt.Errorf("population must be non-negative, got %d", cfg.Population)
	}
	size := cfg.Population
	if size == 0 {
		size = citizens.DefaultPopulation
	}

	s := &Simulation{
		size:       size,
		renderer:   narrative.NewRenderer(),
		regions:    cfg.Regions,
		phaseDelay: cfg.PhaseDelay,
	}
	s.Reseed(cfg.Seed)
	return s, nil
}

// Reseed regenerates the population and grid from seed (0 = crypto-random)
// and returns the seed used.
func (s *Simulation) Reseed(seed int64) int64 {
	if seed == 0 {
		seed = entropy.RandomSeed()
	}
	// Independent streams per concern, as offsets of the base seed.
	pop := citizens.NewSpawner(entropy.NewSeeded(seed)).SpawnPopulation(s.size)
	grid := citygrid.New(entropy.NewSeeded(seed+100), seed+200)
	master := entropy.NewLocked(entropy.NewSeeded(seed + 300))

	s.mu.Lock()
	s.pop = pop
	s.census = pop.Census()
	s.grid = grid
	s.master = master
	s.seed = seed
	s.mu.Unlock()

	slog.Info("population generated", "size", len(pop), "seed", seed)
	return seed
}

// Seed returns the seed the current population was generated from.
func (s *Simulation) Seed() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seed
}

// Census returns the demographic counts of the current population.
func (s *Simulation) Census() citizens.Census {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.census
}

// Population returns the current population. Callers must not modify it.
func (s *Simulation) Population() citizens.Population {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pop
}

// Grid returns the current city grid.
func (s *Simulation) Grid() *citygrid.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid
}

// Regions returns the regional adjuster, or nil if none is configured.
func (s *Simulation) Regions() *regions.Adjuster { return s.regions }

// Validate checks a request and normalizes its locale.
func Validate(req Request) (Request, error) {
	if strings.TrimSpace(req.Policy) == "" {
		return req, fmt.Errorf("%w: policy text is empty", ErrInvalidInput)
	}
	if req.Years <= 0 {
		return req, fmt.Errorf("%w: years must be positive, got %d", ErrInvalidInput, req.Years)
	}
	req.Locale = narrative.ParseLocale(string(req.Locale))
	return req, nil
}

// Run computes a result immediately, without staged phases.
func (s *Simulation) Run(ctx context.Context, req Request) (*Result, error) {
	req, err := Validate(req)
	if err != nil {
		return nil, err
	}
	return s.compute(ctx, req)
}

// RunStaged resets the city grid, walks the localized phase messages, pausing
// PhaseDelay after each and pulsing the grid, then computes the result.
// progress may be nil.
func (s *Simulation) RunStaged(ctx context.Context, req Request, progress ProgressFunc) (*Result, error) {
	req, err := Validate(req)
	if err != nil {
		return nil, err
	}

	// Each staged run animates the grid from rest.
	grid := s.Grid()
	grid.Reset()
	stager := NewStager(s.phaseDelay)
	stager.OnPhase = progress
	stager.OnPulse = func(int) { grid.Pulse() }

	if err := stager.Run(ctx, narrative.Phases(req.Locale, req.Years, len(s.Population()))); err != nil {
		return nil, fmt.Errorf("staged run: %w", err)
	}
	return s.compute(ctx, req)
}

func (s *Simulation) compute(ctx context.Context, req Request) (*Result, error) {
	s.mu.RLock()
	pop, census, grid, master, popSeed := s.pop, s.census, s.grid, s.master, s.seed
	s.mu.RUnlock()

	rng, runSeed := master.Derive()

	scores := ScorePopulation(pop, req.Policy, rng)
	support := scores.Percentage

	nctx := narrative.NewContext(req.Policy, support, req.Locale, census)
	entries, err := s.renderer.Build(nctx)
	if err != nil {
		return nil, fmt.Errorf("build narrative: %w", err)
	}

	level := grid.Level()
	res := &Result{
		RunID:             uuid.NewString(),
		CreatedAt:         time.Now().UTC(),
		Policy:            req.Policy,
		Locale:            req.Locale,
		Years:             req.Years,
		SupportPercentage: support,
		Criteria:          narrative.Criteria(req.Locale),
		Vulnerabilities:   entries,
		EnvironmentalData: EnvironmentalData(req.Policy, support),
		HerdingAnalysis:   AnalyzeHerding(scores.PerCitizen),
		CitizenVoices:     narrative.Voices(nctx, scores.PerCitizen),
		TrendData:         SynthesizeTrend(support, req.Policy, req.Years, rng),
		ActivityLevel:     level,
		ActivityLabel:     citygrid.Label(req.Locale, level),
		Seed:              popSeed,
		Population:        len(pop),
	}

	if s.regions != nil {
		figures, err := s.regions.Apply(ctx, req.Policy, support)
		if err != nil {
			// The figures are still valid; only the shared cache is stale.
			slog.Warn("regional cache update failed", "run_id", res.RunID, "error", err)
		}
		res.RegionalSupport = figures
	}

	slog.Info("simulation run",
		"run_id", res.RunID,
		"support", support,
		"years", req.Years,
		"locale", req.Locale,
		"entries", len(entries),
		"run_seed", runSeed,
	)
	return res, nil
}
