// Package engine scores a population against a policy and assembles the
// run result. Runs can be staged through timed progress phases.
package engine

import (
	"context"
	"log/slog"
	"time"
)

// Phase pacing defaults.
const (
	DefaultPhaseDelay = time.Second
	PhasePercentStep  = 16.67
	PulseFromPhase    = 2 // city grid starts animating at the third phase
)

// ProgressFunc receives each phase as it starts.
type ProgressFunc func(phase int, message string, percent float64)

// Stager walks a fixed list of phase messages with a delay after each.
type Stager struct {
	Delay time.Duration

	// Callbacks, populated during setup.
	OnPhase ProgressFunc    // before each phase's delay
	OnPulse func(phase int) // after the delay, from PulseFromPhase onward
}

// NewStager creates a stager with the given delay between phases.
func NewStager(delay time.Duration) *Stager {
	if delay < 0 {
		delay = 0
	}
	return &Stager{Delay: delay}
}

// Run steps through messages. It returns ctx.Err() if cancelled mid-sequence;
// a run either finishes every phase or none of its result is produced.
func (s *Stager) Run(ctx context.Context, messages []string) error {
	slog.Debug("staged run started", "phases", len(messages), "delay", s.Delay)

	for i, msg := range messages {
		if s.OnPhase != nil {
			s.OnPhase(i, msg, float64(i+1)*PhasePercentStep)
		}

		if err := sleepCtx(ctx, s.Delay); err != nil {
			slog.Info("staged run cancelled", "phase", i, "error", err)
			return err
		}

		if i >= PulseFromPhase && s.OnPulse != nil {
			s.OnPulse(i)
		}
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
