// Regional adjustment: per-district support derived from the overall figure.
package regions

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Support bounds for an adjusted district figure.
const (
	MinSupport = 5
	MaxSupport = 95
)

// Adjuster computes district figures and stores the latest set in a Cache.
type Adjuster struct {
	regions []Region
	domains []Domain
	cache   Cache
}

// NewAdjuster creates an adjuster over the default tables. A nil cache gets
// an in-memory one.
func NewAdjuster(cache Cache) *Adjuster {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Adjuster{regions: Districts, domains: Domains, cache: cache}
}

// Cache returns the store holding the latest adjusted figures.
func (a *Adjuster) Cache() Cache { return a.cache }

// Adjust returns overall support biased per district for the policy text.
// The result also carries the unadjusted figure under OverallKey.
func (a *Adjuster) Adjust(policy string, overall int) map[string]int {
	lower := strings.ToLower(policy)

	var matched []Domain
	for _, d := range a.domains {
		if d.Keywords.In(lower) {
			matched = append(matched, d)
		}
	}

	out := make(map[string]int, len(a.regions)+1)
	out[OverallKey] = overall
	for _, r := range a.regions {
		v := float64(overall)
		for _, d := range matched {
			for _, w := range d.weights {
				v += (r.Traits[w.trait] - 0.5) * w.w
			}
		}
		out[r.ID] = int(math.Round(clamp(v, MinSupport, MaxSupport)))
	}
	return out
}

// Apply adjusts and overwrites the cache with the new figures.
func (a *Adjuster) Apply(ctx context.Context, policy string, overall int) (map[string]int, error) {
	figures := a.Adjust(policy, overall)
	if err := a.cache.Replace(ctx, figures); err != nil {
		return figures, fmt.Errorf("replace regional cache: %w", err)
	}
	slog.Debug("regional support updated", "regions", len(figures)-1, "overall", overall)
	return figures, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
