// Population spawning: uniform demographics for a fixed-size population.
package citizens

import (
	"github.com/talgya/urban-sandbox/internal/entropy"
)

// DefaultPopulation is the population size used when none is configured.
const DefaultPopulation = 1000

// Spawner creates citizens from an injected random source.
type Spawner struct {
	rng entropy.Source
}

// NewSpawner creates a spawner drawing from src.
func NewSpawner(src entropy.Source) *Spawner {
	return &Spawner{rng: src}
}

// SpawnPopulation creates n independent citizens with sequential IDs from 0.
func (s *Spawner) SpawnPopulation(n int) Population {
	if n < 0 {
		n = 0
	}
	pop := make(Population, 0, n)
	for i := 0; i < n; i++ {
		pop = append(pop, s.spawnOne(i))
	}
	return pop
}

func (s *Spawner) spawnOne(id int) Citizen {
	age := s.rng.Intn(AgeSpan) + MinAge
	occ := Occupations[s.rng.Intn(len(Occupations))]
	income := s.rng.Intn(IncomeSpan) + MinIncome
	district := Districts[s.rng.Intn(len(Districts))]

	return Citizen{
		ID:           id,
		Age:          age,
		Occupation:   occ,
		Income:       income,
		District:     district,
		Satisfaction: s.rng.Float64() * 100,
		Priorities:   s.priorities(),
	}
}

// priorities draws PriorityCount distinct topics with a partial Fisher–Yates shuffle.
func (s *Spawner) priorities() [PriorityCount]Topic {
	pool := make([]Topic, len(Topics))
	copy(pool, Topics)

	var out [PriorityCount]Topic
	for i := 0; i < PriorityCount; i++ {
		j := i + s.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		out[i] = pool[i]
	}
	return out
}
