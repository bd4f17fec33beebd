// Population census: demographic counts consumed by narrative analysis.
package citizens

import "math"

// Population is an immutable collection of citizens.
type Population []Citizen

// Count returns the number of citizens matching pred.
func (p Population) Count(pred func(c *Citizen) bool) int {
	n := 0
	for i := range p {
		if pred(&p[i]) {
			n++
		}
	}
	return n
}

// Census holds the demographic counts narrative rules refer to.
type Census struct {
	Size         int `json:"size"`
	YoungAdults  int `json:"young_adults"`  // 20–35
	MiddleAged   int `json:"middle_aged"`   // 36–55
	Elderly      int `json:"elderly"`       // over 55
	LowIncome    int `json:"low_income"`    // under 40000
	MiddleIncome int `json:"middle_income"` // 40000–80000
	HighIncome   int `json:"high_income"`   // over 80000
	Under40      int `json:"under_40"`
	TechSavvy    int `json:"tech_savvy"` // under 45 earning over 50000

	Occupations map[Occupation]int `json:"occupations"`
}

// Census tallies the population in a single pass.
func (p Population) Census() Census {
	c := Census{
		Size:        len(p),
		Occupations: make(map[Occupation]int, len(Occupations)),
	}
	for i := range p {
		ct := &p[i]
		switch {
		case ct.Age >= 20 && ct.Age <= 35:
			c.YoungAdults++
		case ct.Age >= 36 && ct.Age <= 55:
			c.MiddleAged++
		}
		if ct.Age > 55 {
			c.Elderly++
		}
		switch {
		case ct.Income < 40000:
			c.LowIncome++
		case ct.Income <= 80000:
			c.MiddleIncome++
		default:
			c.HighIncome++
		}
		if ct.Age < 40 {
			c.Under40++
		}
		if ct.Age < 45 && ct.Income > 50000 {
			c.TechSavvy++
		}
		c.Occupations[ct.Occupation]++
	}
	return c
}

// OccupationCount sums the counts for the given occupations.
func (c Census) OccupationCount(occs ...Occupation) int {
	n := 0
	for _, o := range occs {
		n += c.Occupations[o]
	}
	return n
}

// Share converts a head count into a whole-number percentage of the population.
// At the default size of 1000 this is identical to count/10 rounded.
func (c Census) Share(count int) int {
	if c.Size == 0 {
		return 0
	}
	return int(math.Floor(float64(count*100)/float64(c.Size) + 0.5))
}
