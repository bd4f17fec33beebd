// Package citizens provides the citizen data model, population spawning, and
// the per-citizen policy scoring function.
package citizens

// Occupation is a citizen's primary line of work.
type Occupation string

const (
	OccupationTeacher     Occupation = "teacher"
	OccupationBusiness    Occupation = "business"
	OccupationHealthcare  Occupation = "healthcare"
	OccupationGovernment  Occupation = "government"
	OccupationService     Occupation = "service"
	OccupationTechnology  Occupation = "technology"
	OccupationFinance     Occupation = "finance"
	OccupationRetail      Occupation = "retail"
	OccupationTourism     Occupation = "tourism"
	OccupationLogistics   Occupation = "logistics"
	OccupationFintech     Occupation = "fintech"
	OccupationStartup     Occupation = "startup"
	OccupationCreative    Occupation = "creative"
	OccupationFoodService Occupation = "food_service"

	// OccupationIndustrial is referenced by energy-transition analysis but is
	// never assigned by the spawner, so its count is always zero.
	OccupationIndustrial Occupation = "industrial"
)

// Occupations is the set the spawner draws from.
var Occupations = []Occupation{
	OccupationTeacher, OccupationBusiness, OccupationHealthcare, OccupationGovernment,
	OccupationService, OccupationTechnology, OccupationFinance, OccupationRetail,
	OccupationTourism, OccupationLogistics, OccupationFintech, OccupationStartup,
	OccupationCreative, OccupationFoodService,
}

// District is the home district of a citizen.
type District string

// Districts is the set the spawner draws from.
var Districts = []District{
	"Central", "Wan Chai", "Causeway Bay", "Tsim Sha Tsui",
	"Mong Kok", "Sha Tin", "Tuen Mun", "Tai Po",
}

// Topic is a policy area a citizen cares about.
type Topic string

const (
	TopicHousing     Topic = "housing"
	TopicTransport   Topic = "transport"
	TopicEnvironment Topic = "environment"
	TopicEconomy     Topic = "economy"
	TopicHealthcare  Topic = "healthcare"
	TopicEducation   Topic = "education"
)

// Topics is the fixed priority vocabulary.
var Topics = []Topic{
	TopicHousing, TopicTransport, TopicEnvironment,
	TopicEconomy, TopicHealthcare, TopicEducation,
}

// PriorityCount is the number of distinct priorities each citizen holds.
const PriorityCount = 3

// Attribute ranges for spawning.
const (
	MinAge     = 20
	AgeSpan    = 60 // ages 20–79
	MinIncome  = 20000
	IncomeSpan = 100000 // incomes 20000–119999
)

// Citizen is a disposable, randomly generated resident.
// Citizens are values: a population is regenerated, never mutated.
type Citizen struct {
	ID           int                  `json:"id"`
	Age          int                  `json:"age"`
	Occupation   Occupation           `json:"occupation"`
	Income       int                  `json:"income"`
	District     District             `json:"district"`
	Satisfaction float64              `json:"satisfaction"` // 0–100, informational only
	Priorities   [PriorityCount]Topic `json:"priorities"`
}

// HasPriority reports whether t is among the citizen's priorities.
func (c *Citizen) HasPriority(t Topic) bool {
	for _, p := range c.Priorities {
		if p == t {
			return true
		}
	}
	return false
}
