package readings

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tidepool-org/glucoguide/users"
)

// CarbsPerUnit is the demo insulin to carbohydrate ratio.
const CarbsPerUnit = 10

type Food struct {
	Name  string `json:"name"`
	Carbs int    `json:"carbs"`
}

var foods = []Food{
	{Name: "Porridge", Carbs: 30},
	{Name: "Haggis", Carbs: 20},
	{Name: "Shortbread", Carbs: 15},
}

func Foods() []Food {
	return append([]Food(nil), foods...)
}

// EstimateInsulin returns the whole number of units covering carbs grams,
// rounding halves up.
func EstimateInsulin(carbs float64) int {
	return int(math.Floor(carbs/CarbsPerUnit + 0.5))
}

type Reading struct {
	Username   string    `json:"username"`
	Value      float64   `json:"value"`
	MeasuredAt time.Time `json:"measuredAt"`
}

// Simulator draws current glucose readings within the target range of a
// profile.
type Simulator struct {
	mu   sync.Mutex
	rand *rand.Rand
	now  func() time.Time
}

func NewSimulator() *Simulator {
	return NewSimulatorWithSource(rand.NewSource(time.Now().UnixNano()), time.Now)
}

func NewSimulatorWithSource(source rand.Source, now func() time.Time) *Simulator {
	return &Simulator{
		rand: rand.New(source),
		now:  now,
	}
}

func (s *Simulator) Current(profile users.Profile) Reading {
	s.mu.Lock()
	r := s.rand.Float64()
	s.mu.Unlock()

	value := r*(profile.MaxGlucose-profile.MinGlucose) + profile.MinGlucose
	return Reading{
		Username:   profile.Username,
		Value:      decimal.NewFromFloat(value).Round(1).InexactFloat64(),
		MeasuredAt: s.now().UTC(),
	}
}
