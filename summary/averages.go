package summary

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tidepool-org/glucoguide/observations"
)

type accumulator struct {
	bloodGlucose float64
	carbIntake   float64
	insulin      float64
	count        int
}

func (a *accumulator) add(o observations.Observation) {
	a.bloodGlucose += o.BloodGlucose.Float64()
	a.carbIntake += o.CarbIntake.Float64()
	a.insulin += o.Insulin.Float64()
	a.count++
}

func (a *accumulator) average() Average {
	return Average{
		BloodGlucose: mean(a.bloodGlucose, a.count),
		CarbIntake:   mean(a.carbIntake, a.count),
		Insulin:      mean(a.insulin, a.count),
	}
}

// mean rounds the shortest decimal representation of the quotient half away
// from zero, so a mean of 1.45 renders as 1.5.
func mean(sum float64, count int) string {
	if count == 0 {
		return NotAvailable
	}
	return decimal.NewFromFloat(sum / float64(count)).StringFixed(1)
}

type grouping struct {
	keys         []string
	accumulators map[string]*accumulator
}

func newGrouping() *grouping {
	return &grouping{accumulators: map[string]*accumulator{}}
}

func (g *grouping) add(key string, o observations.Observation) {
	acc, ok := g.accumulators[key]
	if !ok {
		acc = &accumulator{}
		g.accumulators[key] = acc
		g.keys = append(g.keys, key)
	}
	acc.add(o)
}

func (g *grouping) buckets() *Buckets {
	buckets := NewBuckets()
	for _, key := range g.keys {
		buckets.Set(key, g.accumulators[key].average())
	}
	return buckets
}

// CalculateAverages groups a history by calendar day, week of month and
// month and computes the mean of each measurement per bucket. Buckets appear
// in the order in which their first observation appears in history.
// Measurements that can't be parsed contribute zero to the sum but still
// count towards the mean.
func CalculateAverages(history []observations.Observation) Averages {
	daily := newGrouping()
	weekly := newGrouping()
	monthly := newGrouping()
	skipped := 0

	for _, o := range history {
		date, err := ParseDate(o.Date)
		if err != nil {
			skipped++
			continue
		}

		daily.add(DayKey(date), o)
		weekly.add(WeekKey(date), o)
		monthly.add(MonthKey(date), o)
	}

	return Averages{
		Daily:   daily.buckets(),
		Weekly:  weekly.buckets(),
		Monthly: monthly.buckets(),
		Skipped: skipped,
	}
}

// ParseDate accepts calendar dates and RFC 3339 timestamps. Only the
// calendar date of a timestamp is kept.
func ParseDate(value string) (time.Time, error) {
	if date, err := time.Parse(observations.DateFormat, value); err == nil {
		return date, nil
	}
	date, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC), nil
}

func DayKey(date time.Time) string {
	return date.Format(observations.DateFormat)
}

// WeekKey numbers weeks within the month, days 1-7 are week 1, 8-14 week 2
// and so on. Keys don't carry the month.
func WeekKey(date time.Time) string {
	return fmt.Sprintf("%d-W%d", date.Year(), (date.Day()-1)/7+1)
}

func MonthKey(date time.Time) string {
	return fmt.Sprintf("%d-%02d", date.Year(), int(date.Month()))
}
