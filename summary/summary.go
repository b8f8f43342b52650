package summary

import (
	"bytes"
	"encoding/json"
)

const (
	NotAvailable = "N/A"

	GranularityDaily   = "daily"
	GranularityWeekly  = "weekly"
	GranularityMonthly = "monthly"
)

var Granularities = []string{GranularityDaily, GranularityWeekly, GranularityMonthly}

// Average holds the means of a bucket formatted to one fractional digit,
// or NotAvailable.
type Average struct {
	BloodGlucose string `json:"bloodGlucose" structs:"Blood Glucose (mmol/L)"`
	CarbIntake   string `json:"carbIntake" structs:"Carb Intake (g)"`
	Insulin      string `json:"insulin" structs:"Insulin (units)"`
}

// Buckets maps bucket keys to averages and iterates in the order in which
// keys were first seen.
type Buckets struct {
	keys   []string
	values map[string]Average
}

func NewBuckets() *Buckets {
	return &Buckets{
		keys:   make([]string, 0),
		values: map[string]Average{},
	}
}

func (b *Buckets) Set(key string, average Average) {
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = average
}

func (b *Buckets) Get(key string) (Average, bool) {
	average, ok := b.values[key]
	return average, ok
}

func (b *Buckets) Keys() []string {
	return append([]string(nil), b.keys...)
}

func (b *Buckets) Len() int {
	return len(b.keys)
}

// Each calls fn for every bucket in insertion order.
func (b *Buckets) Each(fn func(key string, average Average)) {
	for _, key := range b.keys {
		fn(key, b.values[key])
	}
}

func (b *Buckets) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')
	for i, key := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(b.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Averages are the day, week of month and month buckets of a history.
// Skipped counts observations excluded because their date could not be parsed.
type Averages struct {
	Daily   *Buckets `json:"daily"`
	Weekly  *Buckets `json:"weekly"`
	Monthly *Buckets `json:"monthly"`
	Skipped int      `json:"skipped,omitempty"`
}

func (a Averages) ByGranularity(granularity string) (*Buckets, bool) {
	switch granularity {
	case GranularityDaily:
		return a.Daily, true
	case GranularityWeekly:
		return a.Weekly, true
	case GranularityMonthly:
		return a.Monthly, true
	default:
		return nil, false
	}
}
