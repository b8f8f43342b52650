package test

import (
	"fmt"
	"time"

	"github.com/tidepool-org/glucoguide/observations"
	"github.com/tidepool-org/glucoguide/test"
)

func RandomObservation(date time.Time) observations.Observation {
	return observations.Observation{
		Date:         date.Format(observations.DateFormat),
		Time:         fmt.Sprintf("%02d:%02d", test.Faker.IntBetween(0, 23), test.Faker.IntBetween(0, 59)),
		BloodGlucose: observations.Text(fmt.Sprintf("%.1f", test.Faker.Float64(1, 3, 29))),
		CarbIntake:   observations.Number(float64(test.Faker.IntBetween(0, 240))),
		Insulin:      observations.Number(float64(test.Faker.IntBetween(0, 49)) / 10),
	}
}

// RandomHistory returns between one and three observations for each day
// starting at start.
func RandomHistory(start time.Time, days int) []observations.Observation {
	history := make([]observations.Observation, 0)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		count := test.Faker.IntBetween(1, 3)
		for j := 0; j < count; j++ {
			history = append(history, RandomObservation(date))
		}
	}
	return history
}

func NewObservation(date string, bloodGlucose, carbIntake, insulin string) observations.Observation {
	return observations.Observation{
		Date:         date,
		Time:         "12:00",
		BloodGlucose: observations.Text(bloodGlucose),
		CarbIntake:   observations.Text(carbIntake),
		Insulin:      observations.Text(insulin),
	}
}
