package test

import (
	"fmt"
	"strings"

	"github.com/tidepool-org/glucoguide/test"
	"github.com/tidepool-org/glucoguide/users"
)

var controlLevels = []string{"Standard", "Advanced"}

func RandomProfile() users.Profile {
	minGlucose := float64(test.Faker.IntBetween(55, 80))
	return users.Profile{
		Username:         strings.ToLower(test.Faker.Person().FirstName()) + test.Faker.Numerify("###"),
		ControlLevel:     test.Faker.RandomStringElement(controlLevels),
		MinGlucose:       minGlucose,
		MaxGlucose:       minGlucose + float64(test.Faker.IntBetween(100, 140)),
		CarbRatio:        float64(test.Faker.IntBetween(8, 15)),
		CorrectionFactor: float64(test.Faker.IntBetween(30, 70)),
	}
}

func RandomProfiles(count int) []users.Profile {
	profiles := make([]users.Profile, count)
	for i := range profiles {
		profiles[i] = RandomProfile()
		profiles[i].Username = fmt.Sprintf("%s%d", profiles[i].Username, i)
	}
	return profiles
}

// CSV renders profiles in the import format, header included.
func CSV(profiles []users.Profile) string {
	b := strings.Builder{}
	b.WriteString("username,controlLevel,minGlucose,maxGlucose,carbRatio,correctionFactor\n")
	for _, p := range profiles {
		b.WriteString(fmt.Sprintf("%s, %s, %g, %g, %g, %g\n", p.Username, p.ControlLevel, p.MinGlucose, p.MaxGlucose, p.CarbRatio, p.CorrectionFactor))
	}
	return b.String()
}
