package api

import (
	"github.com/tidepool-org/glucoguide/pointer"
	"github.com/tidepool-org/glucoguide/readings"
	"github.com/tidepool-org/glucoguide/users"
)

// NewProfile converts a profile received for username. The username of the
// path is used when the body doesn't carry one.
func NewProfile(dto Profile, username string) users.Profile {
	profile := users.Profile{
		Username:         username,
		ControlLevel:     dto.ControlLevel,
		MinGlucose:       dto.MinGlucose,
		MaxGlucose:       dto.MaxGlucose,
		CarbRatio:        dto.CarbRatio,
		CorrectionFactor: dto.CorrectionFactor,
	}
	if pointer.ToString(dto.Username) != "" {
		profile.Username = *dto.Username
	}
	return profile
}

func NewProfileDto(profile users.Profile) Profile {
	return Profile{
		Username:         pointer.FromAny(profile.Username),
		ControlLevel:     profile.ControlLevel,
		MinGlucose:       profile.MinGlucose,
		MaxGlucose:       profile.MaxGlucose,
		CarbRatio:        profile.CarbRatio,
		CorrectionFactor: profile.CorrectionFactor,
	}
}

func NewReadingDto(reading readings.Reading) Reading {
	return Reading{
		Username:   reading.Username,
		Value:      reading.Value,
		MeasuredAt: reading.MeasuredAt,
	}
}

func NewFoodsDto(foods []readings.Food) []Food {
	dtos := make([]Food, 0, len(foods))
	for _, f := range foods {
		dtos = append(dtos, Food{
			Name:  f.Name,
			Carbs: f.Carbs,
		})
	}
	return dtos
}
