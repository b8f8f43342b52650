package users

var seedProfiles = []Profile{
	{Username: "good", ControlLevel: "Standard", MinGlucose: 70, MaxGlucose: 180, CarbRatio: 10, CorrectionFactor: 50},
	{Username: "bad", ControlLevel: "Advanced", MinGlucose: 60, MaxGlucose: 200, CarbRatio: 12, CorrectionFactor: 60},
	{Username: "average", ControlLevel: "Standard", MinGlucose: 65, MaxGlucose: 190, CarbRatio: 11, CorrectionFactor: 55},
}

// SeedProfiles returns the demo users stored when the database is first
// initialized.
func SeedProfiles() []Profile {
	return append([]Profile(nil), seedProfiles...)
}
