package users

import (
	"fmt"
	"math"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var csvColumns = []string{
	"username",
	"controlLevel",
	"minGlucose",
	"maxGlucose",
	"carbRatio",
	"correctionFactor",
}

var csvRowsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "glucoguide_csv_rows_dropped_total",
	Help: "The number of user rows dropped during CSV imports",
}, []string{"reason"})

// ParseCSV decodes profiles from CSV content. The first line is a header
// and is discarded. Columns are positional, values are trimmed and quoting
// is not supported. Rows with missing, non-numeric or non-finite values are dropped, as
// are rows repeating a username seen earlier in the same content.
func ParseCSV(content string, logger *zap.SugaredLogger) []Profile {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 {
		return []Profile{}
	}

	profiles := make([]Profile, 0, len(lines)-1)
	seen := mapset.NewThreadUnsafeSet[string]()
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lineNumber := i + 2
		profile, err := parseRow(line)
		if err != nil {
			csvRowsDropped.WithLabelValues("malformed").Inc()
			logger.Debugw("dropping malformed user row", "line", lineNumber, zap.Error(err))
			continue
		}
		if !seen.Add(profile.Username) {
			csvRowsDropped.WithLabelValues("duplicate").Inc()
			logger.Warnw("dropping duplicate user row", "line", lineNumber, "username", profile.Username)
			continue
		}

		profiles = append(profiles, profile)
	}

	return profiles
}

func parseRow(line string) (Profile, error) {
	values := strings.Split(line, ",")
	if len(values) < len(csvColumns) {
		return Profile{}, fmt.Errorf("expected %d columns, got %d", len(csvColumns), len(values))
	}

	row := make(map[string]interface{}, len(csvColumns))
	for i, column := range csvColumns {
		value := strings.TrimSpace(values[i])
		if value == "" {
			return Profile{}, fmt.Errorf("missing %s", column)
		}
		row[column] = value
	}

	profile := Profile{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &profile,
	})
	if err != nil {
		return Profile{}, err
	}
	if err := decoder.Decode(row); err != nil {
		return Profile{}, err
	}

	// ParseFloat accepts NaN and Inf, which can't be stored as JSON
	for column, value := range map[string]float64{
		"minGlucose":       profile.MinGlucose,
		"maxGlucose":       profile.MaxGlucose,
		"carbRatio":        profile.CarbRatio,
		"correctionFactor": profile.CorrectionFactor,
	} {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return Profile{}, fmt.Errorf("%s is not finite", column)
		}
	}

	return profile, nil
}
