package observations

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Measurement is a numeric reading that may have been stored either as a
// JSON number or as text. Text is parsed on decoding; text that isn't a
// finite number leaves the measurement invalid, which counts as zero.
type Measurement struct {
	value float64
	text  *string
	valid bool
}

func Number(v float64) Measurement {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Measurement{}
	}
	return Measurement{value: v, valid: true}
}

func Text(s string) Measurement {
	m := Measurement{text: &s}
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		m.value = v
		m.valid = true
	}
	return m
}

// Float64 returns the parsed value, or 0 when the measurement is invalid.
func (m Measurement) Float64() float64 {
	if !m.valid {
		return 0
	}
	return m.value
}

func (m Measurement) Valid() bool {
	return m.valid
}

func (m Measurement) String() string {
	if m.text != nil {
		return *m.text
	}
	if !m.valid {
		return ""
	}
	return strconv.FormatFloat(m.value, 'f', -1, 64)
}

func (m Measurement) MarshalJSON() ([]byte, error) {
	if m.text != nil {
		return json.Marshal(*m.text)
	}
	if !m.valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, m.value, 'f', -1, 64), nil
}

func (m *Measurement) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*m = Measurement{}
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Text(s)
	default:
		v, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			// booleans, objects and the like carry no value
			*m = Measurement{}
			return nil
		}
		*m = Number(v)
	}
	return nil
}
