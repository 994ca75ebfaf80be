package models

import (
	"encoding/json"
	"strconv"
)

// Money accepts a JSON number or a numeric string, mirroring the loose
// payloads the POS clients send. Anything else is kept as "not numeric"
// instead of aborting the decode, so validation can report it together with
// any other field problems.
type Money struct {
	value   float64
	numeric bool
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		m.value, m.numeric = n, true
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			m.value, m.numeric = n, true
		}
		return nil
	}

	// bool, null, object, array: present but not a number
	return nil
}

func (m Money) Float64() float64 { return m.value }

func (m Money) Numeric() bool { return m.numeric }
