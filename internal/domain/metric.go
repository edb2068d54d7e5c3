package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Metric is an optional numeric field from a backend payload.
//
// The analysis backend is inconsistent about numeric encoding: the same
// field can arrive as a JSON number (45.2), a formatted string ("45.2%",
// "$12.99", "1,234"), or null. Metric absorbs all of them. A value that
// cannot be parsed is absent (Valid=false), never zero and never an
// unmarshal error, so one malformed field does not poison a whole response.
type Metric struct {
	Value float64
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler. It never returns an error for
// a value it cannot interpret; the metric is simply left absent.
func (m *Metric) UnmarshalJSON(data []byte) error {
	m.Value = 0
	m.Valid = false

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	// Native JSON number
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		m.Value = v
		m.Valid = true
		return nil
	}

	// Formatted string ("45.2%", "$12.99", "1,234")
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if v, ok := parseFormattedNumber(s); ok {
		m.Value = v
		m.Valid = true
	}
	return nil
}

// MarshalJSON emits the numeric value, or null when absent.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// Ptr converts the metric to the canonical model's pointer representation:
// nil when absent, a copy of the value otherwise.
func (m Metric) Ptr() *float64 {
	if !m.Valid {
		return nil
	}
	v := m.Value
	return &v
}

// parseFormattedNumber strips the decoration the backend is known to emit
// (currency signs, percent signs, thousands separators) and parses the rest.
func parseFormattedNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
