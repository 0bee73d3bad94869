package upstream

import (
	"strconv"
	"strings"
)

// Record is one parsed dataset row keyed by field name. Both the CSV and
// JSON paths normalize into this shape so field coercion stays identical.
type Record map[string]string

// Str returns the trimmed field value, empty when absent
func (r Record) Str(key string) string {
	return strings.TrimSpace(r[key])
}

// Int returns the field as an integer; non-numeric or missing values
// coerce to 0
func (r Record) Int(key string) int {
	n, err := strconv.Atoi(r.Str(key))
	if err != nil {
		return 0
	}
	return n
}

// Float returns the field as a float pointer; non-numeric or missing
// values coerce to nil
func (r Record) Float(key string) *float64 {
	s := r.Str(key)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
