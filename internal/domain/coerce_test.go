package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceNumeric(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		ok       bool
	}{
		{"indian grouping", "2,75,069", 275069, true},
		{"western grouping", "1,234", 1234, true},
		{"plain integer", "42", 42, true},
		{"decimal", "404.5", 404.5, true},
		{"negative", "-12.5", -12.5, true},
		{"zero", "0", 0, true},
		{"padded", "  7,096 ", 7096, true},
		{"scientific notation", "1e3", 1000, true},
		{"not applicable", "N/A", 0, false},
		{"dash placeholder", "-", 0, false},
		{"empty", "", 0, false},
		{"whitespace", "   ", 0, false},
		{"trailing junk", "123 sq km", 0, false},
		{"double decimal", "1.2.3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := CoerceNumeric(tt.raw)
			assert.Equal(t, tt.expected, v)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

// ParseFloat happily accepts "NaN" and "Inf", which would poison every
// downstream sum. Coercion must reject them like any other bad cell.
func TestCoerceNumeric_AlwaysFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "nan", "Inf", "-Inf", "+Inf", "infinity", "1e999"} {
		t.Run(raw, func(t *testing.T) {
			v, ok := CoerceNumeric(raw)
			assert.False(t, ok)
			assert.Equal(t, 0.0, v)
			assert.False(t, math.IsNaN(v))
			assert.False(t, math.IsInf(v, 0))
		})
	}
}
