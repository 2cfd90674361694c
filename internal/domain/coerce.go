package domain

import (
	"math"
	"strconv"
	"strings"
)

// CoerceNumeric converts a raw cell value into a finite float64.
//
// Source CSVs format numbers with Indian digit grouping ("2,75,069") and use
// free-text placeholders ("N/A", "-") for missing values. Grouping commas are
// stripped before parsing. Any value that still fails a full numeric parse
// coerces to 0.0 rather than erroring.
//
// This zero-fallback is a deliberate lossy-but-available policy: a dashboard
// over mostly-good data beats no dashboard. It is not silent, though: the
// boolean return reports whether the parse succeeded, and the loader counts
// failures per column for data-quality auditing.
//
// The result is always finite. Inputs that parse to NaN or ±Inf (ParseFloat
// accepts "NaN" and "Inf") are treated as failures.
func CoerceNumeric(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
