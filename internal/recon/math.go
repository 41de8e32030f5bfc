package recon

import (
	"math"
	"strconv"
)

// amountTolerance is the slack, in rupees, allowed when comparing amounts
// that a bill printed after its own rounding.
const amountTolerance = 1.00

// paisaTolerance is one minor currency unit; differences at or below it
// are treated as rounding noise, not discrepancies.
const paisaTolerance = 0.01

// round2 rounds to 2 decimal places. Applied only at return points so
// intermediate arithmetic does not compound rounding error.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// fmtf formats a float with 2 decimal places for warning messages.
func fmtf(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
