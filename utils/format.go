package utils

import (
	"math"
	"strconv"
)

// Round2 rounds to 2 decimal places, half away from zero. All rupee amounts
// go through this so totals match the reference pricing exactly.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders a rupee amount without trailing zeros (40 not 40.00,
// 40.5 not 40.50), matching how the WhatsApp template and the sheets have
// always shown amounts.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
