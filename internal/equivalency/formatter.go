package equivalency

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// KgPerTonne is the mass threshold above which totals render in tonnes.
const KgPerTonne = 1000.0

// Display scaling thresholds for abbreviated large numbers.
const (
	// LargeNumberThreshold is where "~X.X million" formatting begins.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold is where "~X.X billion" formatting begins.
	BillionThreshold = 1_000_000_000
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps thousand separators consistent across hosts.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the given precision and thousand
// separators on the integer part. Example: FormatFloat(1234.567, 2)
// returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier

	// The integer-part split below overflows past int64; such values
	// render without separators rather than truncated.
	if rounded >= math.MaxInt64 || rounded <= math.MinInt64 || math.IsNaN(rounded) {
		return strconv.FormatFloat(rounded, 'f', precision, 64)
	}

	if precision == 0 {
		return FormatNumber(int64(rounded))
	}

	intPart, fracPart := math.Modf(math.Abs(rounded))
	sign := ""
	if rounded < 0 {
		sign = "-"
	}

	frac := fmt.Sprintf("%.*f", precision, fracPart)
	// "0.57" -> "57"
	return sign + printer.Sprintf("%d", int64(intPart)) + frac[1:]
}

// FormatLarge formats large values with abbreviated notation: plain
// comma-separated below one million, "~X.X million" and "~X.X billion"
// above the respective thresholds.
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}

// FormatMass renders a kg CO2e quantity for display: kilograms with two
// decimals below one tonne-equivalent of kilograms, tonnes with two
// decimals at or above it. The underlying total is never mutated.
func FormatMass(kg float64) string {
	if kg >= KgPerTonne {
		return FormatFloat(kg/KgPerTonne, 2) + " tonnes CO2e"
	}
	return FormatFloat(kg, 2) + " kg CO2e"
}
