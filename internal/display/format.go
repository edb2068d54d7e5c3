// Package display holds presentation helpers: currency/percentage
// formatting and the explanation-only fee breakdown used by tooltip text.
// Nothing in this package is a source of truth for the canonical metric
// fields; those always come straight from the backend.
package display

import (
	"github.com/shopspring/decimal"
)

// Currency renders a dollar amount with two decimals, e.g. "$24.99".
// Absent and non-positive values render as "N/A" so a table cell never
// shows a misleading "$0.00" for data the backend did not produce.
//
// Rounding follows decimal.StringFixed: half away from zero, so 14.995
// renders as "$15.00".
func Currency(v *float64) string {
	if v == nil || *v <= 0 {
		return "N/A"
	}
	return "$" + decimal.NewFromFloat(*v).StringFixed(2)
}

// CurrencyValue is Currency for values that are known to be present,
// typically intermediate amounts computed by EstimateFees.
func CurrencyValue(v decimal.Decimal) string {
	if v.Sign() <= 0 {
		return "N/A"
	}
	return "$" + v.StringFixed(2)
}

// Percent renders a percentage value with zero decimals, e.g. 45.2 -> "45%".
// The input is already a percentage, not a ratio. Used by table badges
// where space is tight.
func Percent(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return decimal.NewFromFloat(*v).StringFixed(0) + "%"
}

// PercentPrecise renders a percentage value with one decimal,
// e.g. 45.2 -> "45.2%". Used by tooltip detail text.
func PercentPrecise(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return decimal.NewFromFloat(*v).StringFixed(1) + "%"
}
