// Package render formats schedules for the terminal and for printing.
// Renderers only read the results they are given.
package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"loan-amortizer/domain"
)

// FormatCurrency renders v as US dollars with cents, e.g. $1,896.20 or
// -$12.00. Amounts are rounded half away from zero.
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "—"
	}

	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()

	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(whole.IntPart()), cents)
}

// FormatRate renders an annual rate fraction as a percentage, 0.065 -> 6.5%.
func FormatRate(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).Round(4).String() + "%"
}

func FormatYears(years float64) string {
	s := strconv.FormatFloat(years, 'f', -1, 64)
	if years == 1 {
		return s + " year"
	}
	return s + " years"
}

// ShortDate is the month label used in schedule rows, e.g. Jan 2025.
func ShortDate(ym domain.YearMonth) string {
	if ym.IsZero() {
		return "—"
	}
	return ym.Time().Format("Jan 2006")
}

// LongDate is used for payoff dates, e.g. January 2025.
func LongDate(ym domain.YearMonth) string {
	if ym.IsZero() {
		return "—"
	}
	return ym.Time().Format("January 2006")
}

// FormatDuration renders 2y 3m, or only months under a year when compact.
func FormatDuration(d domain.PayoffDuration, compact bool) string {
	if compact && d.Years == 0 {
		return fmt.Sprintf("%dm", d.Months)
	}
	return fmt.Sprintf("%dy %dm", d.Years, d.Months)
}

// FormatDurationLong renders 2 years and 3 months.
func FormatDurationLong(d domain.PayoffDuration) string {
	months := plural(d.Months, "month")
	if d.Years == 0 {
		return months
	}
	return plural(d.Years, "year") + " and " + months
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Share returns part as a percentage of total, 0 when total is not positive.
func Share(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}
