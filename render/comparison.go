package render

import (
	"fmt"
	"io"
	"strconv"

	"loan-amortizer/domain"
)

// Comparison writes what the extra payments save against the baseline.
// Nothing is written when the scenario has no extra payments.
func (r *Renderer) Comparison(w io.Writer, cmp domain.Comparison) error {
	s, b := cmp.Scenario, cmp.Baseline
	if s.MonthlyExtra <= 0 {
		return nil
	}

	t := r.theme
	c := r.newCard("Savings with Extra Payments")
	c.row("Interest Saved", FormatCurrency(cmp.Savings.InterestSaved), t.Savings)
	c.row("Time Saved", FormatDuration(cmp.Savings.TimeSaved, true), t.Savings)
	c.row("New Payoff Date", LongDate(s.PayoffDate)+" vs "+LongDate(b.PayoffDate), t.Strong)
	c.blank()

	line := func(label, without, with string) {
		c.text(fmt.Sprintf("%-*s %s %s", labelWidth, label,
			t.Muted.Render(fmt.Sprintf("%16s", without)),
			t.Strong.Render(fmt.Sprintf("%16s", with))), t.Value)
	}
	c.text(fmt.Sprintf("%-*s %16s %16s", labelWidth, "", "Without Extra", "With Extra"), t.Label)
	line("Total Interest", FormatCurrency(b.TotalInterest), FormatCurrency(s.TotalInterest))
	line("Total Cost", FormatCurrency(b.TotalPaid), FormatCurrency(s.TotalPaid))
	line("Number of Payments", strconv.Itoa(len(b.Rows)), strconv.Itoa(len(s.Rows)))
	line("Payoff Time", FormatDuration(b.Payoff, false), FormatDuration(s.Payoff, false))
	c.blank()

	c.text(fmt.Sprintf("By making extra payments of %s/month, you'll save %s in interest and pay off your loan %s earlier.",
		FormatCurrency(s.MonthlyExtra), FormatCurrency(cmp.Savings.InterestSaved), FormatDurationLong(cmp.Savings.TimeSaved)), t.Value)

	return c.writeTo(w)
}
