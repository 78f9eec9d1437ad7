package render

import (
	"fmt"
	"io"
	"strings"

	"loan-amortizer/domain"
)

const (
	promptTitle = "Enter Loan Details"
	promptText  = "Fill in the loan amount, interest rate, and term to see your amortization schedule."

	barWidth = 40
)

// Prompt is shown instead of a schedule when the inputs are incomplete.
func (r *Renderer) Prompt(w io.Writer) error {
	c := r.newCard(promptTitle)
	c.text(promptText, r.theme.Value)
	return c.writeTo(w)
}

// Summary writes the loan overview, payment figures and cost breakdown.
func (r *Renderer) Summary(w io.Writer, res domain.ScheduleResult) error {
	t := r.theme
	c := r.newCard("Loan Summary")

	if !res.Converged {
		c.text(fmt.Sprintf("Not paid off after %d payments; the schedule below is incomplete.", len(res.Rows)), t.Warning)
		c.blank()
	}

	if res.OriginalAmount > 0 && res.OriginalAmount != res.Principal {
		c.row("Original Loan", FormatCurrency(res.OriginalAmount), t.Value)
		c.row("Remaining Balance", FormatCurrency(res.Principal), t.Value)
		c.row("Already Paid", fmt.Sprintf("%s (%.1f%%)", FormatCurrency(res.PaidDown()), Share(res.PaidDown(), res.OriginalAmount)), t.Savings)
		c.blank()
	}

	c.row("Monthly P&I", FormatCurrency(res.MonthlyPayment), t.Strong)
	c.row("Monthly Taxes", FormatCurrency(res.MonthlyTax), t.Value)
	if res.MonthlyExtra > 0 {
		c.row("Extra Payment (/mo)", FormatCurrency(res.MonthlyExtra), t.Savings)
		c.row("Extra Start", LongDate(res.ExtraStart), t.Value)
	}
	c.row("Total Monthly", FormatCurrency(res.TotalMonthlyPayment)+" incl. taxes & extra", t.Strong)
	c.blank()

	c.row("Total Interest", FormatCurrency(res.TotalInterest), t.Interest)
	c.row(fmt.Sprintf("Total Taxes (%d months)", len(res.Rows)), FormatCurrency(res.TotalTax), t.Value)
	c.row("Total Cost", FormatCurrency(res.TotalPaid), t.Strong)
	c.row("Payoff Date", LongDate(res.PayoffDate), t.Strong)
	c.row("Payoff Time", FormatDuration(res.Payoff, false), t.Value)

	if res.MonthlyExtra > 0 {
		c.blank()
		c.text(fmt.Sprintf("You're making extra payments of %s/month starting from %s.",
			FormatCurrency(res.MonthlyExtra), LongDate(res.ExtraStart)), t.Savings)
	}

	c.blank()
	c.text("Cost Breakdown", t.Title)
	c.text(r.costBar(res), t.Value)
	c.row("Principal", fmt.Sprintf("%s (%.1f%%)", FormatCurrency(res.Principal), Share(res.Principal, res.TotalPaid)), t.BarFilled[0])
	c.row("Interest", fmt.Sprintf("%s (%.1f%%)", FormatCurrency(res.TotalInterest), Share(res.TotalInterest, res.TotalPaid)), t.BarFilled[1])
	c.row("Taxes", fmt.Sprintf("%s (%.1f%%)", FormatCurrency(res.TotalTax), Share(res.TotalTax, res.TotalPaid)), t.BarFilled[2])

	return c.writeTo(w)
}

// costBar draws principal, interest and taxes as shares of the total cost.
func (r *Renderer) costBar(res domain.ScheduleResult) string {
	parts := []float64{res.Principal, res.TotalInterest, res.TotalTax}
	glyphs := []string{"█", "▓", "░"}

	var b strings.Builder
	used := 0
	for i, part := range parts {
		n := int(Share(part, res.TotalPaid)/100*barWidth + 0.5)
		if i == len(parts)-1 {
			n = barWidth - used
		}
		n = max(0, min(n, barWidth-used))
		used += n
		b.WriteString(r.theme.BarFilled[i].Render(strings.Repeat(glyphs[i], n)))
	}
	return b.String()
}
