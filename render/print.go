package render

import (
	"fmt"
	"io"
	"time"

	"loan-amortizer/domain"
)

const disclaimer = "This schedule is for informational purposes only. Actual loan terms may vary."

// PrintView writes a printable document: the entered terms, the summary,
// the comparison when extra payments are scheduled and the full schedule.
// It always draws with the plain theme.
func PrintView(w io.Writer, in domain.LoanInputs, cmp domain.Comparison, generated time.Time) error {
	r := New(PlainTheme())
	res := cmp.Scenario

	c := r.newCard("Loan Terms")
	c.row("Original Amount", FormatCurrency(in.OriginalAmount), r.theme.Value)
	c.row("Remaining Balance", FormatCurrency(in.Principal), r.theme.Value)
	c.row("Interest Rate", FormatRate(in.AnnualRate), r.theme.Value)
	c.row("Term", FormatYears(in.TermYears), r.theme.Value)
	c.row("Loan Start", LongDate(in.StartDate), r.theme.Value)
	c.row("Taxes", FormatCurrency(in.TaxAmount)+" "+string(in.TaxFrequency), r.theme.Value)
	if in.HasExtraPayment() {
		c.row("Extra Payment", FormatCurrency(in.ExtraAmount)+" "+string(in.ExtraFrequency), r.theme.Value)
	}
	if err := c.writeTo(w); err != nil {
		return err
	}

	if err := r.Summary(w, res); err != nil {
		return err
	}
	if in.HasExtraPayment() {
		if err := r.Comparison(w, cmp); err != nil {
			return err
		}
	}
	if err := r.ScheduleTable(w, res, 0); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nGenerated on %s\n%s\n", generated.Format("January 2, 2006"), disclaimer)
	return err
}
