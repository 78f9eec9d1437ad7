package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"loan-amortizer/domain"
)

var scheduleHeaders = []string{
	"#", "Date", "Beginning Balance", "Payment", "Principal",
	"Interest", "Extra", "Ending Balance", "Cumulative Interest",
}

// ScheduleTable writes the payment table. limit caps the number of rows
// shown, 0 shows every row.
func (r *Renderer) ScheduleTable(w io.Writer, res domain.ScheduleResult, limit int) error {
	return r.ScheduleWindow(w, res, 0, limit)
}

// ScheduleWindow writes at most limit rows starting at offset.
func (r *Renderer) ScheduleWindow(w io.Writer, res domain.ScheduleResult, offset, limit int) error {
	rows := res.Rows
	offset = max(0, min(offset, len(rows)))
	end := len(rows)
	if limit > 0 {
		end = min(end, offset+limit)
	}
	shown := rows[offset:end]

	title := fmt.Sprintf("Amortization Schedule: %d payments over %s",
		len(rows), FormatDurationLong(res.Payoff))
	if _, err := fmt.Fprintln(w, r.theme.Title.Render(title)); err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.theme.Border).
		Headers(scheduleHeaders...).
		Rows(scheduleCells(shown)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.theme.Header
			}
			style := r.theme.Cell
			if row >= 0 && row < len(shown) && shown[row].Number%12 == 0 {
				style = r.theme.YearEnd
			}
			if col != 1 {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}

	if len(shown) < len(rows) {
		_, err := fmt.Fprintf(w, "Showing payments %d-%d of %d\n",
			offset+1, offset+len(shown), len(rows))
		return err
	}
	return nil
}

func scheduleCells(rows []domain.AmortizationRow) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		extra := "—"
		if row.ExtraPayment > 0 {
			extra = FormatCurrency(row.ExtraPayment)
		}
		cells = append(cells, []string{
			strconv.Itoa(row.Number),
			ShortDate(row.Date),
			FormatCurrency(row.BeginningBalance),
			FormatCurrency(row.TotalPayment),
			FormatCurrency(row.Principal),
			FormatCurrency(row.Interest),
			extra,
			FormatCurrency(row.EndingBalance),
			FormatCurrency(row.CumulativeInterest),
		})
	}
	return cells
}
