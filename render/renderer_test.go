package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"loan-amortizer/domain"
	"loan-amortizer/service"
)

func mortgage() domain.LoanInputs {
	start := domain.NewYearMonth(2025, time.January)
	return domain.LoanInputs{
		OriginalAmount: 300000,
		Principal:      300000,
		AnnualRate:     0.065,
		TermYears:      30,
		StartDate:      start,
		TaxAmount:      3600,
		TaxFrequency:   domain.FrequencyAnnual,
		ExtraFrequency: domain.FrequencyMonthly,
		ExtraStartDate: start,
	}
}

func compare(t *testing.T, in domain.LoanInputs) domain.Comparison {
	t.Helper()
	scenario, ok := service.ComputeSchedule(in)
	if !ok {
		t.Fatalf("expected a schedule")
	}
	baseline, _ := service.ComputeSchedule(in.Baseline())
	return service.Savings(scenario, baseline)
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("expected output to contain %q\n%s", w, out)
		}
	}
}

func TestSummary(t *testing.T) {
	res, _ := service.ComputeSchedule(mortgage())

	var buf bytes.Buffer
	if err := New(PlainTheme()).Summary(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	assertContains(t, out, "Loan Summary", "$1,896.20", "$300.00", "December 2054", "30y 0m", "Total Taxes (360 months)")
	if strings.Contains(out, "Already Paid") {
		t.Errorf("overview should be hidden when nothing was paid down")
	}
	if strings.Contains(out, "Not paid off") {
		t.Errorf("converged schedule flagged as incomplete")
	}
}

func TestSummary_PaidDownAndExtra(t *testing.T) {
	in := mortgage()
	in.Principal = 275000
	in.ExtraAmount = 200
	res, _ := service.ComputeSchedule(in)

	var buf bytes.Buffer
	if err := New(PlainTheme()).Summary(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, buf.String(),
		"Already Paid", "$25,000.00 (8.3%)",
		"You're making extra payments of $200.00/month starting from January 2025.")
}

func TestSummary_NotConverged(t *testing.T) {
	res, _ := service.ComputeSchedule(domain.LoanInputs{
		Principal: 12000, AnnualRate: 12, TermYears: 100,
		StartDate: domain.NewYearMonth(2025, time.January),
	})

	var buf bytes.Buffer
	if err := New(PlainTheme()).Summary(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, buf.String(), "Not paid off after 2400 payments")
}

func TestComparison(t *testing.T) {
	in := mortgage()
	in.ExtraAmount = 200

	var buf bytes.Buffer
	if err := New(PlainTheme()).Comparison(&buf, compare(t, in)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, buf.String(),
		"Interest Saved", "6y 11m", "vs December 2054",
		"Without Extra", "360", "277",
		"pay off your loan 6 years and 11 months earlier.")
}

func TestComparison_NoExtraWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	if err := New(ColorTheme()).Comparison(&buf, compare(t, mortgage())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestScheduleTable_Limit(t *testing.T) {
	res, _ := service.ComputeSchedule(mortgage())

	var buf bytes.Buffer
	if err := New(PlainTheme()).ScheduleTable(&buf, res, 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	assertContains(t, out,
		"360 payments over 30 years and 0 months",
		"Cumulative Interest", "Jan 2025", "Dec 2025", "$1,896.20", "—",
		"Showing payments 1-12 of 360")
	if strings.Contains(out, "Jan 2026") {
		t.Errorf("expected only the first 12 payments")
	}
}

func TestScheduleWindow_Offset(t *testing.T) {
	in := mortgage()
	in.ExtraAmount = 200
	res, _ := service.ComputeSchedule(in)

	var buf bytes.Buffer
	if err := New(PlainTheme()).ScheduleWindow(&buf, res, 270, 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	assertContains(t, out, "$200.00", "Showing payments 271-277 of 277")
	if strings.Contains(out, "Jan 2025") {
		t.Errorf("expected rows before the offset to be skipped")
	}
}

func TestPrintView(t *testing.T) {
	in := mortgage()
	in.ExtraAmount = 200
	generated := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := PrintView(&buf, in, compare(t, in), generated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	assertContains(t, out,
		"Loan Terms", "6.5%", "30 years",
		"Loan Summary", "Savings with Extra Payments",
		"277 payments",
		"Generated on June 15, 2025", disclaimer)
	if strings.Contains(out, "Showing payments") {
		t.Errorf("print view must include every payment")
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("print view must not contain terminal escapes")
	}
}

func TestPrompt(t *testing.T) {
	var buf bytes.Buffer
	if err := New(PlainTheme()).Prompt(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, buf.String(), promptTitle, promptText)
}

func TestJSON(t *testing.T) {
	res, _ := service.ComputeSchedule(mortgage())

	var buf bytes.Buffer
	if err := JSON(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded domain.ScheduleResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Rows) != 360 || decoded.PayoffDate != res.PayoffDate {
		t.Errorf("unexpected decoded result: %d rows, payoff %v", len(decoded.Rows), decoded.PayoffDate)
	}
}
