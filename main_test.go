package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"loan-amortizer/domain"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("CACHE_BACKEND", "memory")
	t.Setenv("LOG_FILE", "")

	env := filepath.Join(t.TempDir(), "missing.env")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"-env", env}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Defaults(t *testing.T) {
	code, out, _ := runCLI(t, "-rows", "12", "-start", "2025-01", "-extra-start", "2025-01")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	for _, want := range []string{"Loan Summary", "Savings with Extra Payments", "Showing payments 1-12"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestRun_IncompleteInput(t *testing.T) {
	code, out, errOut := runCLI(t, "-rate", "")
	if code != exitNoResult {
		t.Fatalf("expected exit %d, got %d", exitNoResult, code)
	}
	if out != "" {
		t.Errorf("expected nothing on stdout, got %q", out)
	}
	if !strings.Contains(errOut, "Enter Loan Details") {
		t.Errorf("expected the prompt on stderr, got %q", errOut)
	}
}

func TestRun_JSON(t *testing.T) {
	code, out, _ := runCLI(t, "-json", "-balance", "300000", "-extra", "0", "-start", "2025-01")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}

	var cmp domain.Comparison
	if err := json.Unmarshal([]byte(out), &cmp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(cmp.Scenario.Rows) != 360 {
		t.Errorf("expected 360 payments, got %d", len(cmp.Scenario.Rows))
	}
	if cmp.Savings != (domain.Savings{}) {
		t.Errorf("expected no savings without extra payments, got %+v", cmp.Savings)
	}
}

func TestRun_Print(t *testing.T) {
	code, out, _ := runCLI(t, "-print")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	if !strings.Contains(out, "Generated on") || !strings.Contains(out, "informational purposes only") {
		t.Errorf("expected the printable document")
	}
}

func TestRun_NotConverged(t *testing.T) {
	code, out, _ := runCLI(t, "-balance", "12000", "-rate", "1200", "-term", "100", "-extra", "0", "-rows", "1")
	if code != exitNotConverged {
		t.Fatalf("expected exit %d, got %d", exitNotConverged, code)
	}
	if !strings.Contains(out, "Not paid off after 2400 payments") {
		t.Errorf("expected the incomplete schedule notice")
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	code, _, errOut := runCLI(t)
	if code != exitError {
		t.Fatalf("expected exit %d, got %d", exitError, code)
	}
	if !strings.Contains(errOut, "invalid log format") {
		t.Errorf("expected a validation error, got %q", errOut)
	}
}

func TestRun_BadFlag(t *testing.T) {
	if code, _, _ := runCLI(t, "-nope"); code != exitError {
		t.Errorf("expected exit %d, got %d", exitError, code)
	}
	if code, _, _ := runCLI(t, "-h"); code != exitOK {
		t.Errorf("expected help to exit %d, got %d", exitOK, code)
	}
}

func TestRun_OversizedTerm(t *testing.T) {
	for _, term := range []string{"1e300", "20000"} {
		code, out, errOut := runCLI(t, "-term", term)
		if code != exitNoResult {
			t.Errorf("term %s: expected exit %d, got %d", term, exitNoResult, code)
		}
		if out != "" || !strings.Contains(errOut, "Enter Loan Details") {
			t.Errorf("term %s: expected the prompt instead of a schedule", term)
		}
	}
}
