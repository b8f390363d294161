package cmd

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

const sampleLines = `Revenue: $10,500
Expenses: $4,000
Gross Profit Margin: 4.8%
Net Profit Margin: 61.9%
Working Capital Ratio: -225.0%
`

func TestMetricsCmd(t *testing.T) {
	yamlLedger := filepath.Join("..", "testdata", "ledger.yaml")
	envelope := filepath.Join("..", "testdata", "envelope.json")

	testCases := []struct {
		name string
		args []string
	}{
		{name: "flag", args: []string{"-f", sampleLedger}},
		{name: "argument", args: []string{sampleLedger}},
		{name: "yaml", args: []string{yamlLedger}},
		{name: "selection", args: []string{"-select", "$.payload.ledger", envelope}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, out, errOut := run(t, &metricsCmd{}, tc.args...)
			if status != subcommands.ExitSuccess {
				t.Fatalf("Execute() = %v, stderr: %s", status, errOut)
			}
			if diff := cmp.Diff(sampleLines, out); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMetricsCmd_DefaultSource(t *testing.T) {
	t.Setenv(EnvLedgerFile, sampleLedger)

	status, out, errOut := run(t, &metricsCmd{})
	if status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, stderr: %s", status, errOut)
	}
	if out != sampleLines {
		t.Errorf("output = %q, want %q", out, sampleLines)
	}
}

func TestMetricsCmd_JSON(t *testing.T) {
	status, out, errOut := run(t, &metricsCmd{}, "-json", sampleLedger)
	if status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, stderr: %s", status, errOut)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	want := map[string]any{
		"currency":            "AUD",
		"balanceDate":         "2020-09-30",
		"revenue":             10500.0,
		"expenses":            4000.0,
		"grossProfitMargin":   500.0 / 10500,
		"netProfitMargin":     6500.0 / 10500,
		"assets":              4500.0,
		"liabilities":         -2000.0,
		"workingCapitalRatio": -2.25,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON output mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(out, "{\n  \"currency\": \"AUD\",\n  \"balanceDate\"") {
		t.Errorf("JSON output is not in the stable field order:\n%s", out)
	}
}

func TestMetricsCmd_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "data.json")

	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing file",
			args:    []string{missing},
			wantErr: `An error occurred: could not read ledger source "` + missing + `": open ` + missing + ": no such file or directory\n",
		},
		{
			name:    "malformed file",
			args:    []string{filepath.Join("..", "testdata", "malformed.json")},
			wantErr: "An error occurred: could not read ledger source",
		},
		{
			name:    "invalid ledger",
			args:    []string{createTempLedger(t, "invalid.json", invalidLedger)},
			wantErr: `An error occurred: invalid ledger: connectionId: invalid uuid "abc"; data[1].accountName: required` + "\n",
		},
		{
			name:    "no revenue",
			args:    []string{createTempLedger(t, "expenses.json", noRevenueLedger)},
			wantErr: "An error occurred: Revenue cannot be zero when calculating the gross profit margin\n",
		},
		{
			name:    "too many sources",
			args:    []string{sampleLedger, sampleLedger},
			wantErr: "An error occurred: expected at most one ledger source",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, out, errOut := run(t, &metricsCmd{}, tc.args...)
			if status != subcommands.ExitFailure {
				t.Errorf("Execute() = %v, want ExitFailure", status)
			}
			if out != "" {
				t.Errorf("Execute() printed %q on a failure, want nothing", out)
			}
			if !strings.HasPrefix(errOut, tc.wantErr) {
				t.Errorf("stderr = %q, want prefix %q", errOut, tc.wantErr)
			}
			if strings.Count(errOut, "\n") != 1 {
				t.Errorf("stderr = %q, want a single line", errOut)
			}
		})
	}
}

func TestReportCmd(t *testing.T) {
	status, out, errOut := run(t, &reportCmd{}, "-raw", sampleLedger)
	if status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, stderr: %s", status, errOut)
	}
	for _, want := range []string{"# Ledger Metrics on 2020-09-30", "Current Liabilities", "-$2,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("report does not contain %q:\n%s", want, out)
		}
	}
}
