package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"worklog_report/analysis"
	"worklog_report/config"
	"worklog_report/worklog"
)

var renderClock = time.Date(2024, time.February, 1, 9, 30, 0, 0, time.UTC)

func sampleResult() analysis.Result {
	records := []worklog.Record{
		worklog.NewRecord("2024-01-01", "Auth", "4", "Done", "fixed a critical bug"),
		worklog.NewRecord("2024-01-01", "Auth", "2", "Done", "smooth sailing"),
		worklog.NewRecord("2024-01-02", "UI", "3", "Done", "minor delay issue"),
	}
	return analysis.Run(records, config.DefaultNegativeKeywords())
}

func render(t *testing.T, res analysis.Result) string {
	t.Helper()
	var buf bytes.Buffer
	NewRenderer(&buf, 70, 30).Render(res, renderClock)
	return buf.String()
}

func TestRenderIsDeterministic(t *testing.T) {
	first := render(t, sampleResult())
	second := render(t, sampleResult())
	if first != second {
		t.Fatal("render output must be byte-stable for a fixed result and clock")
	}
}

func TestRenderSeparatorWidth(t *testing.T) {
	out := render(t, sampleResult())
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "=") || strings.HasPrefix(line, "-") {
			if len(line) != 70 {
				t.Fatalf("separator line has width %d: %q", len(line), line)
			}
		}
	}
}

func TestRenderSections(t *testing.T) {
	out := render(t, sampleResult())
	for _, want := range []string{
		"[1] Time Efficiency Analysis",
		"Project Span:     2024-01-01 to 2024-01-02",
		"Total Duration:   9.0 hours",
		"Total Work Days:  2 days",
		"Avg Daily Work:   4.50 hours",
		"[2] Module Workload Breakdown (Total 9.0 hours)",
		"Auth: 6.0h (66.7%)",
		"UI: 3.0h (33.3%)",
		"[3] Potential Risk Analysis",
		"Total Records:           3 entries",
		"Records with Risk Words: 2 entries (66.7%)",
		"**HIGH RISK / 高风险**",
		"Report generated on: 2024-02-01 09:30:00",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q\n%s", want, out)
		}
	}
}

func TestRenderBarLength(t *testing.T) {
	res := analysis.Result{
		Time: analysis.TimeStats{TotalDuration: 8, WorkDays: 1, AvgDaily: 8,
			StartDate: renderClock, EndDate: renderClock},
		Modules: []analysis.ModuleLoad{
			{Module: "Core", Duration: 4, Percentage: 50},
			{Module: "UI", Duration: 4, Percentage: 50},
		},
		TotalDuration: 8,
		Risk:          analysis.RiskStats{TotalCount: 2},
	}
	out := render(t, res)
	// 50% of a 30-char bar is exactly 15 marks.
	if !strings.Contains(out, "| "+strings.Repeat("#", 15)+"\n") {
		t.Fatalf("expected a 15-char bar for 50%%:\n%s", out)
	}
}

func TestRenderEmptyResult(t *testing.T) {
	out := render(t, analysis.Result{})
	for _, want := range []string{
		"No valid work duration data.",
		"No module workload data.",
		"No records available for risk analysis.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("empty report missing %q\n%s", want, out)
		}
	}
}

func TestRenderRankedKeywordLines(t *testing.T) {
	out := render(t, sampleResult())
	if !strings.Contains(out, "Most Frequent Negative Keywords:") {
		t.Fatalf("missing keyword header:\n%s", out)
	}
	if !strings.Contains(out, "- 'Bug' occurred 1 times") {
		t.Fatalf("missing ranked keyword line:\n%s", out)
	}
}
