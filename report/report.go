package report

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"worklog_report/analysis"
)

const (
	reportTitle    = "Project Health Analysis Report / 项目健康分析报告"
	dateLayout     = "2006-01-02"
	footerLayout   = "2006-01-02 15:04:05"
	barChar        = "#"
	barGutterWidth = 3 // " | " between the info column and the bar
)

// Renderer formats an analysis.Result as a fixed-width terminal report.
// Width settings are constructor parameters so tests can render narrow
// reports without touching process-wide state.
type Renderer struct {
	w         io.Writer
	lineWidth int
	barWidth  int
}

func NewRenderer(w io.Writer, lineWidth, barWidth int) *Renderer {
	return &Renderer{w: w, lineWidth: lineWidth, barWidth: barWidth}
}

// Render writes the full report. The footer timestamp is the only
// non-deterministic line, so the clock is passed in by the caller.
func (r *Renderer) Render(res analysis.Result, now time.Time) {
	r.separator('=')
	fmt.Fprintln(r.w, center(reportTitle, r.lineWidth))
	r.separator('=')

	r.timeSection(res.Time)
	r.moduleSection(res.Modules, res.TotalDuration)
	r.riskSection(res.Risk)

	r.separator('=')
	fmt.Fprintf(r.w, "Report generated on: %s\n", now.Format(footerLayout))
	r.separator('=')
}

func (r *Renderer) separator(char byte) {
	fmt.Fprintln(r.w, strings.Repeat(string(char), r.lineWidth))
}

func (r *Renderer) timeSection(ts analysis.TimeStats) {
	r.separator('-')
	fmt.Fprintln(r.w, "[1] Time Efficiency Analysis / 时间效率分析")
	r.separator('-')

	if ts.TotalDuration == 0 {
		fmt.Fprintln(r.w, "  No valid work duration data. / 无有效工时数据。")
		return
	}
	fmt.Fprintf(r.w, "  Project Span:     %s to %s\n", ts.StartDate.Format(dateLayout), ts.EndDate.Format(dateLayout))
	fmt.Fprintf(r.w, "  Total Duration:   %.1f hours / 总工时\n", ts.TotalDuration)
	fmt.Fprintf(r.w, "  Total Work Days:  %d days / 总工作日\n", ts.WorkDays)
	fmt.Fprintf(r.w, "  Avg Daily Work:   %.2f hours / 日均工时\n", ts.AvgDaily)
}

func (r *Renderer) moduleSection(loads []analysis.ModuleLoad, total float64) {
	r.separator('-')
	fmt.Fprintf(r.w, "[2] Module Workload Breakdown (Total %.1f hours) / 模块工作量细分\n", total)
	r.separator('-')

	if len(loads) == 0 {
		fmt.Fprintln(r.w, "  No module workload data. / 无模块工作量数据。")
		return
	}
	infoWidth := r.lineWidth - r.barWidth - barGutterWidth
	for _, m := range loads {
		bar := strings.Repeat(barChar, int(m.Percentage/100*float64(r.barWidth)))
		info := fmt.Sprintf("%s: %.1fh (%.1f%%)", m.Module, m.Duration, m.Percentage)
		fmt.Fprintf(r.w, "%s | %s\n", padRight(info, infoWidth), bar)
	}
}

func (r *Renderer) riskSection(rs analysis.RiskStats) {
	r.separator('-')
	fmt.Fprintln(r.w, "[3] Potential Risk Analysis (Based on Negative Keywords) / 潜在风险分析")
	r.separator('-')

	if rs.TotalCount == 0 {
		fmt.Fprintln(r.w, "  No records available for risk analysis. / 无可用记录进行风险分析。")
		return
	}
	pct := rs.NegativePercent()
	fmt.Fprintf(r.w, "  Total Records:           %d entries / 总记录数\n", rs.TotalCount)
	fmt.Fprintf(r.w, "  Records with Risk Words: %d entries (%.1f%%) / 含风险词记录数\n", rs.NegativeCount, pct)
	fmt.Fprintf(r.w, "  AI Risk Assessment:      **%s** / AI 风险评估\n", verdict(analysis.Classify(pct)))

	if len(rs.TopWords) > 0 {
		fmt.Fprintln(r.w, "\n  Most Frequent Negative Keywords: / 最常出现的负面关键词:")
		for _, kc := range rs.TopWords {
			fmt.Fprintf(r.w, "  - '%s' occurred %d times / 出现次数\n", capitalize(kc.Word), kc.Count)
		}
	}
}

func verdict(t analysis.Tier) string {
	switch t {
	case analysis.TierHigh:
		return "HIGH RISK / 高风险"
	case analysis.TierMedium:
		return "MEDIUM RISK / 中等风险"
	default:
		return "LOW RISK / 低风险"
	}
}

// center pads by rune count so the CJK half of the title stays balanced.
func center(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

func padRight(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
