package analysis

import (
	"sort"
	"strings"
	"time"

	"worklog_report/worklog"
)

// TimeStats summarizes total effort and the calendar span it covers.
type TimeStats struct {
	TotalDuration float64
	WorkDays      int
	StartDate     time.Time
	EndDate       time.Time
	AvgDaily      float64
}

// ModuleLoad is the aggregate effort attributed to one module label.
type ModuleLoad struct {
	Module     string
	Duration   float64
	Percentage float64
}

// KeywordCount is one ranked entry of the negative-keyword tally.
type KeywordCount struct {
	Word  string
	Count int
}

// RiskStats captures the negative-sentiment ratio and the top keywords.
type RiskStats struct {
	NegativeCount int
	TotalCount    int
	TopWords      []KeywordCount
}

// Result bundles the three independent analyses over one record set. It
// is built once per run and never mutated afterwards.
type Result struct {
	Time          TimeStats
	Modules       []ModuleLoad
	TotalDuration float64
	Risk          RiskStats
}

// Run computes all three analyses over the valid record sequence. The
// keyword slice order is the tie-break order for TopWords.
func Run(records []worklog.Record, keywords []string) Result {
	modules, total := moduleLoad(records)
	return Result{
		Time:          timeEfficiency(records),
		Modules:       modules,
		TotalDuration: total,
		Risk:          riskStats(records, keywords),
	}
}

func timeEfficiency(records []worklog.Record) TimeStats {
	var ts TimeStats
	if len(records) == 0 {
		return ts
	}
	days := make(map[time.Time]struct{}, len(records))
	for i, r := range records {
		ts.TotalDuration += r.Duration
		if i == 0 || r.Date.Before(ts.StartDate) {
			ts.StartDate = r.Date
		}
		if i == 0 || r.Date.After(ts.EndDate) {
			ts.EndDate = r.Date
		}
		days[r.Date] = struct{}{}
	}
	// Work days are distinct calendar dates, not the span between min
	// and max.
	ts.WorkDays = len(days)
	if ts.WorkDays > 0 {
		ts.AvgDaily = ts.TotalDuration / float64(ts.WorkDays)
	}
	return ts
}

func moduleLoad(records []worklog.Record) ([]ModuleLoad, float64) {
	totals := make(map[string]float64)
	var order []string
	var grand float64
	for _, r := range records {
		if _, seen := totals[r.Module]; !seen {
			order = append(order, r.Module)
		}
		totals[r.Module] += r.Duration
		grand += r.Duration
	}
	loads := make([]ModuleLoad, 0, len(order))
	for _, module := range order {
		duration := totals[module]
		var pct float64
		if grand > 0 {
			pct = duration / grand * 100
		}
		loads = append(loads, ModuleLoad{Module: module, Duration: duration, Percentage: pct})
	}
	// Stable sort: modules with equal duration keep first-seen order.
	sort.SliceStable(loads, func(i, j int) bool {
		return loads[i].Duration > loads[j].Duration
	})
	return loads, grand
}

func riskStats(records []worklog.Record, keywords []string) RiskStats {
	rs := RiskStats{TotalCount: len(records)}
	if len(records) == 0 {
		return rs
	}
	tallies := make(map[string]int, len(keywords))
	for _, r := range records {
		if !r.HasNegativeSentiment(keywords) {
			continue
		}
		rs.NegativeCount++
		// One record can raise several tallies when its summary holds
		// more than one trigger word.
		for _, kw := range keywords {
			if strings.Contains(r.Summary, kw) {
				tallies[kw]++
			}
		}
	}
	// Seed the ranking in keyword-list order so the stable sort breaks
	// ties by that fixed enumeration order.
	ranked := make([]KeywordCount, 0, len(tallies))
	for _, kw := range keywords {
		if n := tallies[kw]; n > 0 {
			ranked = append(ranked, KeywordCount{Word: kw, Count: n})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	rs.TopWords = ranked
	return rs
}

// NegativePercent is the share of records flagged negative, 0 when the
// record set is empty.
func (rs RiskStats) NegativePercent() float64 {
	if rs.TotalCount == 0 {
		return 0
	}
	return float64(rs.NegativeCount) / float64(rs.TotalCount) * 100
}
