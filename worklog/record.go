package worklog

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Record is one normalized work-log entry. Construction never fails:
// unparseable fields degrade to sentinel values (zero date, 0.0 duration)
// and only surface through IsValid.
type Record struct {
	Date     time.Time // zero when the raw date did not parse
	Module   string
	Duration float64
	Status   string
	Summary  string // trimmed and lowercased for keyword matching
}

// NewRecord builds a Record from the five raw text fields of a row.
func NewRecord(date, module, duration, status, summary string) Record {
	r := Record{
		Module:  strings.TrimSpace(module),
		Status:  strings.TrimSpace(status),
		Summary: strings.ToLower(strings.TrimSpace(summary)),
	}
	if d, err := time.Parse(dateLayout, strings.TrimSpace(date)); err == nil {
		r.Date = d
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(duration), 64); err == nil {
		r.Duration = v
	}
	return r
}

// FromRow builds a Record from a raw CSV row, consuming only the first
// five fields and ignoring trailing extras. Reports false when the row is
// structurally too short.
func FromRow(row []string) (Record, bool) {
	if len(row) < 5 {
		return Record{}, false
	}
	return NewRecord(row[0], row[1], row[2], row[3], row[4]), true
}

// IsValid reports whether the record carries a parseable date and a
// strictly positive duration.
func (r Record) IsValid() bool {
	return !r.Date.IsZero() && r.Duration > 0
}

// HasNegativeSentiment reports whether the summary contains any of the
// given keywords as a substring, so "problematic" matches "problem".
func (r Record) HasNegativeSentiment(keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(r.Summary, kw) {
			return true
		}
	}
	return false
}
