package worklog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// LoadResult carries the outcome of one ingest pass.
type LoadResult struct {
	Records  []Record
	Rejected int
}

// Loader reads a comma-separated work log from a fixed path. Only a
// missing file or a stream-level read failure is fatal; malformed rows
// are counted and dropped.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads every row after the header and returns the valid records in
// file order plus the count of rejected rows.
func (l *Loader) Load() (LoadResult, error) {
	var res LoadResult

	if _, err := os.Stat(l.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return res, fmt.Errorf("work log not found at %q", l.path)
		}
		return res, fmt.Errorf("work log not readable: %w", err)
	}
	file, err := os.Open(l.path)
	if err != nil {
		return res, fmt.Errorf("open work log: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return LoadResult{}, fmt.Errorf("read work log: %w", err)
		}
		if header {
			// The first row is always treated as a header.
			header = false
			continue
		}
		// Blank-row skip runs before the field-count check so a row of
		// empty fields is absorbed silently rather than rejected.
		if allEmpty(row) {
			continue
		}
		rec, ok := FromRow(row)
		if !ok || !rec.IsValid() {
			res.Rejected++
			continue
		}
		res.Records = append(res.Records, rec)
	}

	log.Printf("work log parsed: loaded %d valid records from %s, rejected %d rows", len(res.Records), l.path, res.Rejected)
	return res, nil
}

func allEmpty(row []string) bool {
	for _, field := range row {
		if field != "" {
			return false
		}
	}
	return true
}
