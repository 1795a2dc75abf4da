package metrics

import "sync/atomic"

// Metrics captures shared ingest stats across pipeline runs. Watch mode
// reuses one instance for every regeneration, so counters are cumulative.
type Metrics struct {
	rowsAccepted int64
	rowsRejected int64
	runsFinished int64
	runsFailed   int64
}

// Snapshot provides a consistent view of the current metrics.
type Snapshot struct {
	RowsAccepted int64
	RowsRejected int64
	RunsFinished int64
	RunsFailed   int64
}

// New creates a zeroed Metrics instance.
func New() *Metrics {
	return &Metrics{}
}

// RecordLoad adds one load pass's accepted/rejected row counts.
func (m *Metrics) RecordLoad(accepted, rejected int) {
	atomic.AddInt64(&m.rowsAccepted, int64(accepted))
	atomic.AddInt64(&m.rowsRejected, int64(rejected))
}

// RecordRunCompletion increments finished/failed counters based on outcome.
func (m *Metrics) RecordRunCompletion(err error) {
	atomic.AddInt64(&m.runsFinished, 1)
	if err != nil {
		atomic.AddInt64(&m.runsFailed, 1)
	}
}

// Snapshot returns a read-only view of metrics.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		RowsAccepted: atomic.LoadInt64(&m.rowsAccepted),
		RowsRejected: atomic.LoadInt64(&m.rowsRejected),
		RunsFinished: atomic.LoadInt64(&m.runsFinished),
		RunsFailed:   atomic.LoadInt64(&m.runsFailed),
	}
}
