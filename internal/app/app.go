package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"worklog_report/analysis"
	"worklog_report/config"
	"worklog_report/internal/store"
	"worklog_report/internal/watch"
	"worklog_report/metrics"
	"worklog_report/report"
	"worklog_report/worklog"
)

// App wires the Load → Analyze → Render pipeline together. The report
// goes to out; diagnostics go through the log package to stderr.
type App struct {
	cfg     config.Config
	archive *store.Store
	metrics *metrics.Metrics
	out     io.Writer
	now     func() time.Time
}

func New(cfg config.Config) (*App, error) {
	a := &App{
		cfg:     cfg,
		metrics: metrics.New(),
		out:     os.Stdout,
		now:     time.Now,
	}
	if cfg.DBPath != "" {
		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open ingest archive: %w", err)
		}
		a.archive = st
	}
	return a, nil
}

func (a *App) Close() error {
	if a.archive != nil {
		return a.archive.Close()
	}
	return nil
}

// Run executes one pipeline pass, then keeps regenerating the report on
// work-log changes when watch mode is enabled.
func (a *App) Run(ctx context.Context) error {
	if !a.cfg.Watch {
		return a.RunOnce(ctx)
	}
	if err := a.RunOnce(ctx); err != nil {
		// Watch mode stays alive across bad passes; the log fills in.
		log.Printf("%v", err)
	}
	watcher := watch.New(a.cfg.InputPath, func() error { return a.RunOnce(ctx) })
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	<-ctx.Done()
	return nil
}

// RunOnce performs a single Load → Analyze → Render pass. A missing or
// unreadable work log is the only error; zero valid records ends the pass
// with a termination message and no report.
func (a *App) RunOnce(ctx context.Context) error {
	loaded, err := worklog.NewLoader(a.cfg.InputPath).Load()
	a.metrics.RecordLoad(len(loaded.Records), loaded.Rejected)
	a.metrics.RecordRunCompletion(err)
	if err != nil {
		return fmt.Errorf("run terminated, work log could not be read: %w", err)
	}

	if a.archive != nil {
		runID := uuid.NewString()
		if err := a.archive.ArchiveRun(ctx, runID, a.cfg.InputPath, loaded.Records, loaded.Rejected, a.now()); err != nil {
			log.Printf("archive write failed (run %s): %v", runID, err)
		}
	}

	if len(loaded.Records) == 0 {
		log.Printf("no valid records were loaded from %s, analysis cannot proceed", a.cfg.InputPath)
		return nil
	}

	result := analysis.Run(loaded.Records, a.cfg.Keywords)
	report.NewRenderer(a.out, a.cfg.Report.LineWidth, a.cfg.Report.BarWidth).Render(result, a.now())

	snap := a.metrics.Snapshot()
	log.Printf("run complete: rows accepted=%d rejected=%d (runs=%d failed=%d)",
		snap.RowsAccepted, snap.RowsRejected, snap.RunsFinished, snap.RunsFailed)
	return nil
}
