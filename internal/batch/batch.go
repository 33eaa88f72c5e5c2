// Package batch runs the per-document parse pipeline over many .SIM
// documents concurrently. Documents share no mutable state, so each worker
// owns one document end to end and produces its own isolated table set;
// a fatal error abandons that document only and the batch moves on.
package batch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"simcli/internal/infrastructure"
	"simcli/internal/simreport"
)

// Exporter receives the finished tables of one document.
type Exporter interface {
	Export(rs *simreport.ResultSet) error
}

// Runner processes a batch of documents with bounded concurrency.
type Runner struct {
	Workers   int
	Logger    *slog.Logger
	Parser    *simreport.Parser
	Exporters []Exporter
}

// NewRunner builds a runner; a nil logger falls back to slog.Default().
func NewRunner(workers int, logger *slog.Logger, exporters ...Exporter) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		Workers:   workers,
		Logger:    logger,
		Parser:    simreport.NewParser(logger),
		Exporters: exporters,
	}
}

// Summary reports the outcome of one batch run.
type Summary struct {
	RunID       string
	Processed   int
	Failed      int
	RowsWritten int
}

// Run parses and exports every document path. Cancellation is honored at
// per-document granularity: documents not yet started are skipped once the
// context is done.
func (r *Runner) Run(ctx context.Context, paths []string) (*Summary, error) {
	sum := &Summary{RunID: uuid.NewString()}
	r.Logger.Info("batch started",
		slog.String("run_id", sum.RunID),
		slog.Int("documents", len(paths)),
		slog.Int("workers", r.Workers))

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			rows, ok := r.processOne(path, sum.RunID)
			mu.Lock()
			if ok {
				sum.Processed++
				sum.RowsWritten += rows
			} else {
				sum.Failed++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, err
	}

	r.Logger.Info("batch finished",
		slog.String("run_id", sum.RunID),
		slog.Int("processed", sum.Processed),
		slog.Int("failed", sum.Failed))
	return sum, nil
}

// processOne runs one document through read, parse, and export. Failures
// are logged with full context and contained to the document.
func (r *Runner) processOne(path, runID string) (int, bool) {
	logger := r.Logger.With(
		slog.String("run_id", runID),
		slog.String("document", path))

	doc, err := simreport.ReadDocument(path)
	if err != nil {
		logger.Error("failed to read document", slog.String("error", err.Error()))
		infrastructure.DocumentsFailed.Inc()
		return 0, false
	}

	rs, err := r.Parser.Parse(doc)
	if err != nil {
		logger.Error("document parse aborted", slog.String("error", err.Error()))
		infrastructure.DocumentsFailed.Inc()
		return 0, false
	}

	for _, exp := range r.Exporters {
		if err := exp.Export(rs); err != nil {
			logger.Error("export failed", slog.String("error", err.Error()))
			infrastructure.DocumentsFailed.Inc()
			return 0, false
		}
	}

	infrastructure.DocumentsProcessed.Inc()
	infrastructure.RowsWritten.Add(float64(rs.RowsWritten()))
	infrastructure.ZoneWriteFailures.Add(float64(rs.Stats.ZoneWriteFailures))
	return rs.RowsWritten(), true
}
