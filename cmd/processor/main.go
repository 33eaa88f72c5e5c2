package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"simcli/internal/batch"
	"simcli/internal/config"
	"simcli/internal/exporter"
	"simcli/internal/files"
	"simcli/internal/infrastructure"
)

func main() {
	inDir := flag.String("in", "", "input directory for .SIM files (defaults to configured input dir)")
	outDir := flag.String("out", "", "output directory for CSV files (defaults to configured output dir)")
	workers := flag.Int("workers", 0, "number of concurrent documents (defaults to configured worker count)")
	workbook := flag.Bool("workbook", true, "also write a Master.xlsx workbook per document")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *inDir != "" {
		cfg.Processing.InputDir = *inDir
	}
	if *outDir != "" {
		cfg.Processing.OutputDir = *outDir
	}
	if *workers > 0 {
		cfg.Processing.Workers = *workers
	}
	cfg.Processing.Workbook = cfg.Processing.Workbook && *workbook

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = infrastructure.GetLogger()
	}
	defer infrastructure.CloseLogger()

	paths := config.NewPaths(cfg)
	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("failed to create required directories", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("starting SIM report processing",
		slog.String("input_dir", paths.InputDir),
		slog.String("output_dir", paths.OutputDir),
		slog.Int("workers", cfg.Processing.Workers))

	discovery := files.NewDiscovery(paths.InputDir)
	found, err := discovery.FindSIMFiles(".")
	if err != nil {
		logger.Error("failed to read input directory", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(found) == 0 {
		logger.Warn("no SIM files found in input directory",
			slog.String("input_dir", paths.InputDir))
		return
	}
	logger.Info("SIM files discovered", slog.Int("count", len(found)))

	exporters := []batch.Exporter{exporter.NewCSVWriter(paths)}
	if cfg.Processing.Workbook {
		exporters = append(exporters, exporter.NewWorkbookWriter(paths))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var docPaths []string
	for _, f := range found {
		docPaths = append(docPaths, f.Path)
	}

	runner := batch.NewRunner(cfg.Processing.Workers, logger, exporters...)
	sum, err := runner.Run(ctx, docPaths)
	if err != nil {
		logger.Error("batch aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if sum.Failed > 0 && sum.Processed == 0 {
		logger.Error("all documents failed", slog.Int("failed", sum.Failed))
		os.Exit(1)
	}
	logger.Info("all documents processed",
		slog.Int("processed", sum.Processed),
		slog.Int("failed", sum.Failed),
		slog.Int("rows", sum.RowsWritten))
}
