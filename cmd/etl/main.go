package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cinepulse/internal/config"
	"cinepulse/internal/dataprocessing"
	"cinepulse/internal/exporter"
	"cinepulse/internal/infrastructure"
)

func main() {
	moviesPath := flag.String("movies", "", "path to the movies CSV (defaults to the configured data directory)")
	creditsPath := flag.String("credits", "", "path to the credits CSV (defaults to the configured data directory)")
	outPath := flag.String("out", "", "output file; .csv or .xlsx decides the format (defaults to exports/movies_clean.csv)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.MustInitializeLogger(cfg.Logging)
	defer infrastructure.CloseLogFile()

	if *moviesPath == "" {
		*moviesPath = cfg.MoviesPath()
	}
	if *creditsPath == "" {
		*creditsPath = cfg.CreditsPath()
	}
	if *outPath == "" {
		*outPath = filepath.Join(cfg.ExportPath(), "movies_clean.csv")
	}

	if err := run(logger, *moviesPath, *creditsPath, *outPath); err != nil {
		logger.Error("ETL run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, moviesPath, creditsPath, outPath string) error {
	ctx := context.Background()

	loader := dataprocessing.NewLoader(moviesPath, creditsPath, logger, nil)
	movies, stats, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	logger.Info("Clean table built",
		slog.Int("movies_read", stats.MoviesRead),
		slog.Int("credits_read", stats.CreditsRead),
		slog.Int("kept", stats.Kept),
		slog.Int("decode_anomalies", stats.DecodeAnomalies),
		slog.Duration("duration", stats.Duration))

	switch filepath.Ext(outPath) {
	case ".csv":
		err = exporter.ExportCSVFile(outPath, movies)
	case ".xlsx":
		err = exporter.ExportXLSXFile(outPath, movies)
	default:
		return fmt.Errorf("unsupported output format %q, use .csv or .xlsx", filepath.Ext(outPath))
	}
	if err != nil {
		return err
	}

	logger.Info("Export written",
		slog.String("path", outPath),
		slog.Int("movie_count", len(movies)))
	return nil
}
