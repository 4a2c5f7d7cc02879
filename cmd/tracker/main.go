package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/eugenenazirov/workout-tracker/internal/application"
	"github.com/eugenenazirov/workout-tracker/internal/config"
	"github.com/eugenenazirov/workout-tracker/internal/logging"
	"github.com/eugenenazirov/workout-tracker/internal/workout"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "workout-tracker: %v\n", err)
		os.Exit(1)
	}
}

// run parses flags, resolves configuration and processes the batch.
// Skipped packages are printed and do not make run fail.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("workout-tracker", "Workout tracker - computes distance, speed and calories from sensor packages")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	packagesStr := kingpinApp.Flag("packages", fmt.Sprintf("Packages to process, e.g. \"RUN:15000,1,75;WLK:9000,1,75,180\" (codes: %v)", workout.Codes())).String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()
	metricsFile := kingpinApp.Flag("metrics-file", "Write batch metrics in Prometheus text format to this path").String()

	if _, err := kingpinApp.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *packagesStr != "" {
		overrides.PackagesStr = packagesStr
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	if *metricsFile != "" {
		overrides.MetricsFile = metricsFile
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	reg := prometheus.NewRegistry()
	app, err := application.New(cfg, logger,
		application.WithOutput(stdout),
		application.WithRegisterer(reg),
	)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		return err
	}

	if _, err := app.Run(ctx); err != nil {
		logger.Error("batch aborted", zap.Error(err))
		return err
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			logger.Error("failed to write metrics", zap.String("path", cfg.MetricsFile), zap.Error(err))
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", zap.String("path", cfg.MetricsFile))
	}
	return nil
}
