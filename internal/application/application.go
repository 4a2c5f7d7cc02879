package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/eugenenazirov/workout-tracker/internal/config"
	"github.com/eugenenazirov/workout-tracker/internal/metrics"
	"github.com/eugenenazirov/workout-tracker/internal/packages"
	"github.com/eugenenazirov/workout-tracker/internal/workout"
)

const errorLinePrefix = "Error: "

// App encapsulates the driver dependencies.
type App struct {
	store      packages.Store
	recorder   *metrics.Recorder
	logger     *zap.Logger
	out        io.Writer
	logRecords bool
	newRunID   func() string
}

// Report summarises a finished batch.
type Report struct {
	RunID     string
	Processed int
	Failed    int
}

type options struct {
	out        io.Writer
	registerer prometheus.Registerer
	newRunID   func() string
}

// Option configures App behaviour.
type Option func(*options)

// WithOutput overrides where summaries are printed. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithRegisterer registers the driver metrics with reg instead of a private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithRunID overrides the batch identifier source, primarily for tests.
func WithRunID(fn func() string) Option {
	return func(o *options) {
		o.newRunID = fn
	}
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	o := options{
		out:      os.Stdout,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}

	store := packages.NewMemoryStore()
	if err := store.Replace(cfg.Packages); err != nil {
		return nil, fmt.Errorf("failed to apply packages: %w", err)
	}

	recorder, err := metrics.NewRecorder(o.registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return &App{
		store:      store,
		recorder:   recorder,
		logger:     logger,
		out:        o.out,
		logRecords: cfg.LogRecords,
		newRunID:   o.newRunID,
	}, nil
}

// Run processes the batch in declaration order. Every package yields one printed
// line, either its summary or the reason it was skipped, and a failed package
// never stops the batch. Run only fails when output cannot be written or ctx is done.
func (a *App) Run(ctx context.Context) (Report, error) {
	batch, err := a.store.List()
	if err != nil {
		return Report{}, fmt.Errorf("list packages: %w", err)
	}

	report := Report{RunID: a.newRunID()}
	logger := a.logger.With(zap.String("run_id", report.RunID))
	logger.Info("batch started", zap.Int("packages", len(batch)))

	for i, pkg := range batch {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		var line string
		msg, err := a.process(pkg)
		if err != nil {
			report.Failed++
			line = errorLinePrefix + err.Error()
			logger.Warn("workout skipped",
				zap.Int("index", i),
				zap.String("code", pkg.Code),
				zap.Float64s("data", pkg.Data),
				zap.Error(err),
			)
		} else {
			report.Processed++
			line = msg.String()
			if a.logRecords {
				logger.Debug("workout processed",
					zap.Int("index", i),
					zap.String("code", pkg.Code),
					zap.String("workout_type", msg.WorkoutType),
					zap.Float64("distance_km", msg.Distance),
					zap.Float64("calories", msg.Calories),
				)
			}
		}

		if _, err := fmt.Fprintln(a.out, line); err != nil {
			return report, fmt.Errorf("write summary: %w", err)
		}
	}

	logger.Info("batch finished",
		zap.Int("processed", report.Processed),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

func (a *App) process(pkg packages.Package) (workout.InfoMessage, error) {
	training, err := workout.ReadPackage(pkg.Code, pkg.Data)
	if err != nil {
		a.recorder.RecordFailure(pkg.Code, outcomeFor(err))
		return workout.InfoMessage{}, err
	}

	msg, err := workout.Compute(training)
	if err != nil {
		a.recorder.RecordFailure(pkg.Code, outcomeFor(err))
		return workout.InfoMessage{}, err
	}

	a.recorder.RecordProcessed(pkg.Code, msg.WorkoutType, msg.Calories)
	return msg, nil
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, workout.ErrInsufficientData):
		return metrics.OutcomeInsufficientData
	default:
		return metrics.OutcomeInvalidType
	}
}
