package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	OutcomeProcessed        = "processed"
	OutcomeInvalidType      = "invalid_workout_type"
	OutcomeInsufficientData = "insufficient_data"

	emptyCodeLabel = "none"
)

// Recorder counts workout records by type and outcome.
type Recorder struct {
	records  *prometheus.CounterVec
	calories *prometheus.CounterVec
}

// NewRecorder registers the workout counters with reg.
// A nil reg uses a private registry, which keeps repeated runs in tests independent.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	r := &Recorder{
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workout_tracker",
			Subsystem: "driver",
			Name:      "records_total",
			Help:      "Number of workout records handled, grouped by workout code and outcome.",
		}, []string{"code", "outcome"}),
		calories: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workout_tracker",
			Subsystem: "driver",
			Name:      "calories_total",
			Help:      "Calories burned across processed records, grouped by workout type.",
		}, []string{"workout_type"}),
	}

	for _, c := range []prometheus.Collector{r.records, r.calories} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// RecordProcessed counts a successfully summarised record.
func (r *Recorder) RecordProcessed(code, workoutType string, calories float64) {
	r.records.WithLabelValues(code, OutcomeProcessed).Inc()
	if calories > 0 {
		r.calories.WithLabelValues(workoutType).Add(calories)
	}
}

// RecordFailure counts a skipped record.
func (r *Recorder) RecordFailure(code, outcome string) {
	if code == "" {
		code = emptyCodeLabel
	}
	r.records.WithLabelValues(code, outcome).Inc()
}
