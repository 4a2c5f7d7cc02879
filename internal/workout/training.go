package workout

import (
	"fmt"
	"math"
)

const (
	stepLength     = 0.65
	strokeLength   = 1.38
	metersInKm     = 1000
	minutesInHour  = 60
	runSpeedFactor = 18
	runSpeedShift  = 20
	walkWeightRate = 0.035
	walkSpeedRate  = 0.029
	swimSpeedShift = 1.1
	swimWeightRate = 2
)

// training holds the fields and formulas shared by every variant.
type training struct {
	action     int
	duration   float64
	weight     float64
	stepLength float64
}

func (t training) Distance() float64 {
	return float64(t.action) * t.stepLength / metersInKm
}

func (t training) MeanSpeed() float64 {
	return t.Distance() / t.duration
}

func (t training) DurationHours() float64 {
	return t.duration
}

func (t training) DurationMinutes() float64 {
	return t.duration * minutesInHour
}

func (t training) validate() error {
	if err := positive("duration", t.duration); err != nil {
		return err
	}
	return finite("weight", t.weight)
}

func positive(field string, value float64) error {
	if !(value > 0) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInsufficientData, field, value)
	}
	return nil
}

func finite(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInsufficientData, field, value)
	}
	return nil
}

// Running is a run measured in steps.
type Running struct {
	training
}

// NewRunning creates a running workout.
func NewRunning(action int, duration, weight float64) Running {
	return Running{training{action: action, duration: duration, weight: weight, stepLength: stepLength}}
}

func (Running) Name() string { return "Running" }

func (r Running) SpentCalories() float64 {
	return (runSpeedFactor*r.MeanSpeed() - runSpeedShift) * r.weight / metersInKm * r.DurationMinutes()
}

// SportsWalking is a walk measured in steps. The athlete's height is part of the calorie formula.
type SportsWalking struct {
	training
	height float64
}

// NewSportsWalking creates a walking workout.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		training: training{action: action, duration: duration, weight: weight, stepLength: stepLength},
		height:   height,
	}
}

func (SportsWalking) Name() string { return "SportsWalking" }

// SpentCalories floors the speed-to-height ratio before scaling it.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	ratio := math.Floor(speed * speed / w.height)
	return (walkWeightRate*w.weight + ratio*walkSpeedRate*w.weight) * w.DurationMinutes()
}

func (w SportsWalking) validate() error {
	if err := w.training.validate(); err != nil {
		return err
	}
	return positive("height", w.height)
}

// Swimming is a pool swim measured in strokes.
// Its speed comes from the pool geometry rather than from the stroke count.
type Swimming struct {
	training
	poolLength float64
	poolCount  int
}

// NewSwimming creates a swimming workout.
func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) Swimming {
	return Swimming{
		training:   training{action: action, duration: duration, weight: weight, stepLength: strokeLength},
		poolLength: poolLength,
		poolCount:  poolCount,
	}
}

func (Swimming) Name() string { return "Swimming" }

func (s Swimming) MeanSpeed() float64 {
	return s.poolLength * float64(s.poolCount) / metersInKm / s.duration
}

func (s Swimming) validate() error {
	if err := s.training.validate(); err != nil {
		return err
	}
	return finite("pool length", s.poolLength)
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimSpeedShift) * swimWeightRate * s.weight
}

// Compute evaluates the workout formulas and returns the summary.
func Compute(t Training) (InfoMessage, error) {
	if t == nil {
		return InfoMessage{}, fmt.Errorf("%w: no workout", ErrInsufficientData)
	}
	if err := t.validate(); err != nil {
		return InfoMessage{}, err
	}
	return InfoMessage{
		WorkoutType: t.Name(),
		Duration:    t.DurationHours(),
		Distance:    t.Distance(),
		Speed:       t.MeanSpeed(),
		Calories:    t.SpentCalories(),
	}, nil
}
