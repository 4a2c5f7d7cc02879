package workout

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// Workout codes accepted by ReadPackage.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

type variant struct {
	fields int
	build  func(data []float64) (Training, error)
}

var variants = map[string]variant{
	CodeSwimming: {fields: 5, build: buildSwimming},
	CodeRunning:  {fields: 3, build: buildRunning},
	CodeWalking:  {fields: 4, build: buildWalking},
}

// ReadPackage turns a workout code and the raw sensor fields into a workout.
// Fields are ordered action, duration, weight, then height for walking or
// pool length and pool count for swimming.
func ReadPackage(code string, data []float64) (Training, error) {
	v, ok := variants[code]
	if !ok {
		return nil, fmt.Errorf("%w: unknown code %q", ErrInvalidWorkoutType, code)
	}
	if len(data) != v.fields {
		return nil, fmt.Errorf("%w: %s expects %d fields, got %d", ErrInvalidWorkoutType, code, v.fields, len(data))
	}
	return v.build(data)
}

// Codes returns the supported workout codes in sorted order.
func Codes() []string {
	return slices.Sorted(maps.Keys(variants))
}

func buildRunning(data []float64) (Training, error) {
	action, err := wholeNumber("action", data[0])
	if err != nil {
		return nil, err
	}
	return NewRunning(action, data[1], data[2]), nil
}

func buildWalking(data []float64) (Training, error) {
	action, err := wholeNumber("action", data[0])
	if err != nil {
		return nil, err
	}
	return NewSportsWalking(action, data[1], data[2], data[3]), nil
}

func buildSwimming(data []float64) (Training, error) {
	action, err := wholeNumber("action", data[0])
	if err != nil {
		return nil, err
	}
	count, err := wholeNumber("pool count", data[4])
	if err != nil {
		return nil, err
	}
	return NewSwimming(action, data[1], data[2], data[3], count), nil
}

func wholeNumber(field string, value float64) (int, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidWorkoutType, field, value)
	}
	if value >= math.MaxInt+1 || value < math.MinInt {
		return 0, fmt.Errorf("%w: %s is out of range, got %v", ErrInvalidWorkoutType, field, value)
	}
	return int(value), nil
}
