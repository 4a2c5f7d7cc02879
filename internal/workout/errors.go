package workout

import "errors"

var (
	// ErrInvalidWorkoutType is returned when a package cannot be turned into a workout:
	// the code is unknown, or the field list does not match the variant.
	ErrInvalidWorkoutType = errors.New("invalid workout type")
	// ErrInsufficientData is returned when a workout lacks the data needed to compute its summary.
	ErrInsufficientData = errors.New("insufficient data")
)
