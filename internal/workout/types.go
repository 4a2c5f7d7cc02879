package workout

// Training describes the behaviour required from a workout variant.
// Only the variants declared in this package satisfy it. The shared base
// computation has no calorie formula; each variant supplies its own.
type Training interface {
	// Name returns the workout type shown in the summary line.
	Name() string
	// Distance returns the covered distance in kilometres.
	Distance() float64
	// MeanSpeed returns the average speed over the whole workout in km/h.
	MeanSpeed() float64
	// SpentCalories returns the calories burned during the workout.
	SpentCalories() float64
	// DurationHours returns the workout duration in hours.
	DurationHours() float64
	// DurationMinutes returns the workout duration in minutes.
	DurationMinutes() float64

	validate() error
}

// InfoMessage is the computed summary of a single workout.
type InfoMessage struct {
	WorkoutType string
	Duration    float64
	Distance    float64
	Speed       float64
	Calories    float64
}
