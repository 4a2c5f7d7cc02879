package workout

import "fmt"

const messageFormat = "Workout type: %s; Duration: %.3f h; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f."

// String renders the summary line.
func (m InfoMessage) String() string {
	return fmt.Sprintf(messageFormat, m.WorkoutType, m.Duration, m.Distance, m.Speed, m.Calories)
}
