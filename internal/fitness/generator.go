package fitness

import "math"

const (
	// restDayInterval places a rest day at every 7th day of a plan.
	restDayInterval = 7
	// intensityCeiling is the extra scaling applied by the final day, i.e.
	// the multiplier grows from just above 1.0 to 1.5 over the plan.
	intensityCeiling = 0.5
)

// GenerateProgressiveDays expands a short list of base exercises into
// totalDays scheduled days with progressively increasing intensity.
//
// Every 7th day is a rest day with no exercises and zero aggregates. Other
// days carry scaled copies of every base exercise: duration, reps, and
// calories are multiplied by 1 + (day/totalDays)*0.5 and rounded half away
// from zero. Sets and rest time are copied unchanged. The output is fully
// deterministic for a given input.
//
// startLevel is accepted for symmetry with plan metadata but does not affect
// scaling; intensity is driven by the day number alone.
func GenerateProgressiveDays(baseExercises []Exercise, totalDays int, startLevel FitnessLevel) []DayWorkout {
	days := make([]DayWorkout, 0, totalDays)

	for day := 1; day <= totalDays; day++ {
		if day%restDayInterval == 0 {
			days = append(days, DayWorkout{
				Day:                  day,
				Exercises:            []Exercise{},
				TotalDurationSeconds: 0,
				TotalCalories:        0,
				RestDay:              true,
			})
			continue
		}

		multiplier := 1 + (float64(day)/float64(totalDays))*intensityCeiling

		exercises := make([]Exercise, 0, len(baseExercises))
		totalDuration := 0
		totalCalories := 0
		for _, base := range baseExercises {
			scaled := scaleExercise(base, multiplier)
			exercises = append(exercises, scaled)
			totalDuration += scaled.DurationSeconds + scaled.RestSeconds*scaled.SetCount()
			totalCalories += scaled.Calories * scaled.SetCount()
		}

		days = append(days, DayWorkout{
			Day:                  day,
			Exercises:            exercises,
			TotalDurationSeconds: totalDuration,
			TotalCalories:        totalCalories,
			RestDay:              false,
		})
	}

	return days
}

// scaleExercise derives a copy of ex with duration, reps, and calories scaled
// by multiplier. The catalog entry itself is never mutated.
func scaleExercise(ex Exercise, multiplier float64) Exercise {
	scaled := ex
	scaled.DurationSeconds = roundScaled(ex.DurationSeconds, multiplier)
	scaled.Calories = roundScaled(ex.Calories, multiplier)
	if ex.Reps != nil {
		reps := roundScaled(*ex.Reps, multiplier)
		scaled.Reps = &reps
	}
	return scaled
}

// roundScaled rounds half away from zero, matching how the persisted plans
// have always been computed.
func roundScaled(value int, multiplier float64) int {
	return int(math.Round(float64(value) * multiplier))
}
