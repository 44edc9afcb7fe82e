// Package fitness contains the workout domain: the exercise and plan
// catalogs, the progressive plan builder, and the progress tracking service.
package fitness

import (
	"time"
)

// Gender of the local user, chosen during onboarding.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// FitnessLevel describes either a user's declared level or an exercise's
// difficulty.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// Goal is a training objective a plan can target.
type Goal string

const (
	GoalLoseWeight Goal = "lose_weight"
	GoalTone       Goal = "tone"
	GoalGainMuscle Goal = "gain_muscle"
)

// Theme is the persisted display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// UserProfile holds the identity and static attributes of the single local
// user. It is created once at onboarding and only changed through explicit
// profile edits.
type UserProfile struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Gender              Gender       `json:"gender"`
	Age                 int          `json:"age"`
	WeightKg            float64      `json:"weight"`
	HeightCm            float64      `json:"height"`
	Level               FitnessLevel `json:"level"`
	Goal                Goal         `json:"goal"`
	CreatedAt           time.Time    `json:"createdAt"`
	OnboardingCompleted bool         `json:"onboardingCompleted"`
}

// Exercise is an immutable catalog entry. Catalog entries are never mutated;
// the plan builder derives scaled copies instead.
type Exercise struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	// DurationSeconds is the nominal duration of one set.
	DurationSeconds int `json:"duration"`
	// Reps is the target repetition count, absent for hold-style exercises.
	Reps *int `json:"reps,omitempty"`
	// Sets is the set count; treat absent as 1 via SetCount.
	Sets *int `json:"sets,omitempty"`
	// RestSeconds is the rest between sets.
	RestSeconds int `json:"restTime"`
	// Calories is the estimated burn per set.
	Calories     int          `json:"calories"`
	MuscleGroup  string       `json:"muscleGroup"`
	Difficulty   FitnessLevel `json:"difficulty"`
	Instructions []string     `json:"instructions"`
}

// SetCount returns the number of sets, defaulting to 1 when unset.
func (e Exercise) SetCount() int {
	if e.Sets == nil {
		return 1
	}
	return *e.Sets
}

// DayWorkout is one scheduled day within a plan. A rest day has no exercises
// and zero aggregates.
type DayWorkout struct {
	Day       int        `json:"day"`
	Exercises []Exercise `json:"exercises"`
	// TotalDurationSeconds sums scaled exercise durations plus rest time.
	TotalDurationSeconds int `json:"totalDuration"`
	// TotalCalories sums scaled per-set calories across all sets.
	TotalCalories int  `json:"totalCalories"`
	RestDay       bool `json:"restDay"`
}

// WorkoutPlan is an immutable named 30-day program. Plans are static catalog
// data, never mutated at runtime.
type WorkoutPlan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// DurationDays is the total day count of the plan.
	DurationDays int          `json:"duration"`
	Level        FitnessLevel `json:"level"`
	Goals        []Goal       `json:"goal"`
	MuscleGroups []string     `json:"muscleGroups"`
	Days         []DayWorkout `json:"days"`
	IsPremium    bool         `json:"isPremium"`
	Color        string       `json:"color"`
	Icon         string       `json:"icon"`
}

// WorkoutProgress is the single mutable record describing the user's run
// through a chosen plan. It is created by Service.Initialize, mutated only by
// Service.CompleteDay, and destroyed only by a full data reset.
type WorkoutProgress struct {
	UserID string `json:"userId"`
	PlanID string `json:"planId"`
	// CurrentDay points at the next day to attempt. It tracks last completed
	// day + 1 and is not a validated sequential cursor.
	CurrentDay int `json:"currentDay"`
	// CompletedDays is kept deduplicated and sorted ascending.
	CompletedDays   []int     `json:"completedDays"`
	StartDate       time.Time `json:"startDate"`
	LastWorkoutDate *Date     `json:"lastWorkoutDate,omitempty"`
	// Streak counts consecutive calendar days with at least one completed
	// workout day.
	Streak              int           `json:"streak"`
	TotalCaloriesBurned int           `json:"totalCaloriesBurned"`
	TotalMinutesTrained int           `json:"totalMinutesTrained"`
	Achievements        []Achievement `json:"achievements"`
}

// HasCompleted reports whether the given day number is in the completed set.
func (p WorkoutProgress) HasCompleted(day int) bool {
	for _, d := range p.CompletedDays {
		if d == day {
			return true
		}
	}
	return false
}

// Achievement is an unlocked milestone record appended to WorkoutProgress.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

// AchievementDefinition is a static milestone definition with its numeric
// threshold. Definitions live in the catalog; only unlocked instances are
// persisted.
type AchievementDefinition struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Requirement int    `json:"requirement"`
}

// DailyReminder is a pure settings record with no behavioral coupling to the
// progress service.
type DailyReminder struct {
	Enabled bool `json:"enabled"`
	// Time is the reminder time of day in HH:mm format.
	Time    string `json:"time"`
	Message string `json:"message"`
}
