package fitness

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/menegetegabriel-collab/fit30/internal/ptr"
)

func testBaseExercise() Exercise {
	return Exercise{
		ID:              "test_exercise",
		Name:            "Test Exercise",
		DurationSeconds: 30,
		Reps:            ptr.Ref(30),
		Sets:            ptr.Ref(3),
		RestSeconds:     15,
		Calories:        8,
		MuscleGroup:     "Full Body",
		Difficulty:      LevelBeginner,
	}
}

func TestGenerateProgressiveDays_RestDays(t *testing.T) {
	days := GenerateProgressiveDays([]Exercise{testBaseExercise()}, 30, LevelBeginner)

	if len(days) != 30 {
		t.Fatalf("generated %d days, want 30", len(days))
	}

	for _, day := range days {
		wantRest := day.Day%7 == 0
		if day.RestDay != wantRest {
			t.Errorf("day %d: RestDay = %v, want %v", day.Day, day.RestDay, wantRest)
		}
		if wantRest {
			if len(day.Exercises) != 0 || day.TotalDurationSeconds != 0 || day.TotalCalories != 0 {
				t.Errorf("day %d: rest day has exercises=%d duration=%d calories=%d, want all zero",
					day.Day, len(day.Exercises), day.TotalDurationSeconds, day.TotalCalories)
			}
		} else if len(day.Exercises) != 1 {
			t.Errorf("day %d: got %d exercises, want 1", day.Day, len(day.Exercises))
		}
	}
}

func TestGenerateProgressiveDays_Scaling(t *testing.T) {
	days := GenerateProgressiveDays([]Exercise{testBaseExercise()}, 30, LevelBeginner)

	tests := []struct {
		day          int
		wantDuration int
		wantReps     int
		wantCalories int
	}{
		// Day 1: multiplier 1 + (1/30)*0.5 ≈ 1.0167. 30*1.0167 = 30.5 rounds
		// away from zero to 31.
		{day: 1, wantDuration: 31, wantReps: 31, wantCalories: 8},
		// Day 15: multiplier 1.25.
		{day: 15, wantDuration: 38, wantReps: 38, wantCalories: 10},
		// Day 30: multiplier 1.5.
		{day: 30, wantDuration: 45, wantReps: 45, wantCalories: 12},
	}

	for _, tt := range tests {
		got := days[tt.day-1].Exercises[0]
		if got.DurationSeconds != tt.wantDuration {
			t.Errorf("day %d: duration = %d, want %d", tt.day, got.DurationSeconds, tt.wantDuration)
		}
		if got.Reps == nil || *got.Reps != tt.wantReps {
			t.Errorf("day %d: reps = %v, want %d", tt.day, got.Reps, tt.wantReps)
		}
		if got.Calories != tt.wantCalories {
			t.Errorf("day %d: calories = %d, want %d", tt.day, got.Calories, tt.wantCalories)
		}
		// Rest time and sets are never scaled.
		if got.RestSeconds != 15 {
			t.Errorf("day %d: rest = %d, want 15", tt.day, got.RestSeconds)
		}
		if got.SetCount() != 3 {
			t.Errorf("day %d: sets = %d, want 3", tt.day, got.SetCount())
		}
	}
}

func TestGenerateProgressiveDays_Aggregates(t *testing.T) {
	days := GenerateProgressiveDays([]Exercise{testBaseExercise()}, 30, LevelBeginner)

	// Day 30: duration 45 + rest 15*3 sets = 90; calories 12*3 sets = 36.
	day := days[29]
	if day.TotalDurationSeconds != 90 {
		t.Errorf("day 30 total duration = %d, want 90", day.TotalDurationSeconds)
	}
	if day.TotalCalories != 36 {
		t.Errorf("day 30 total calories = %d, want 36", day.TotalCalories)
	}
}

func TestGenerateProgressiveDays_HoldExerciseKeepsNilReps(t *testing.T) {
	hold := testBaseExercise()
	hold.Reps = nil

	days := GenerateProgressiveDays([]Exercise{hold}, 30, LevelBeginner)

	if got := days[0].Exercises[0].Reps; got != nil {
		t.Errorf("hold exercise reps = %v, want nil", got)
	}
}

func TestGenerateProgressiveDays_DoesNotMutateBase(t *testing.T) {
	base := testBaseExercise()
	want := testBaseExercise()

	GenerateProgressiveDays([]Exercise{base}, 30, LevelBeginner)

	if diff := cmp.Diff(want, base); diff != "" {
		t.Errorf("base exercise mutated (-want +got):\n%s", diff)
	}
}

func TestGenerateProgressiveDays_Deterministic(t *testing.T) {
	base := []Exercise{testBaseExercise()}

	first := GenerateProgressiveDays(base, 30, LevelBeginner)
	second := GenerateProgressiveDays(base, 30, LevelBeginner)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated generation differs (-first +second):\n%s", diff)
	}
}
