package fitness_test

import (
	"testing"

	"github.com/menegetegabriel-collab/fit30/internal/fitness"
)

func newTestCatalog(t *testing.T) *fitness.PlanCatalog {
	t.Helper()
	catalog, err := fitness.NewPlanCatalog()
	if err != nil {
		t.Fatalf("NewPlanCatalog: %v", err)
	}
	return catalog
}

func TestPlanCatalog_Plans(t *testing.T) {
	catalog := newTestCatalog(t)
	plans := catalog.Plans()

	if len(plans) != 5 {
		t.Fatalf("got %d plans, want 5", len(plans))
	}

	// Free plans come before premium plans.
	seenPremium := false
	for _, plan := range plans {
		if plan.IsPremium {
			seenPremium = true
		} else if seenPremium {
			t.Errorf("free plan %s listed after a premium plan", plan.ID)
		}
	}

	for _, plan := range plans {
		if plan.DurationDays != 30 {
			t.Errorf("plan %s: duration = %d, want 30", plan.ID, plan.DurationDays)
		}
		if len(plan.Days) != 30 {
			t.Errorf("plan %s: got %d days, want 30", plan.ID, len(plan.Days))
		}
	}
}

func TestPlanCatalog_Get(t *testing.T) {
	catalog := newTestCatalog(t)

	tests := []struct {
		id          string
		wantPremium bool
		wantLevel   fitness.FitnessLevel
	}{
		{id: "full_body", wantPremium: false, wantLevel: fitness.LevelBeginner},
		{id: "abs_blast", wantPremium: false, wantLevel: fitness.LevelBeginner},
		{id: "legs_glutes", wantPremium: true, wantLevel: fitness.LevelIntermediate},
		{id: "arms_chest", wantPremium: true, wantLevel: fitness.LevelIntermediate},
		{id: "cardio_burn", wantPremium: true, wantLevel: fitness.LevelAdvanced},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			plan, ok := catalog.Get(tt.id)
			if !ok {
				t.Fatalf("Get(%s) not found", tt.id)
			}
			if plan.IsPremium != tt.wantPremium {
				t.Errorf("IsPremium = %v, want %v", plan.IsPremium, tt.wantPremium)
			}
			if plan.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", plan.Level, tt.wantLevel)
			}
		})
	}

	if _, ok := catalog.Get("no_such_plan"); ok {
		t.Error("Get(no_such_plan) = ok, want not found")
	}
}

func TestPlanCatalog_DaySchedules(t *testing.T) {
	catalog := newTestCatalog(t)

	plan, ok := catalog.Get("full_body")
	if !ok {
		t.Fatal("full_body plan not found")
	}

	for _, day := range plan.Days {
		if day.RestDay {
			if day.Day%7 != 0 {
				t.Errorf("day %d is a rest day, want rest only on multiples of 7", day.Day)
			}
			continue
		}
		if len(day.Exercises) != 6 {
			t.Errorf("day %d: got %d exercises, want 6", day.Day, len(day.Exercises))
		}
		if day.TotalDurationSeconds <= 0 || day.TotalCalories <= 0 {
			t.Errorf("day %d: aggregates duration=%d calories=%d, want positive",
				day.Day, day.TotalDurationSeconds, day.TotalCalories)
		}
	}

	// Intensity grows through the plan: the final day burns more than the
	// first.
	if plan.Days[29].TotalCalories <= plan.Days[0].TotalCalories {
		t.Errorf("day 30 calories = %d, want more than day 1 calories = %d",
			plan.Days[29].TotalCalories, plan.Days[0].TotalCalories)
	}
}

func TestAchievementDefinitions(t *testing.T) {
	defs := fitness.AchievementDefinitions()
	if len(defs) != 5 {
		t.Fatalf("got %d achievement definitions, want 5", len(defs))
	}

	want := map[string]int{
		"first_workout":      1,
		"week_warrior":       7,
		"two_weeks":          14,
		"challenge_complete": 30,
		"calorie_burner":     1000,
	}
	for _, def := range defs {
		if req, ok := want[def.ID]; !ok || def.Requirement != req {
			t.Errorf("definition %s requirement = %d, want %d", def.ID, def.Requirement, req)
		}
	}
}

func TestQuoteOfTheDay(t *testing.T) {
	date := fitness.NewDate(2026, 3, 1)

	first := fitness.QuoteOfTheDay(date)
	second := fitness.QuoteOfTheDay(date)
	if first == "" {
		t.Error("QuoteOfTheDay returned empty quote")
	}
	if first != second {
		t.Errorf("quote changed within the same day: %q vs %q", first, second)
	}

	// Consecutive days rotate through the quote list.
	next := fitness.QuoteOfTheDay(date.AddDays(1))
	if next == first {
		t.Errorf("quote did not rotate to the next day: %q", next)
	}
}
