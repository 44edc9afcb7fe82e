package fitness

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// planDefinition describes a plan before its day schedule is built.
type planDefinition struct {
	id           string
	name         string
	description  string
	durationDays int
	level        FitnessLevel
	goals        []Goal
	muscleGroups []string
	isPremium    bool
	color        string
	icon         string
	exerciseIDs  []string
}

var planDefinitions = []planDefinition{
	{
		id:           "full_body",
		name:         "Full Body",
		description:  "A complete whole-body workout in 30 days",
		durationDays: 30,
		level:        LevelBeginner,
		goals:        []Goal{GoalLoseWeight, GoalTone},
		muscleGroups: []string{"Full Body", "Cardio"},
		isPremium:    false,
		color:        "from-blue-500 to-cyan-500",
		icon:         "💪",
		exerciseIDs: []string{
			"jumping_jacks", "squats", "push_ups", "plank", "lunges", "mountain_climbers",
		},
	},
	{
		id:           "abs_blast",
		name:         "Abs Blast",
		description:  "Total focus on abs and core",
		durationDays: 30,
		level:        LevelBeginner,
		goals:        []Goal{GoalTone, GoalLoseWeight},
		muscleGroups: []string{"Abs", "Core"},
		isPremium:    false,
		color:        "from-orange-500 to-red-500",
		icon:         "🔥",
		exerciseIDs: []string{
			"crunches", "plank", "bicycle_crunches", "mountain_climbers", "jumping_jacks",
		},
	},
	{
		id:           "legs_glutes",
		name:         "Legs & Glutes",
		description:  "Strengthen and sculpt legs and glutes",
		durationDays: 30,
		level:        LevelIntermediate,
		goals:        []Goal{GoalTone, GoalGainMuscle},
		muscleGroups: []string{"Legs", "Glutes"},
		isPremium:    true,
		color:        "from-purple-500 to-pink-500",
		icon:         "🍑",
		exerciseIDs: []string{
			"squats", "lunges", "glute_bridge", "jumping_jacks", "high_knees",
		},
	},
	{
		id:           "arms_chest",
		name:         "Arms & Chest",
		description:  "Build upper-body strength",
		durationDays: 30,
		level:        LevelIntermediate,
		goals:        []Goal{GoalGainMuscle, GoalTone},
		muscleGroups: []string{"Arms", "Chest", "Shoulders"},
		isPremium:    true,
		color:        "from-green-500 to-teal-500",
		icon:         "💪",
		exerciseIDs: []string{
			"push_ups", "tricep_dips", "arm_circles", "plank", "mountain_climbers",
		},
	},
	{
		id:           "cardio_burn",
		name:         "Cardio Burn",
		description:  "Burn calories with high-intensity workouts",
		durationDays: 30,
		level:        LevelAdvanced,
		goals:        []Goal{GoalLoseWeight},
		muscleGroups: []string{"Cardio", "Full Body"},
		isPremium:    true,
		color:        "from-red-500 to-orange-500",
		icon:         "⚡",
		exerciseIDs: []string{
			"burpees", "high_knees", "mountain_climbers", "jumping_jacks", "butt_kicks",
		},
	},
}

// PlanCatalog holds the fully built workout plans. It is immutable after
// construction and safe for concurrent reads.
type PlanCatalog struct {
	plans  []WorkoutPlan
	byID   map[string]*WorkoutPlan
	sorted []WorkoutPlan
}

// NewPlanCatalog builds every plan's full day schedule from the plan
// definitions. Plans build in parallel since each 30-day expansion is
// independent; a definition referencing an unknown exercise ID fails the
// whole catalog.
func NewPlanCatalog() (*PlanCatalog, error) {
	plans := make([]WorkoutPlan, len(planDefinitions))

	var group errgroup.Group
	for i, def := range planDefinitions {
		group.Go(func() error {
			plan, err := buildPlan(def)
			if err != nil {
				return fmt.Errorf("build plan %s: %w", def.id, err)
			}
			plans[i] = plan
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]*WorkoutPlan, len(plans))
	for i := range plans {
		byID[plans[i].ID] = &plans[i]
	}

	// Free plans first on the catalog page, then alphabetical by name.
	sorted := make([]WorkoutPlan, len(plans))
	copy(sorted, plans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsPremium != sorted[j].IsPremium {
			return !sorted[i].IsPremium
		}
		return sorted[i].Name < sorted[j].Name
	})

	return &PlanCatalog{plans: plans, byID: byID, sorted: sorted}, nil
}

func buildPlan(def planDefinition) (WorkoutPlan, error) {
	exercises := make([]Exercise, 0, len(def.exerciseIDs))
	for _, id := range def.exerciseIDs {
		ex, ok := baseExercises[id]
		if !ok {
			return WorkoutPlan{}, fmt.Errorf("unknown exercise %q", id)
		}
		exercises = append(exercises, ex)
	}

	return WorkoutPlan{
		ID:           def.id,
		Name:         def.name,
		Description:  def.description,
		DurationDays: def.durationDays,
		Level:        def.level,
		Goals:        def.goals,
		MuscleGroups: def.muscleGroups,
		Days:         GenerateProgressiveDays(exercises, def.durationDays, def.level),
		IsPremium:    def.isPremium,
		Color:        def.color,
		Icon:         def.icon,
	}, nil
}

// Plans returns every plan, free plans first and then alphabetical.
func (c *PlanCatalog) Plans() []WorkoutPlan {
	return c.sorted
}

// Get returns the plan with the given ID, or false when no such plan exists.
func (c *PlanCatalog) Get(id string) (WorkoutPlan, bool) {
	plan, ok := c.byID[id]
	if !ok {
		return WorkoutPlan{}, false
	}
	return *plan, true
}
