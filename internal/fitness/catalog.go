package fitness

import (
	"github.com/menegetegabriel-collab/fit30/internal/ptr"
)

// baseExercises is the full exercise catalog keyed by exercise ID. Entries
// are read-only; the plan builder scales copies of them.
var baseExercises = map[string]Exercise{
	"jumping_jacks": {
		ID:              "jumping_jacks",
		Name:            "Jumping Jacks",
		Description:     "Full-body cardiovascular exercise",
		DurationSeconds: 30,
		Reps:            ptr.Ref(30),
		Sets:            ptr.Ref(3),
		RestSeconds:     15,
		Calories:        8,
		MuscleGroup:     "Full Body",
		Difficulty:      LevelBeginner,
		Instructions: []string{
			"Stand with your feet together",
			"Jump while spreading your legs and raising your arms",
			"Return to the starting position",
			"Keep a steady rhythm",
		},
	},
	"burpees": {
		ID:              "burpees",
		Name:            "Burpees",
		Description:     "High-intensity exercise",
		DurationSeconds: 45,
		Reps:            ptr.Ref(15),
		Sets:            ptr.Ref(3),
		RestSeconds:     30,
		Calories:        15,
		MuscleGroup:     "Full Body",
		Difficulty:      LevelIntermediate,
		Instructions: []string{
			"Start standing",
			"Squat down and place your hands on the floor",
			"Kick your legs back",
			"Do a push-up",
			"Return to the squat position",
			"Jump up with arms extended",
		},
	},
	"mountain_climbers": {
		ID:              "mountain_climbers",
		Name:            "Mountain Climbers",
		Description:     "Builds core strength and cardio",
		DurationSeconds: 30,
		Reps:            ptr.Ref(40),
		Sets:            ptr.Ref(3),
		RestSeconds:     20,
		Calories:        10,
		MuscleGroup:     "Full Body",
		Difficulty:      LevelIntermediate,
		Instructions: []string{
			"Start in a high plank position",
			"Drive one knee toward your chest",
			"Alternate legs quickly",
			"Keep your core engaged",
		},
	},
	"crunches": {
		ID:              "crunches",
		Name:            "Crunches",
		Description:     "Strengthens the upper abs",
		DurationSeconds: 30,
		Reps:            ptr.Ref(20),
		Sets:            ptr.Ref(3),
		RestSeconds:     15,
		Calories:        5,
		MuscleGroup:     "Abs",
		Difficulty:      LevelBeginner,
		Instructions: []string{
			"Lie on your back with knees bent",
			"Place your hands behind your head",
			"Lift your torso toward your knees",
			"Lower back down with control",
		},
	},
	"plank": {
		ID:              "plank",
		Name:            "Plank",
		Description:     "Strengthens the entire core",
		DurationSeconds: 60,
		Sets:            ptr.Ref(3),
		RestSeconds:     30,
		Calories:        8,
		MuscleGroup:     "Abs",
		Difficulty:      LevelBeginner,
		Instructions: []string{
			"Rest on your forearms and toes",
			"Keep your body in a straight line",
			"Engage your abs and glutes",
			"Hold the position",
		},
	},
	"bicycle_crunches": {
		ID:              "bicycle_crunches",
		Name:            "Bicycle Crunches",
		Description:     "Works the obliques",
		DurationSeconds: 45,
		Reps:            ptr.Ref(30),
		Sets:            ptr.Ref(3),
		RestSeconds:     20,
		Calories:        7,
		MuscleGroup:     "Abs",
		Difficulty:      LevelIntermediate,
		Instructions: []string{
			"Lie on your back with hands behind your head",
			"Lift your legs",
			"Bring your right elbow to your left knee",
			"Alternate sides in a pedaling motion",
		},
	},
	"squats": {
		ID:              "squats",
		Name:            "Squats",
		Description:     "Strengthens legs and glutes",
		DurationSeconds: 45,
		Reps:            ptr.Ref(20),
		Sets:            ptr.Ref(3),
		RestSeconds:     20,
		Calories:        10,
		MuscleGroup:     "Legs",
		Difficulty:      LevelBeginner,
		Instructions: []string{
			"Feet shoulder-width apart",
			"Lower yourself as if sitting down",
			"Keep knees behind your toes",
			"Rise while squeezing your glutes",
		},
	},
	"lunges": {
		ID:              "lunges",
		Name:            "Lunges",
		Description:     "Works legs and balance",
		DurationSeconds: 45,
		Reps:            ptr.Ref(15),
		Sets:            ptr.Ref(3),
		RestSeconds:     20,
		Calories:        9,
		MuscleGroup:     "Legs",
		Difficulty:      LevelBeginner,
		Instructions: []string{
			"Step forward with one leg",
			"Lower until the back knee almost touches the floor",
			"Keep the front knee at 90 degrees",
			"Push back up and alternate legs",
		},
	},
	"glute_bridge": {
		ID:              "glute_bridge",
		Name:            "Glute Bridge",
		Description:     "Strengthens the glutes",
		DurationSeconds: 45,
		Reps:            ptr.Ref(20),
		Sets:            ptr.Ref(3),
		RestSeconds:     15,
		Calories:        7,
		MuscleGroup:     "Glutes",
		Difficulty:      LevelBeginner,
		Instructions: []string{
			"Lie on your back with knees bent",
			"Keep your feet flat on the floor",
			"Lift your hips while squeezing your glutes",
			"Lower back down with control",
		},
	},
	"push_ups": {
		ID:              "push_ups",
		Name:            "Push-Ups",
		Description:     "Strengthens chest and arms",
		DurationSeconds: 45,
		Reps:            ptr.Ref(15),
		Sets:            ptr.Ref(3),
		RestSeconds:     30,
		Calories:        10,
		MuscleGroup:     "Chest",
		Difficulty:      LevelIntermediate,
		Instructions: []string{
			"Start in a high plank position",
			"Hands shoulder-width apart",
			"Lower your body until it almost touches the floor",
			"Push back up",
		},
	},
	"tricep_dips": {
		ID:              "tricep_dips",
		Name:            "Tricep Dips",
		Description:     "Strengthens the triceps",
		DurationSeconds: 45,
		Reps:            ptr.Ref(15),
		Sets:            ptr.Ref(3),
		RestSeconds:     20,
		Calories:        8,
		MuscleGroup:     "Arms",
		Difficulty:      LevelIntermediate,
		Instructions: []string{
			"Use a chair or bench",
			"Place your hands behind you",
			"Lower your body by bending your elbows",
			"Push back up",
		},
	},
	"arm_circles": {
		ID:              "arm_circles",
		Name:            "Arm Circles",
		Description:     "Warms up and strengthens shoulders",
		DurationSeconds: 30,
		Sets:            ptr.Ref(3),
		RestSeconds:     10,
		Calories:        5,
		MuscleGroup:     "Arms",
		Difficulty:      LevelBeginner,
		Instructions: []string{
			"Extend your arms out to the sides",
			"Make small circles",
			"Then make larger circles",
			"Reverse the direction",
		},
	},
	"high_knees": {
		ID:              "high_knees",
		Name:            "High Knees",
		Description:     "Intense cardio",
		DurationSeconds: 30,
		Reps:            ptr.Ref(40),
		Sets:            ptr.Ref(3),
		RestSeconds:     15,
		Calories:        10,
		MuscleGroup:     "Cardio",
		Difficulty:      LevelIntermediate,
		Instructions: []string{
			"Run in place",
			"Lift your knees to hip height",
			"Keep a fast pace",
			"Swing your arms",
		},
	},
	"butt_kicks": {
		ID:              "butt_kicks",
		Name:            "Butt Kicks",
		Description:     "Warms up the legs",
		DurationSeconds: 30,
		Reps:            ptr.Ref(40),
		Sets:            ptr.Ref(3),
		RestSeconds:     15,
		Calories:        8,
		MuscleGroup:     "Cardio",
		Difficulty:      LevelBeginner,
		Instructions: []string{
			"Run in place",
			"Bring your heels up to your glutes",
			"Keep the rhythm",
			"Core engaged",
		},
	},
}

// motivationalQuotes rotates on the home screen, one per calendar day.
var motivationalQuotes = []string{
	"You are stronger than you think!",
	"Every day is a new opportunity!",
	"The only bad workout is the one that didn't happen!",
	"Your body can do it, it's your mind you need to convince!",
	"The pain you feel today will be the strength you feel tomorrow!",
	"Don't give up! You're closer than you think!",
	"Transformation takes time. Be patient with yourself!",
	"You don't need to be perfect, just get started!",
	"Believe in yourself! You've got this!",
	"Every rep brings you closer to your goal!",
}

// QuoteOfTheDay picks the motivational quote for the given date. The pick only
// depends on the calendar day, so the quote stays stable across page loads.
func QuoteOfTheDay(date Date) string {
	index := date.Time().YearDay() % len(motivationalQuotes)
	return motivationalQuotes[index]
}
