package fitness

import "time"

// achievementDefinitions lists every unlockable milestone. The requirement is
// interpreted per achievement: completed day count, streak length, or total
// calories burned.
var achievementDefinitions = []AchievementDefinition{
	{
		ID:          "first_workout",
		Title:       "First Step",
		Description: "Complete your first workout",
		Icon:        "🎯",
		Requirement: 1,
	},
	{
		ID:          "week_warrior",
		Title:       "Week Warrior",
		Description: "Complete 7 consecutive days",
		Icon:        "🔥",
		Requirement: 7,
	},
	{
		ID:          "two_weeks",
		Title:       "Two Weeks Strong",
		Description: "Complete 14 consecutive days",
		Icon:        "💎",
		Requirement: 14,
	},
	{
		ID:          "challenge_complete",
		Title:       "Challenge Complete",
		Description: "Complete all 30 days",
		Icon:        "🏆",
		Requirement: 30,
	},
	{
		ID:          "calorie_burner",
		Title:       "Calorie Burner",
		Description: "Burn 1000 calories in total",
		Icon:        "🔥",
		Requirement: 1000,
	},
}

// AchievementDefinitions returns the static milestone catalog in display
// order.
func AchievementDefinitions() []AchievementDefinition {
	return achievementDefinitions
}

// newAchievements returns the milestones progress has earned but not yet
// unlocked, stamped with now. Already unlocked achievements are never
// duplicated or re-stamped.
func newAchievements(progress WorkoutProgress, now time.Time) []Achievement {
	unlocked := make(map[string]bool, len(progress.Achievements))
	for _, a := range progress.Achievements {
		unlocked[a.ID] = true
	}

	var earned []Achievement
	for _, def := range achievementDefinitions {
		if unlocked[def.ID] || !achieved(def, progress) {
			continue
		}
		earned = append(earned, Achievement{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Icon:        def.Icon,
			UnlockedAt:  now,
		})
	}
	return earned
}

func achieved(def AchievementDefinition, progress WorkoutProgress) bool {
	switch def.ID {
	case "first_workout", "challenge_complete":
		return len(progress.CompletedDays) >= def.Requirement
	case "week_warrior", "two_weeks":
		return progress.Streak >= def.Requirement
	case "calorie_burner":
		return progress.TotalCaloriesBurned >= def.Requirement
	default:
		return false
	}
}
