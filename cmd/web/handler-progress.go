package main

import (
	"net/http"

	"github.com/menegetegabriel-collab/fit30/internal/fitness"
)

type progressTemplateData struct {
	BaseTemplateData
	HasPlan bool
	Plan    fitness.WorkoutPlan
	// Progress is the active progress record, valid when HasPlan is true.
	Progress fitness.WorkoutProgress
	// CompletionPercent is the share of plan days completed (0-100).
	CompletionPercent int
	// Definitions is the full achievement catalog for showing locked and
	// unlocked milestones side by side.
	Definitions []fitness.AchievementDefinition
	// UnlockedIDs contains the IDs of unlocked achievements.
	UnlockedIDs map[string]bool
}

func (app *application) progressGET(w http.ResponseWriter, r *http.Request) {
	data := progressTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Definitions:      fitness.AchievementDefinitions(),
		UnlockedIDs:      map[string]bool{},
	}

	progress, hasPlan, err := app.currentProgress(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if hasPlan {
		plan, ok := app.planCatalog.Get(progress.PlanID)
		if ok {
			data.HasPlan = true
			data.Plan = plan
			data.Progress = progress
			data.CompletionPercent = fitness.CompletionPercentage(progress, plan.DurationDays)
			for _, achievement := range progress.Achievements {
				data.UnlockedIDs[achievement.ID] = true
			}
		}
	}

	app.render(w, r, http.StatusOK, "progress", data)
}
