package main

import (
	"net/http"
	"time"

	"github.com/menegetegabriel-collab/fit30/internal/fitness"
)

type homeTemplateData struct {
	BaseTemplateData
	// Quote is the motivational quote for today.
	Quote string
	// HasPlan indicates whether the user has started a plan.
	HasPlan bool
	// Plan is the active plan, valid when HasPlan is true.
	Plan fitness.WorkoutPlan
	// Progress is the active progress record, valid when HasPlan is true.
	Progress fitness.WorkoutProgress
	// CompletionPercent is the share of plan days completed (0-100).
	CompletionPercent int
	// TodayWorkout is the scheduled workout for the current day, when the
	// cursor is still inside the plan.
	TodayWorkout *fitness.DayWorkout
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	data := homeTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Quote:            fitness.QuoteOfTheDay(fitness.DateOf(time.Now())),
	}

	if !data.Onboarded {
		app.render(w, r, http.StatusOK, "home", data)
		return
	}

	progress, hasPlan, err := app.currentProgress(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if hasPlan {
		plan, ok := app.planCatalog.Get(progress.PlanID)
		if !ok {
			// The stored plan no longer exists in the catalog. Show the home
			// page without plan details instead of failing.
			app.render(w, r, http.StatusOK, "home", data)
			return
		}

		data.HasPlan = true
		data.Plan = plan
		data.Progress = progress
		data.CompletionPercent = fitness.CompletionPercentage(progress, plan.DurationDays)
		if progress.CurrentDay >= 1 && progress.CurrentDay <= len(plan.Days) {
			data.TodayWorkout = &plan.Days[progress.CurrentDay-1]
		}
	}

	app.render(w, r, http.StatusOK, "home", data)
}
