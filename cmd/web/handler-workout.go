package main

import (
	"net/http"
	"strconv"

	"github.com/menegetegabriel-collab/fit30/internal/errors"
	"github.com/menegetegabriel-collab/fit30/internal/fitness"
)

type workoutTemplateData struct {
	BaseTemplateData
	Plan    fitness.WorkoutPlan
	Workout fitness.DayWorkout
	// Completed indicates this day is already in the completed set.
	Completed bool
	// IsCurrent indicates this is the day the cursor points at.
	IsCurrent bool
}

func (app *application) workoutGET(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}

	progress, hasPlan, err := app.currentProgress(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if !hasPlan {
		app.flash(r, "Pick a plan before starting a workout.")
		redirect(w, r, "/plans")
		return
	}

	plan, ok := app.planCatalog.Get(progress.PlanID)
	if !ok || day > len(plan.Days) {
		app.notFound(w, r)
		return
	}

	data := workoutTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Plan:             plan,
		Workout:          plan.Days[day-1],
		Completed:        progress.HasCompleted(day),
		IsCurrent:        progress.CurrentDay == day,
	}
	app.render(w, r, http.StatusOK, "workout", data)
}

func (app *application) workoutCompletePOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}

	progress, hasPlan, err := app.currentProgress(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if !hasPlan {
		app.flash(r, "Pick a plan before starting a workout.")
		redirect(w, r, "/plans")
		return
	}

	plan, ok := app.planCatalog.Get(progress.PlanID)
	if !ok || day > len(plan.Days) {
		app.notFound(w, r)
		return
	}

	workout := plan.Days[day-1]
	calories := workout.TotalCalories
	minutes := minutesFromSeconds(workout.TotalDurationSeconds)

	// The client may report actual numbers, otherwise the scheduled
	// estimates count.
	if err = r.ParseForm(); err != nil {
		app.serverError(w, r, errors.Wrap(err, "parse form"))
		return
	}
	if v := r.PostFormValue("calories"); v != "" {
		if parsed, parseErr := strconv.Atoi(v); parseErr == nil && parsed >= 0 {
			calories = parsed
		}
	}
	if v := r.PostFormValue("minutes"); v != "" {
		if parsed, parseErr := strconv.Atoi(v); parseErr == nil && parsed >= 0 {
			minutes = parsed
		}
	}

	profile, err := app.currentProfile(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err = app.fitnessService.CompleteDay(r.Context(), profile.ID, day, calories, minutes); err != nil {
		app.serverError(w, r, errors.Wrap(err, "complete day"))
		return
	}

	app.flash(r, "Workout complete. Great job!")
	redirect(w, r, "/progress")
}

func minutesFromSeconds(seconds int) int {
	return (seconds + 59) / 60
}
