package main

import (
	"net/http"

	"github.com/menegetegabriel-collab/fit30/internal/errors"
	"github.com/menegetegabriel-collab/fit30/internal/fitness"
)

// premiumConfirmedSessionKey marks that the user has acknowledged the premium
// upsell in this session. There is no payment flow; confirming once unlocks
// premium plans for the session.
const premiumConfirmedSessionKey = "premium_confirmed"

type plansTemplateData struct {
	BaseTemplateData
	Plans []fitness.WorkoutPlan
	// ActivePlanID is the ID of the plan the user is currently on, empty when
	// no plan has been started.
	ActivePlanID string
}

func (app *application) plansGET(w http.ResponseWriter, r *http.Request) {
	data := plansTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Plans:            app.planCatalog.Plans(),
	}

	progress, hasPlan, err := app.currentProgress(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if hasPlan {
		data.ActivePlanID = progress.PlanID
	}

	app.render(w, r, http.StatusOK, "plans", data)
}

type planTemplateData struct {
	BaseTemplateData
	Plan fitness.WorkoutPlan
	// IsActive indicates the user is currently on this plan.
	IsActive bool
	// NeedsPremiumConfirmation indicates the premium acknowledgement form
	// should be shown before the plan can be started.
	NeedsPremiumConfirmation bool
}

func (app *application) planGET(w http.ResponseWriter, r *http.Request) {
	plan, ok := app.planCatalog.Get(r.PathValue("planID"))
	if !ok {
		app.notFound(w, r)
		return
	}

	progress, hasPlan, err := app.currentProgress(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	data := planTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Plan:             plan,
		IsActive:         hasPlan && progress.PlanID == plan.ID,
		NeedsPremiumConfirmation: plan.IsPremium &&
			!app.sessionManager.GetBool(r.Context(), premiumConfirmedSessionKey),
	}
	app.render(w, r, http.StatusOK, "plan", data)
}

func (app *application) planStartPOST(w http.ResponseWriter, r *http.Request) {
	plan, ok := app.planCatalog.Get(r.PathValue("planID"))
	if !ok {
		app.notFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, errors.Wrap(err, "parse form"))
		return
	}

	if plan.IsPremium && !app.sessionManager.GetBool(r.Context(), premiumConfirmedSessionKey) {
		if r.PostFormValue("confirm_premium") != "true" {
			app.flash(r, "This is a premium plan. Confirm to unlock it.")
			redirect(w, r, "/plans/"+plan.ID)
			return
		}
		app.sessionManager.Put(r.Context(), premiumConfirmedSessionKey, true)
	}

	profile, err := app.currentProfile(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	// Starting a plan always begins from day one, also when switching plans.
	if _, err = app.fitnessService.Initialize(r.Context(), profile.ID, plan.ID); err != nil {
		app.serverError(w, r, errors.Wrap(err, "initialize progress"))
		return
	}

	app.flash(r, "Plan started. Day 1 is waiting for you!")
	redirect(w, r, "/workout/1")
}
