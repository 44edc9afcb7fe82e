package main

import (
	"net/http"
	"regexp"

	"github.com/menegetegabriel-collab/fit30/internal/errors"
	"github.com/menegetegabriel-collab/fit30/internal/fitness"
)

// reminderTimePattern matches a HH:mm time of day.
var reminderTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type settingsTemplateData struct {
	BaseTemplateData
	Profile  fitness.UserProfile
	Reminder fitness.DailyReminder
	// FieldErrors maps form field names to validation messages.
	FieldErrors map[string]string
}

func (app *application) settingsGET(w http.ResponseWriter, r *http.Request) {
	profile, err := app.currentProfile(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	reminder, err := app.fitnessService.Reminder(r.Context())
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "load reminder"))
		return
	}

	data := settingsTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Profile:          profile,
		Reminder:         reminder,
		FieldErrors:      map[string]string{},
	}
	app.render(w, r, http.StatusOK, "settings", data)
}

func (app *application) settingsPOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, errors.Wrap(err, "parse form"))
		return
	}

	ctx := r.Context()
	fieldErrors := map[string]string{}

	theme := fitness.Theme(r.PostFormValue("theme"))
	if theme != fitness.ThemeLight && theme != fitness.ThemeDark {
		fieldErrors["theme"] = "Choose light or dark"
	}

	reminder := fitness.DailyReminder{
		Enabled: r.PostFormValue("reminder_enabled") == "true",
		Time:    r.PostFormValue("reminder_time"),
		Message: r.PostFormValue("reminder_message"),
	}
	if !reminderTimePattern.MatchString(reminder.Time) {
		fieldErrors["reminder_time"] = "Time must be in HH:mm format"
	}

	if len(fieldErrors) > 0 {
		profile, err := app.currentProfile(r)
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		data := settingsTemplateData{
			BaseTemplateData: app.newBaseTemplateData(r),
			Profile:          profile,
			Reminder:         reminder,
			FieldErrors:      fieldErrors,
		}
		app.render(w, r, http.StatusUnprocessableEntity, "settings", data)
		return
	}

	if err := app.fitnessService.SaveTheme(ctx, theme); err != nil {
		app.serverError(w, r, errors.Wrap(err, "save theme"))
		return
	}
	if err := app.fitnessService.SaveReminder(ctx, reminder); err != nil {
		app.serverError(w, r, errors.Wrap(err, "save reminder"))
		return
	}

	app.flash(r, "Settings saved.")
	redirect(w, r, "/settings")
}

func (app *application) settingsResetPOST(w http.ResponseWriter, r *http.Request) {
	profile, err := app.currentProfile(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err = app.fitnessService.ResetAll(r.Context(), profile.ID); err != nil {
		app.serverError(w, r, errors.Wrap(err, "reset all data"))
		return
	}

	redirect(w, r, "/onboarding")
}
