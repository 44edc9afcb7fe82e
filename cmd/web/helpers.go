package main

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/menegetegabriel-collab/fit30/internal/errors"
	"github.com/menegetegabriel-collab/fit30/internal/fitness"
)

const flashSessionKey = "flash"

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.render(w, r, http.StatusInternalServerError, "error", app.newBaseTemplateData(r))
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusNotFound, "not-found", app.newBaseTemplateData(r))
}

// redirect detects if the request is originating from a fetch API call or a top-level navigation and points the user
// to the correct URL.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if r.Header.Get("Sec-Fetch-Dest") == "empty" {
		w.Header().Set("Content-Location", path)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, path, http.StatusSeeOther)
}

// flash queues a one-time message shown on the next rendered page.
func (app *application) flash(r *http.Request, message string) {
	app.sessionManager.Put(r.Context(), flashSessionKey, message)
}

// parseDayParam parses the "day" path parameter from the request URL.
// Returns the parsed day and true if successful, or zero and false if parsing fails.
// On failure, sends HTTP 404 response automatically.
func (app *application) parseDayParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil || day < 1 {
		app.notFound(w, r)
		return 0, false
	}
	return day, true
}

// currentProfile loads the stored profile. The onboarding middleware
// guarantees it exists on the routes that call this.
func (app *application) currentProfile(r *http.Request) (fitness.UserProfile, error) {
	profile, err := app.fitnessService.Profile(r.Context())
	if err != nil {
		return fitness.UserProfile{}, errors.Wrap(err, "load profile")
	}
	return profile, nil
}

// currentProgress loads the progress record for the stored profile. The
// second return value is false when no plan has been started.
func (app *application) currentProgress(r *http.Request) (fitness.WorkoutProgress, bool, error) {
	profile, err := app.currentProfile(r)
	if err != nil {
		return fitness.WorkoutProgress{}, false, err
	}
	progress, err := app.fitnessService.Progress(r.Context(), profile.ID)
	if errors.Is(err, fitness.ErrNotFound) {
		return fitness.WorkoutProgress{}, false, nil
	}
	if err != nil {
		return fitness.WorkoutProgress{}, false, errors.Wrap(err, "load progress")
	}
	return progress, true, nil
}
