package main

import (
	"net/http"
)

func (app *application) routes() (*http.ServeMux, error) {
	mux := http.NewServeMux()

	var (
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.logAndTraceRequest(secureHeaders(app.commonContext(next))))))
		}
		mustOnboard = func(next http.Handler) http.Handler {
			return session(app.mustOnboard(next))
		}
	)

	mux.Handle("GET /onboarding", session(http.HandlerFunc(app.onboardingGET)))
	mux.Handle("POST /onboarding", session(http.HandlerFunc(app.onboardingPOST)))

	mux.Handle("GET /plans", mustOnboard(http.HandlerFunc(app.plansGET)))
	mux.Handle("GET /plans/{planID}", mustOnboard(http.HandlerFunc(app.planGET)))
	mux.Handle("POST /plans/{planID}/start", mustOnboard(http.HandlerFunc(app.planStartPOST)))

	mux.Handle("GET /workout/{day}", mustOnboard(http.HandlerFunc(app.workoutGET)))
	mux.Handle("POST /workout/{day}/complete", mustOnboard(http.HandlerFunc(app.workoutCompletePOST)))

	mux.Handle("GET /progress", mustOnboard(http.HandlerFunc(app.progressGET)))

	mux.Handle("GET /settings", mustOnboard(http.HandlerFunc(app.settingsGET)))
	mux.Handle("POST /settings", mustOnboard(http.HandlerFunc(app.settingsPOST)))
	mux.Handle("POST /settings/reset", mustOnboard(http.HandlerFunc(app.settingsResetPOST)))

	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))

	// Home route (most specific)
	mux.Handle("GET /{$}", session(http.HandlerFunc(app.home)))

	mux.Handle("/", session(http.HandlerFunc(app.notFound)))

	return mux, nil
}
