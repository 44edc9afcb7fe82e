package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/menegetegabriel-collab/fit30/internal/contexthelpers"
	"github.com/menegetegabriel-collab/fit30/internal/errors"
	"github.com/menegetegabriel-collab/fit30/internal/fitness"
)

type onboardingTemplateData struct {
	BaseTemplateData
	// FieldErrors maps form field names to validation messages.
	FieldErrors map[string]string
	// Form echoes the submitted values back into the form.
	Form onboardingForm
}

type onboardingForm struct {
	Name   string
	Gender string
	Age    string
	Weight string
	Height string
	Level  string
	Goal   string
}

func (app *application) onboardingGET(w http.ResponseWriter, r *http.Request) {
	if contexthelpers.IsOnboarded(r.Context()) {
		redirect(w, r, "/")
		return
	}

	data := onboardingTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		FieldErrors:      map[string]string{},
	}
	app.render(w, r, http.StatusOK, "onboarding", data)
}

func (app *application) onboardingPOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, errors.Wrap(err, "parse form"))
		return
	}

	form := onboardingForm{
		Name:   r.PostFormValue("name"),
		Gender: r.PostFormValue("gender"),
		Age:    r.PostFormValue("age"),
		Weight: r.PostFormValue("weight"),
		Height: r.PostFormValue("height"),
		Level:  r.PostFormValue("level"),
		Goal:   r.PostFormValue("goal"),
	}

	profile, fieldErrors := parseOnboardingForm(form)
	if len(fieldErrors) > 0 {
		data := onboardingTemplateData{
			BaseTemplateData: app.newBaseTemplateData(r),
			FieldErrors:      fieldErrors,
			Form:             form,
		}
		app.render(w, r, http.StatusUnprocessableEntity, "onboarding", data)
		return
	}

	profile.ID = uuid.NewString()
	profile.CreatedAt = time.Now()
	profile.OnboardingCompleted = true

	if err := app.fitnessService.SaveProfile(r.Context(), profile); err != nil {
		app.serverError(w, r, errors.Wrap(err, "save profile"))
		return
	}

	app.flash(r, "Welcome to Fit 30! Pick a plan to get started.")
	redirect(w, r, "/plans")
}

// parseOnboardingForm validates the submitted form and builds a profile from
// it. The returned map is empty when every field is valid.
func parseOnboardingForm(form onboardingForm) (fitness.UserProfile, map[string]string) {
	fieldErrors := map[string]string{}
	profile := fitness.UserProfile{}

	if form.Name == "" {
		fieldErrors["name"] = "Name is required"
	}
	profile.Name = form.Name

	switch gender := fitness.Gender(form.Gender); gender {
	case fitness.GenderMale, fitness.GenderFemale, fitness.GenderOther:
		profile.Gender = gender
	default:
		fieldErrors["gender"] = "Choose a gender"
	}

	age, err := strconv.Atoi(form.Age)
	if err != nil || age < 13 || age > 120 {
		fieldErrors["age"] = "Age must be between 13 and 120"
	}
	profile.Age = age

	weight, err := strconv.ParseFloat(form.Weight, 64)
	if err != nil || weight <= 0 {
		fieldErrors["weight"] = "Enter your weight in kilograms"
	}
	profile.WeightKg = weight

	height, err := strconv.ParseFloat(form.Height, 64)
	if err != nil || height <= 0 {
		fieldErrors["height"] = "Enter your height in centimeters"
	}
	profile.HeightCm = height

	switch level := fitness.FitnessLevel(form.Level); level {
	case fitness.LevelBeginner, fitness.LevelIntermediate, fitness.LevelAdvanced:
		profile.Level = level
	default:
		fieldErrors["level"] = "Choose a fitness level"
	}

	switch goal := fitness.Goal(form.Goal); goal {
	case fitness.GoalLoseWeight, fitness.GoalTone, fitness.GoalGainMuscle:
		profile.Goal = goal
	default:
		fieldErrors["goal"] = "Choose a goal"
	}

	return profile, fieldErrors
}
