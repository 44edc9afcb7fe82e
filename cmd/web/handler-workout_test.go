package main

import (
	"strings"
	"testing"
)

func Test_application_workout(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	startPlan(ctx, t, client, "full_body", false)

	t.Run("workout day lists exercises", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/workout/1")
		if err != nil {
			t.Fatalf("get workout page: %v", err)
		}

		if count := doc.Find(".exercise-list li").Length(); count != 6 {
			t.Errorf("expected 6 exercises, found %d", count)
		}
		if doc.Find(`form[action="/workout/1/complete"]`).Length() != 1 {
			t.Error("expected the complete form")
		}
	})

	t.Run("rest day has no exercises", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/workout/7")
		if err != nil {
			t.Fatalf("get rest day page: %v", err)
		}

		if doc.Find(".exercise-list li").Length() != 0 {
			t.Error("expected no exercises on a rest day")
		}
		if !strings.Contains(doc.Text(), "Rest day") {
			t.Error("expected the rest day notice")
		}
	})

	t.Run("completing a day updates progress", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/workout/1")
		if err != nil {
			t.Fatalf("get workout page: %v", err)
		}

		if doc, err = client.SubmitForm(ctx, doc, "/workout/1/complete", nil); err != nil {
			t.Fatalf("complete workout: %v", err)
		}
		if got := doc.Url.Path; got != "/progress" {
			t.Errorf("landed on %s, want /progress", got)
		}
		if !strings.Contains(doc.Text(), "Completed days: 1 / 30") {
			t.Error("expected progress page to count the completed day")
		}
		if !strings.Contains(doc.Text(), "Streak: 1 days") {
			t.Error("expected progress page to show the streak")
		}
		if !strings.Contains(doc.Text(), "First Step") {
			t.Error("expected the first workout achievement to be listed")
		}

		// The workout page remembers the completion.
		if doc, err = client.GetDoc(ctx, "/workout/1"); err != nil {
			t.Fatalf("get workout page: %v", err)
		}
		if !strings.Contains(doc.Text(), "already completed this day") {
			t.Error("expected the workout page to mark the day completed")
		}
	})

	t.Run("day beyond the plan is not found", func(t *testing.T) {
		resp, err := client.Get(ctx, "/workout/31")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		if resp.StatusCode != 404 {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}

func Test_application_workoutWithoutPlan(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	onboard(ctx, t, client)

	// Visiting a workout without an active plan bounces to plan selection.
	doc, err := client.GetDoc(ctx, "/workout/1")
	if err != nil {
		t.Fatalf("get workout page: %v", err)
	}
	if count := doc.Find(".plan-list li").Length(); count != 5 {
		t.Errorf("expected to land on the plans page, found %d plan entries", count)
	}
}
