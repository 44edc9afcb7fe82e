package main

import (
	"context"
	"net/url"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/menegetegabriel-collab/fit30/internal/e2etest"
	"github.com/menegetegabriel-collab/fit30/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "FIT30_SQLITE_URL":
		return ":memory:", true
	case "FIT30_ADDR":
		return "localhost:0", true
	default:
		return "", false
	}
}

// startTestServer boots the application in-process against an in-memory
// database.
func startTestServer(t *testing.T) *e2etest.Server {
	t.Helper()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("start server: %v", err)
	}
	return server
}

// onboard submits the onboarding form with sensible defaults and returns the
// resulting document.
func onboard(ctx context.Context, t *testing.T, client *e2etest.Client) *goquery.Document {
	t.Helper()
	doc, err := client.GetDoc(ctx, "/onboarding")
	if err != nil {
		t.Fatalf("get onboarding page: %v", err)
	}

	doc, err = client.SubmitForm(ctx, doc, "/onboarding", url.Values{
		"name":   {"Alex"},
		"gender": {"other"},
		"age":    {"30"},
		"weight": {"72.5"},
		"height": {"175"},
		"level":  {"beginner"},
		"goal":   {"tone"},
	})
	if err != nil {
		t.Fatalf("submit onboarding form: %v", err)
	}
	return doc
}

// startPlan onboards and starts the given plan, confirming the premium
// upsell when needed.
func startPlan(ctx context.Context, t *testing.T, client *e2etest.Client, planID string, premium bool) *goquery.Document {
	t.Helper()
	onboard(ctx, t, client)

	doc, err := client.GetDoc(ctx, "/plans/"+planID)
	if err != nil {
		t.Fatalf("get plan page: %v", err)
	}

	values := url.Values{}
	if premium {
		values.Set("confirm_premium", "true")
	}
	doc, err = client.SubmitForm(ctx, doc, "/plans/"+planID+"/start", values)
	if err != nil {
		t.Fatalf("start plan %s: %v", planID, err)
	}
	return doc
}
