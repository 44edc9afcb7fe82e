package main

import (
	"strings"
	"testing"
)

func Test_secureHeaders(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)

	resp, err := server.Client().Get(ctx, "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	csp := resp.Header.Get("Content-Security-Policy")
	if !strings.Contains(csp, "default-src 'none'") {
		t.Errorf("Content-Security-Policy = %q, want default-src 'none'", csp)
	}
	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected X-Content-Type-Options: nosniff")
	}
	if resp.Header.Get("X-Frame-Options") != "deny" {
		t.Error("expected X-Frame-Options: deny")
	}
	if cache := resp.Header.Get("Cache-Control"); !strings.Contains(cache, "no-store") {
		t.Errorf("Cache-Control = %q, want no-store", cache)
	}
}
