// Package contexthelpers provides typed access to request-scoped values.
package contexthelpers

import (
	"context"
	"net/http"
)

type contextKey string

const OnboardedContextKey = contextKey("onboarded")
const CurrentPathContextKey = contextKey("currentPath")
const CspNonceContextKey = contextKey("cspNonce")

// IsOnboarded reports whether the local user has completed onboarding.
func IsOnboarded(ctx context.Context) bool {
	onboarded, ok := ctx.Value(OnboardedContextKey).(bool)
	if !ok {
		return false
	}
	return onboarded
}

func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(CurrentPathContextKey).(string)
	if !ok {
		return ""
	}
	return currentPath
}

func CSPNonce(ctx context.Context) string {
	cspNonce, ok := ctx.Value(CspNonceContextKey).(string)
	if !ok {
		return ""
	}
	return cspNonce
}

// SetOnboarded marks the request as belonging to an onboarded user.
func SetOnboarded(r *http.Request, onboarded bool) *http.Request {
	ctx := context.WithValue(r.Context(), OnboardedContextKey, onboarded)
	return r.WithContext(ctx)
}

func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	ctx := context.WithValue(r.Context(), CurrentPathContextKey, currentPath)
	return r.WithContext(ctx)
}

func SetCSPNonce(r *http.Request, cspNonce string) *http.Request {
	ctx := context.WithValue(r.Context(), CspNonceContextKey, cspNonce)
	return r.WithContext(ctx)
}
