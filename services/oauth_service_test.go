package services

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationURL(t *testing.T) {
	t.Setenv("GOOGLE_FIT_CLIENT_ID", "test-client")
	svc := NewOAuthService()

	raw, state, err := svc.AuthorizationURL("google_fit", 42)
	require.NoError(t, err)
	require.NotEmpty(t, state)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", u.Host)

	q := u.Query()
	assert.Equal(t, "test-client", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, state, q.Get("state"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.True(t, strings.Contains(q.Get("scope"), "fitness.activity.read"))
	assert.True(t, strings.Contains(q.Get("redirect_uri"), "/wearable/oauth/google_fit/callback"))
}

func TestAuthorizationURLUnknownPlatform(t *testing.T) {
	svc := NewOAuthService()

	_, _, err := svc.AuthorizationURL("garmin", 1)
	assert.Error(t, err)
}

func TestConsumeStateIsSingleUse(t *testing.T) {
	svc := NewOAuthService()

	_, state, err := svc.AuthorizationURL("fitbit", 7)
	require.NoError(t, err)

	uid, err := svc.ConsumeState("fitbit", state)
	require.NoError(t, err)
	assert.Equal(t, uint(7), uid)

	// Second use must fail.
	_, err = svc.ConsumeState("fitbit", state)
	assert.Error(t, err)
}

func TestConsumeStatePlatformMismatch(t *testing.T) {
	svc := NewOAuthService()

	_, state, err := svc.AuthorizationURL("fitbit", 7)
	require.NoError(t, err)

	_, err = svc.ConsumeState("google_fit", state)
	assert.Error(t, err)
}

func TestConsumeStateExpired(t *testing.T) {
	svc := NewOAuthService()

	_, state, err := svc.AuthorizationURL("fitbit", 7)
	require.NoError(t, err)

	// Backdate the state beyond the TTL.
	svc.mu.Lock()
	info := svc.states[state]
	info.CreatedAt = time.Now().Add(-oauthStateTTL - time.Minute)
	svc.states[state] = info
	svc.mu.Unlock()

	_, err = svc.ConsumeState("fitbit", state)
	assert.Error(t, err)
}

func TestCleanupExpiredStates(t *testing.T) {
	svc := NewOAuthService()

	_, fresh, err := svc.AuthorizationURL("fitbit", 1)
	require.NoError(t, err)
	_, stale, err := svc.AuthorizationURL("fitbit", 2)
	require.NoError(t, err)

	svc.mu.Lock()
	info := svc.states[stale]
	info.CreatedAt = time.Now().Add(-oauthStateTTL - time.Minute)
	svc.states[stale] = info
	svc.mu.Unlock()

	svc.CleanupExpiredStates()

	svc.mu.Lock()
	_, freshOK := svc.states[fresh]
	_, staleOK := svc.states[stale]
	svc.mu.Unlock()
	assert.True(t, freshOK)
	assert.False(t, staleOK)
}
