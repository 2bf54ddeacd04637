package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const oauthStateTTL = 30 * time.Minute

// platformConfig describes one fitness platform's OAuth 2.0 endpoints.
type platformConfig struct {
	AuthURL  string
	TokenURL string
	Scopes   []string
	// Google requires offline access to hand out a refresh token.
	ExtraAuthParams map[string]string
}

var platformConfigs = map[string]platformConfig{
	"google_fit": {
		AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
		TokenURL: "https://oauth2.googleapis.com/token",
		Scopes: []string{
			"https://www.googleapis.com/auth/fitness.activity.read",
			"https://www.googleapis.com/auth/fitness.body.read",
			"https://www.googleapis.com/auth/fitness.location.read",
		},
		ExtraAuthParams: map[string]string{
			"access_type": "offline",
			"prompt":      "consent",
		},
	},
	"fitbit": {
		AuthURL:  "https://www.fitbit.com/oauth2/authorize",
		TokenURL: "https://api.fitbit.com/oauth2/token",
		Scopes:   []string{"activity", "heartrate", "location", "profile"},
	},
}

// TokenSet is the result of a code exchange or refresh.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	UserID       string `json:"user_id"` // Fitbit returns its user id here

	ExpiresAt time.Time `json:"-"`
}

type oauthState struct {
	Platform  string
	UserID    uint
	CreatedAt time.Time
}

// OAuthService runs the three-step OAuth dance for Google Fit and
// Fitbit. States are held in memory with a 30-minute expiry.
type OAuthService struct {
	client *http.Client

	mu     sync.Mutex
	states map[string]oauthState
}

func NewOAuthService() *OAuthService {
	return &OAuthService{
		client: &http.Client{Timeout: 30 * time.Second},
		states: make(map[string]oauthState),
	}
}

// AuthorizationURL builds the consent URL for a platform and records
// the state parameter for callback validation.
func (s *OAuthService) AuthorizationURL(platform string, userID uint) (string, string, error) {
	cfg, ok := platformConfigs[platform]
	if !ok {
		return "", "", fmt.Errorf("unsupported platform: %s", platform)
	}

	state := uuid.NewString()
	s.mu.Lock()
	s.states[state] = oauthState{Platform: platform, UserID: userID, CreatedAt: time.Now()}
	s.mu.Unlock()

	params := url.Values{
		"client_id":     {clientID(platform)},
		"redirect_uri":  {redirectURI(platform)},
		"scope":         {strings.Join(cfg.Scopes, " ")},
		"response_type": {"code"},
		"state":         {state},
	}
	for k, v := range cfg.ExtraAuthParams {
		params.Set(k, v)
	}

	return cfg.AuthURL + "?" + params.Encode(), state, nil
}

// ConsumeState validates a callback state and returns the user it was
// issued for. States are single-use.
func (s *OAuthService) ConsumeState(platform, state string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, ok := s.states[state]
	if !ok {
		return 0, fmt.Errorf("invalid or expired state parameter")
	}
	delete(s.states, state)

	if info.Platform != platform {
		return 0, fmt.Errorf("platform mismatch in state")
	}
	if time.Since(info.CreatedAt) > oauthStateTTL {
		return 0, fmt.Errorf("state parameter expired")
	}
	return info.UserID, nil
}

// ExchangeCode trades an authorization code for tokens.
func (s *OAuthService) ExchangeCode(platform, code string) (*TokenSet, error) {
	return s.tokenRequest(platform, url.Values{
		"client_id":     {clientID(platform)},
		"client_secret": {clientSecret(platform)},
		"code":          {code},
		"grant_type":    {"authorization_code"},
		"redirect_uri":  {redirectURI(platform)},
	})
}

// RefreshToken obtains a fresh access token.
func (s *OAuthService) RefreshToken(platform, refreshToken string) (*TokenSet, error) {
	return s.tokenRequest(platform, url.Values{
		"client_id":     {clientID(platform)},
		"client_secret": {clientSecret(platform)},
		"refresh_token": {refreshToken},
		"grant_type":    {"refresh_token"},
	})
}

func (s *OAuthService) tokenRequest(platform string, form url.Values) (*TokenSet, error) {
	cfg, ok := platformConfigs[platform]
	if !ok {
		return nil, fmt.Errorf("unsupported platform: %s", platform)
	}

	req, err := http.NewRequest("POST", cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s token endpoint: %w", platform, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s token endpoint error %d: %s", platform, resp.StatusCode, string(body))
	}

	var tokens TokenSet
	if err := json.Unmarshal(body, &tokens); err != nil {
		return nil, fmt.Errorf("failed to parse token JSON: %w", err)
	}
	if tokens.ExpiresIn > 0 {
		tokens.ExpiresAt = time.Now().UTC().Add(time.Duration(tokens.ExpiresIn) * time.Second)
	}
	return &tokens, nil
}

// CleanupExpiredStates drops stale entries; called by the scheduler.
func (s *OAuthService) CleanupExpiredStates() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for state, info := range s.states {
		if time.Since(info.CreatedAt) > oauthStateTTL {
			delete(s.states, state)
		}
	}
}

func clientID(platform string) string {
	return os.Getenv(strings.ToUpper(platform) + "_CLIENT_ID")
}

func clientSecret(platform string) string {
	return os.Getenv(strings.ToUpper(platform) + "_CLIENT_SECRET")
}

func redirectURI(platform string) string {
	if uri := os.Getenv(strings.ToUpper(platform) + "_REDIRECT_URI"); uri != "" {
		return uri
	}
	return fmt.Sprintf("http://127.0.0.1:8080/wearable/oauth/%s/callback", platform)
}
