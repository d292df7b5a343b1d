// Kakao OAuth2 implementation of the identity provider flow.
//
// Endpoint and profile shapes based on https://developers.kakao.com/docs/latest/en/kakaologin/rest-api
package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/desertthunder/mvx/internal/shared"
	"golang.org/x/oauth2"
)

const (
	kakaoAuthURL    = "https://kauth.kakao.com/oauth/authorize"
	kakaoTokenURL   = "https://kauth.kakao.com/oauth/token"
	kakaoAPIBaseURL = "https://kapi.kakao.com"
)

// Profile is the Kakao user record returned by the /v2/user/me endpoint.
//
// Kakao nests most fields under kakao_account and properties; the flat map
// keeps whatever the endpoint returned so the session layer can persist it
// without field-by-field translation.
type Profile map[string]any

// Nickname returns the display name from the profile, or "" when absent.
func (p Profile) Nickname() string {
	props, ok := p["properties"].(map[string]any)
	if !ok {
		return ""
	}
	nickname, _ := props["nickname"].(string)
	return nickname
}

// Service drives the Kakao authorization code flow and profile lookup.
type Service struct {
	config     *oauth2.Config
	httpClient *http.Client
	apiBaseURL string
}

// NewService creates a Kakao OAuth2 service from the given credentials map.
// Expects client_id and redirect_uri; client_secret is optional for Kakao.
func NewService(credentials map[string]string) (*Service, error) {
	clientID, ok := credentials["client_id"]
	if !ok || clientID == "" {
		return nil, fmt.Errorf("missing client_id in credentials: %w", shared.ErrMissingConfig)
	}

	redirectURI, ok := credentials["redirect_uri"]
	if !ok || redirectURI == "" {
		redirectURI = "http://localhost:8080/oauth/redirect"
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: credentials["client_secret"],
		RedirectURL:  redirectURI,
		Scopes:       []string{"profile_nickname", "profile_image"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  kakaoAuthURL,
			TokenURL: kakaoTokenURL,
		},
	}

	return &Service{
		config:     config,
		httpClient: http.DefaultClient,
		apiBaseURL: kakaoAPIBaseURL,
	}, nil
}

func (s *Service) Name() string {
	return "Kakao"
}

// Config returns the underlying OAuth2 configuration for callback handling.
func (s *Service) Config() *oauth2.Config {
	return s.config
}

// AuthURL returns the authorization URL for user login.
func (s *Service) AuthURL(state string) string {
	return s.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for an access token.
func (s *Service) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange auth code: %w", err)
	}
	return token, nil
}

// UserProfile retrieves the authenticated user's profile record.
func (s *Service) UserProfile(ctx context.Context, token *oauth2.Token) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.apiBaseURL+"/v2/user/me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: kakao API status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	return profile, nil
}
