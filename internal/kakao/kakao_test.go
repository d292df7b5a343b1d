package kakao

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/mvx/internal/shared"
	"golang.org/x/oauth2"
)

func testCredentials() map[string]string {
	return map[string]string{
		"client_id":     "test-client",
		"client_secret": "test-secret",
		"redirect_uri":  "http://localhost:8080/oauth/redirect",
	}
}

func TestNewService(t *testing.T) {
	t.Run("Valid Credentials", func(t *testing.T) {
		service, err := NewService(testCredentials())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if service.Name() != "Kakao" {
			t.Errorf("unexpected service name %q", service.Name())
		}
	})

	t.Run("Missing Client ID", func(t *testing.T) {
		_, err := NewService(map[string]string{"redirect_uri": "http://localhost/cb"})
		if !errors.Is(err, shared.ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})

	t.Run("Default Redirect URI", func(t *testing.T) {
		service, err := NewService(map[string]string{"client_id": "test-client"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if service.Config().RedirectURL == "" {
			t.Error("expected a default redirect URI")
		}
	})
}

func TestAuthURL(t *testing.T) {
	service, _ := NewService(testCredentials())
	got := service.AuthURL("random-state")

	if !strings.HasPrefix(got, "https://kauth.kakao.com/oauth/authorize?") {
		t.Errorf("unexpected authorization endpoint in %q", got)
	}
	for _, param := range []string{"client_id=test-client", "state=random-state", "response_type=code"} {
		if !strings.Contains(got, param) {
			t.Errorf("expected %s in auth URL %q", param, got)
		}
	}
}

func TestExchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse token request: %v", err)
		}
		if r.Form.Get("code") != "auth-code" {
			t.Errorf("expected auth code to be forwarded, got %q", r.Form.Get("code"))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "kakao-access-token",
			"token_type":   "bearer",
			"expires_in":   21599,
		})
	}))
	defer server.Close()

	service, _ := NewService(testCredentials())
	service.config.Endpoint.TokenURL = server.URL

	token, err := service.Exchange(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token.AccessToken != "kakao-access-token" {
		t.Errorf("unexpected access token %q", token.AccessToken)
	}
}

func TestUserProfile(t *testing.T) {
	t.Run("Returns Profile Record", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v2/user/me" {
				t.Errorf("expected profile path, got %s", r.URL.Path)
			}
			if r.Header.Get("Authorization") != "Bearer kakao-access-token" {
				t.Error("expected bearer token header")
			}
			json.NewEncoder(w).Encode(map[string]any{
				"id": 123456789,
				"properties": map[string]any{
					"nickname": "영화광",
				},
			})
		}))
		defer server.Close()

		service, _ := NewService(testCredentials())
		service.apiBaseURL = server.URL

		profile, err := service.UserProfile(context.Background(), &oauth2.Token{AccessToken: "kakao-access-token"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if profile.Nickname() != "영화광" {
			t.Errorf("unexpected nickname %q", profile.Nickname())
		}
	})

	t.Run("Error Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		service, _ := NewService(testCredentials())
		service.apiBaseURL = server.URL

		_, err := service.UserProfile(context.Background(), &oauth2.Token{AccessToken: "expired"})
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("Nickname Degrades On Missing Properties", func(t *testing.T) {
		if got := (Profile{"id": float64(1)}).Nickname(); got != "" {
			t.Errorf("expected empty nickname, got %q", got)
		}
	})
}
