package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/desertthunder/mvx/internal/kakao"
	"github.com/desertthunder/mvx/internal/server"
	"github.com/desertthunder/mvx/internal/session"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// AuthLogin signs in with an email address or a catalog API key.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	material := cmd.StringArg("material")
	if material == "" {
		return fmt.Errorf("%w: email address or API key required", shared.ErrMissingArgument)
	}

	if err := r.openStores(); err != nil {
		return err
	}

	r.session.Login(material)
	cred := r.session.Credential()

	switch cred.Scheme {
	case session.SchemeEmail:
		return r.writePlain("✓ Signed in as %s\n", cred.Email)
	default:
		return r.writePlain("✓ Signed in with catalog API key\n")
	}
}

// AuthKakao performs the OAuth2 sign-in flow with Kakao.
//
// Starts a local HTTP server, opens the browser for user authorization,
// exchanges the auth code for a token, and fetches the user profile.
func (r *Runner) AuthKakao(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	config := r.config
	if config == nil {
		var err error
		if _, statErr := os.Stat(configPath); statErr == nil {
			config, err = shared.LoadConfig(configPath)
			if err != nil {
				r.logger.Warnf("failed to load config, using defaults %v", err)
				config = shared.DefaultConfig()
			}
		} else {
			config = shared.DefaultConfig()
		}
	}

	if config.Credentials.Kakao.ClientID == "" {
		return fmt.Errorf("%w: Kakao client_id must be set in config.toml", shared.ErrInvalidArgument)
	}

	kakaoService, err := kakao.NewService(config.Credentials.Kakao.Map())
	if err != nil {
		return fmt.Errorf("failed to create Kakao service: %w", err)
	}

	token, err := r.doOAuth(config, kakaoService)
	if err != nil {
		return err
	}

	if err := r.openStores(); err != nil {
		return err
	}

	profile, err := kakaoService.UserProfile(ctx, token)
	if err != nil {
		r.logger.Warn("failed to fetch kakao profile, continuing without it", "error", err)
	}

	r.session.LoginKakao(token.AccessToken, profile)

	r.writePlainln("✓ Kakao sign-in successful")
	if nickname := profile.Nickname(); nickname != "" {
		r.writePlain("Welcome, %s\n", nickname)
	}

	return nil
}

// AuthLogout clears all saved credentials.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.openStores(); err != nil {
		return err
	}

	r.session.Logout()
	return r.writePlain("✓ Signed out\n")
}

// AuthStatus shows the current session state.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if err := r.openStores(); err != nil {
		return err
	}

	if !r.session.CheckAuth() {
		return r.writePlain("✗ Not signed in\n")
	}

	cred := r.session.Credential()
	r.writePlain("✓ Signed in\n")
	r.writePlain("Scheme: %s\n", cred.Scheme)

	switch cred.Scheme {
	case session.SchemeEmail:
		r.writePlain("Email: %s\n", cred.Email)
	case session.SchemeKakao:
		if nickname := kakao.Profile(cred.Profile).Nickname(); nickname != "" {
			r.writePlain("Nickname: %s\n", nickname)
		}
	}

	return nil
}

// doOAuth executes the OAuth2 authorization flow with a local HTTP server
func (r *Runner) doOAuth(config *shared.Config, svc *kakao.Service) (*oauth2.Token, error) {
	state, err := shared.GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state token: %w", err)
	}

	authURL := svc.AuthURL(state)
	oauthHandler := server.NewOAuthHandler(svc.Config(), state)
	router := server.NewBasicRouter()
	router.Use(server.Logging(r.logger))
	router.Handler(oauthHandler)

	serverAddr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting OAuth server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser for Kakao sign-in...\n")
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for authorization (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.OAuthResult

	select {
	case result = <-oauthHandler.Result():
	case err := <-serverErrors:
		return nil, fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return nil, fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return nil, fmt.Errorf("authorization failed: %w", result.Error())
	}

	if result.Token == nil {
		return nil, fmt.Errorf("no token received")
	}

	return result.Token, nil
}
