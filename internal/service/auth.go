package service

import (
	"context"
	"fmt"

	"github.com/EpicMandM/calendar-booking/internal/config"
	"github.com/EpicMandM/calendar-booking/internal/logger"
	"github.com/EpicMandM/calendar-booking/internal/store"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// NewOAuthConfig builds the Google OAuth2 client configuration.
func NewOAuthConfig(cfg *config.Config, scopes []string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Endpoint:     google.Endpoint,
		Scopes:       scopes,
	}
}

// AuthService runs the authorization-code handshake and records the
// resulting token in the credential store.
type AuthService struct {
	oauth  *oauth2.Config
	store  store.CredentialStore
	logger *logger.Logger
}

func NewAuthService(oauthCfg *oauth2.Config, credentials store.CredentialStore, log *logger.Logger) *AuthService {
	if log == nil {
		log = logger.Discard()
	}
	return &AuthService{
		oauth:  oauthCfg,
		store:  credentials,
		logger: log,
	}
}

// AuthCodeURL returns the consent screen URL, asking for offline access.
func (s *AuthService) AuthCodeURL() string {
	return s.oauth.AuthCodeURL("", oauth2.AccessTypeOffline)
}

// CompleteAuthorization exchanges code for tokens and replaces any stored token.
func (s *AuthService) CompleteAuthorization(ctx context.Context, code string) error {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		s.logger.Error("Authorization code exchange failed", logger.Action("oauth_callback"), logger.Error(err))
		return fmt.Errorf("%w: %w", ErrUpstreamAuth, err)
	}

	if err := s.store.Set(ctx, token); err != nil {
		s.logger.Error("Failed to store credentials", logger.Action("oauth_callback"), logger.Error(err))
		return fmt.Errorf("failed to store credentials: %w", err)
	}

	s.logger.Info("Authorization completed",
		logger.Action("oauth_callback"),
		logger.Status("authenticated"),
		logger.F("REFRESH_TOKEN", token.RefreshToken != ""),
		logger.F("EXPIRY", token.Expiry.Format("2006-01-02 15:04:05")))
	return nil
}
