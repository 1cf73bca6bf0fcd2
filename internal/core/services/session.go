package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/quill-labs/notedump/internal/core/domain"
	"github.com/quill-labs/notedump/internal/core/ports/driven"
	"github.com/quill-labs/notedump/internal/core/ports/driving"
)

const (
	// DefaultClientID is the registered public client for this tool.
	DefaultClientID = "c55c98cc-9cf9-43dc-8e84-38b60cd514b5"

	// DefaultAuthURL and DefaultTokenURL are the Microsoft identity
	// platform v2 endpoints for the common tenant.
	DefaultAuthURL  = "https://login.microsoftonline.com/common/oauth2/v2.0/authorize"
	DefaultTokenURL = "https://login.microsoftonline.com/common/oauth2/v2.0/token"

	// DefaultRedirectURI must match the URI registered for the client.
	DefaultRedirectURI = "http://localhost:8000/auth"

	// DefaultRedirectWait bounds how long we wait for the user to
	// complete the browser flow.
	DefaultRedirectWait = 2 * time.Minute

	// ExpiryMargin is the safety margin before re-authenticating: a
	// token expiring within it is treated as already expired, so a long
	// traversal never starts on a token about to die.
	ExpiryMargin = 5 * time.Minute
)

// DefaultScopes is the minimal read-only scope set.
var DefaultScopes = []string{"Notes.Read"}

// AuthConfig holds the OAuth application parameters.
type AuthConfig struct {
	ClientID     string
	Scopes       []string
	AuthURL      string
	TokenURL     string
	RedirectURI  string
	RedirectWait time.Duration
}

// DefaultAuthConfig returns the production auth configuration.
func DefaultAuthConfig() AuthConfig {
	return AuthConfig{
		ClientID:     DefaultClientID,
		Scopes:       DefaultScopes,
		AuthURL:      DefaultAuthURL,
		TokenURL:     DefaultTokenURL,
		RedirectURI:  DefaultRedirectURI,
		RedirectWait: DefaultRedirectWait,
	}
}

// Authenticator performs one full interactive OAuth2 authorization-code
// exchange: it starts the redirect listener, sends the user's browser
// to the authorization URL, waits for the redirect, exchanges the code
// at the token endpoint, and persists the resulting token. The listener
// is stopped on every exit path.
type Authenticator struct {
	cfg      AuthConfig
	oauth    *oauth2.Config
	listener driven.RedirectListener
	browser  driven.Browser
	store    driven.TokenStore
	log      *slog.Logger
}

// NewAuthenticator creates an authenticator.
func NewAuthenticator(
	cfg AuthConfig,
	listener driven.RedirectListener,
	browser driven.Browser,
	store driven.TokenStore,
	log *slog.Logger,
) *Authenticator {
	return &Authenticator{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:    cfg.ClientID,
			Scopes:      cfg.Scopes,
			RedirectURL: cfg.RedirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		listener: listener,
		browser:  browser,
		store:    store,
		log:      log,
	}
}

// Authenticate runs the interactive flow and returns a ready session.
// The token endpoint call is not retried here; only resource reads go
// through the rate-limit-aware fetcher.
func (a *Authenticator) Authenticate(ctx context.Context) (*domain.Session, error) {
	if err := a.listener.Start(); err != nil {
		return nil, fmt.Errorf("start redirect listener: %w", err)
	}
	defer func() {
		if err := a.listener.Stop(); err != nil {
			a.log.Warn("stopping redirect listener", "error", err)
		}
	}()

	state, err := generateState()
	if err != nil {
		return nil, fmt.Errorf("generate state: %w", err)
	}

	authURL := a.oauth.AuthCodeURL(state)
	a.log.Info("opening browser to authorize access", "url", authURL)
	if err := a.browser.Open(authURL); err != nil {
		return nil, fmt.Errorf("open browser: %w", err)
	}

	a.log.Info("waiting for authorization redirect from browser")
	redirectURL, err := a.listener.AwaitRedirect(a.cfg.RedirectWait)
	if err != nil {
		return nil, err
	}

	code, err := parseRedirect(redirectURL, state)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthExchangeFailed, err)
	}

	oauthToken, err := a.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthExchangeFailed, err)
	}

	token := tokenFromOAuth2(oauthToken)
	if err := a.store.Save(token); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}
	a.log.Info("obtained and saved new token")

	return NewSession(ctx, token), nil
}

// parseRedirect extracts the authorization code from the captured
// redirect URL and verifies the anti-forgery state.
func parseRedirect(redirectURL, expectedState string) (string, error) {
	u, err := url.Parse(redirectURL)
	if err != nil {
		return "", fmt.Errorf("parse redirect URL: %w", err)
	}
	q := u.Query()

	if errParam := q.Get("error"); errParam != "" {
		return "", fmt.Errorf("provider returned %q: %s", errParam, q.Get("error_description"))
	}
	if state := q.Get("state"); state != expectedState {
		return "", fmt.Errorf("state mismatch")
	}
	code := q.Get("code")
	if code == "" {
		return "", fmt.Errorf("no authorization code in redirect")
	}
	return code, nil
}

// tokenFromOAuth2 converts the library token to the persisted record.
func tokenFromOAuth2(t *oauth2.Token) domain.Token {
	token := domain.Token{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
	}
	if !t.Expiry.IsZero() {
		token.ExpiresAt = t.Expiry.Unix()
	}
	if scope, ok := t.Extra("scope").(string); ok {
		token.Scope = scope
	}
	return token
}

// NewSession builds a session whose HTTP client attaches the token as a
// bearer credential on every request.
func NewSession(ctx context.Context, token domain.Token) *domain.Session {
	source := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	})
	return &domain.Session{
		HTTP:  oauth2.NewClient(ctx, source),
		Token: token,
	}
}

// sessionAuthenticator is what SessionService delegates to when the
// saved token cannot be used. Narrowed to an interface so tests can
// count invocations without driving a browser.
type sessionAuthenticator interface {
	Authenticate(ctx context.Context) (*domain.Session, error)
}

// Ensure SessionService implements the driving port.
var _ driving.SessionProvider = (*SessionService)(nil)

// SessionService decides whether the cached token is still usable and
// reconstructs a session from it without any network call; otherwise it
// delegates to the authenticator.
type SessionService struct {
	store  driven.TokenStore
	auth   sessionAuthenticator
	log    *slog.Logger
	margin time.Duration
	now    func() time.Time
}

// NewSessionService creates a session service with the standard expiry
// margin.
func NewSessionService(store driven.TokenStore, auth sessionAuthenticator, log *slog.Logger) *SessionService {
	return &SessionService{
		store:  store,
		auth:   auth,
		log:    log,
		margin: ExpiryMargin,
		now:    time.Now,
	}
}

// Session returns a ready-to-use session. When forceNew is set the
// stored token is deleted first, regardless of its validity.
func (s *SessionService) Session(ctx context.Context, forceNew bool) (*domain.Session, error) {
	if forceNew {
		s.log.Info("ignoring saved auth token")
		s.log.Info("to switch accounts you may need to delete browser cookies " +
			"for login.live.com and login.microsoftonline.com")
		if err := s.store.Delete(); err != nil {
			return nil, fmt.Errorf("delete saved token: %w", err)
		}
		return s.auth.Authenticate(ctx)
	}

	token, err := s.store.Load()
	if err != nil {
		s.log.Info("saved token not found or unreadable, starting authentication", "reason", err)
		return s.auth.Authenticate(ctx)
	}

	if token.ExpiresWithin(s.now(), s.margin) {
		s.log.Debug("saved token expired or will expire soon")
		return s.auth.Authenticate(ctx)
	}

	s.log.Debug("session restored from saved token")
	return NewSession(ctx, *token), nil
}
