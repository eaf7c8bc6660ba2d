package service

import (
	"context"
	"fmt"

	"github.com/hdngo/thesisdesk/internal/adapter"
	"github.com/hdngo/thesisdesk/internal/logger"
	"github.com/hdngo/thesisdesk/models"
)

// AuthService owns the session lifecycle: sign-in, sign-out, and the
// restore of a remembered session at startup.
type AuthService struct {
	adapter *adapter.Adapter
	log     *logger.Logger
}

func NewAuthService(a *adapter.Adapter, log *logger.Logger) *AuthService {
	return &AuthService{adapter: a, log: log}
}

// Login exchanges credentials for a token pair and installs it in the
// credential manager. remember controls whether the session is persisted
// by the backing session store. A successful login re-arms the
// session-expired handler.
func (s *AuthService) Login(ctx context.Context, creds models.Credentials, remember bool) error {
	pair, err := adapter.Post[models.TokenPair](ctx, s.adapter, "/api/auth/login", creds)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := s.adapter.Credentials().SetSession(ctx, pair, remember); err != nil {
		return fmt.Errorf("login: store session: %w", err)
	}

	s.adapter.ResetSessionExpired()
	s.log.Info().Str("username", creds.Username).Msg("signed in")
	return nil
}

// Restore loads a previously persisted session into memory. A missing
// session is not an error; callers check Authenticated afterwards.
func (s *AuthService) Restore(ctx context.Context) error {
	return s.adapter.Credentials().Bootstrap(ctx)
}

// Authenticated reports whether a usable session is loaded.
func (s *AuthService) Authenticated() bool {
	return s.adapter.Credentials().Authenticated()
}

// Logout revokes the refresh token server-side and drops the local
// session. The logout endpoint sits on the auth path, so no bearer is
// attached; the refresh token in the body is what identifies the
// session to revoke, mirroring the refresh call. Revocation failures
// are logged but do not block the local sign-out.
func (s *AuthService) Logout(ctx context.Context) error {
	if refresh := s.adapter.Credentials().Pair().RefreshToken; refresh != "" {
		body := map[string]string{"refresh_token": refresh}
		if _, err := adapter.Post[struct{}](ctx, s.adapter, "/api/auth/logout", body); err != nil {
			s.log.Warn().Err(err).Msg("server-side logout failed, clearing local session anyway")
		}
	}

	if err := s.adapter.Credentials().Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info().Msg("signed out")
	return nil
}
