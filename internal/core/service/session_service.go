package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusdesk/portal/internal/core/domain"
	"github.com/campusdesk/portal/internal/core/ports"
	"github.com/campusdesk/portal/internal/core/state"
)

// SessionService holds the single current session and gates access to the
// credential store. It is constructed once at startup and shared.
type SessionService struct {
	credentials *CredentialStore
	session     *state.Cell[*domain.User]
	ids         IDGenerator
	log         zerolog.Logger
}

var _ ports.SessionService = (*SessionService)(nil)

// NewSessionService hydrates the persisted session. A stored user that
// decodes and is well formed is taken at face value: it is not checked
// against the credential store, so the process starts authenticated as
// whoever was last persisted.
func NewSessionService(ctx context.Context, store ports.DurableStore, credentials *CredentialStore, ids IDGenerator, log zerolog.Logger) *SessionService {
	s := &SessionService{
		credentials: credentials,
		session:     state.NewCell[*domain.User](ctx, store, KeyCurrentUser, nil, log),
		ids:         ids,
		log:         log,
	}

	if u := s.session.Value(); u != nil {
		if !u.WellFormed() {
			s.log.Warn().Str("username", u.Username).Msg("stored session malformed, starting anonymous")
			s.session.Clear(ctx, nil)
		} else {
			s.log.Info().
				Str("username", u.Username).
				Str("role", string(u.Role)).
				Bool("trusted_without_revalidation", true).
				Msg("session restored")
		}
	}
	return s
}

// Current returns the authenticated user, if any.
func (s *SessionService) Current() (domain.User, bool) {
	u := s.session.Value()
	if u == nil {
		return domain.User{}, false
	}
	return *u, true
}

// Login starts a session for the matching user and persists it. On failure
// the current session, if any, is left as it was.
func (s *SessionService) Login(ctx context.Context, username, password string) (domain.User, bool) {
	u, ok := s.credentials.Authenticate(username, password)
	if !ok {
		s.log.Info().Str("username", username).Msg("login rejected")
		return domain.User{}, false
	}

	s.session.Set(ctx, &u)
	s.log.Info().Str("username", u.Username).Str("role", string(u.Role)).Msg("login")
	return u, true
}

// Logout clears the session from memory and from the durable store.
func (s *SessionService) Logout(ctx context.Context) {
	if u := s.session.Value(); u != nil {
		s.log.Info().Str("username", u.Username).Msg("logout")
	}
	s.session.Clear(ctx, nil)
}

// Register adds a new account with a fresh id. It does not log the account
// in. Registration fails when the username is already taken.
func (s *SessionService) Register(ctx context.Context, in ports.RegisterInput) bool {
	u := domain.User{
		ID:       s.ids.NewID(),
		Username: in.Username,
		Password: in.Password,
		Role:     in.Role,
		Name:     in.Name,
		Email:    in.Email,
	}

	if !s.credentials.Register(ctx, u) {
		s.log.Info().Str("username", in.Username).Msg("registration rejected, username taken")
		return false
	}
	s.log.Info().Str("username", u.Username).Str("role", string(u.Role)).Msg("user registered")
	return true
}
