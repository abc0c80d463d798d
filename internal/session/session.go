package session

import (
	"sync"

	"github.com/kitnetmanager/kitnet-client/internal/domain"
	customError "github.com/kitnetmanager/kitnet-client/pkg/errors"
)

// State is the persisted shape of a session: the logged-in user and the
// bearer token issued for them. Both empty means logged out.
type State struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func (s State) populated() bool {
	return s.Token != "" || s.User != nil
}

// Session is the authenticated context injected into request-issuing code.
// It is not a package-level singleton; callers construct one and pass it in.
//
// Writes are monotonic: Set rejects a write that would replace a populated
// session with an empty one. The only way to empty a populated session is an
// explicit Clear (logout).
type Session struct {
	mu    sync.RWMutex
	state State
	store Store
}

// New creates a session backed by the given store. A nil store keeps the
// session in memory only.
func New(store Store) *Session {
	return &Session{store: store}
}

// Hydrate loads previously persisted state. A missing store file is not an
// error; the session just starts logged out.
func (s *Session) Hydrate() error {
	if s.store == nil {
		return nil
	}

	state, err := s.store.Load()
	if err != nil {
		return err
	}
	if state == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Never let a stale empty snapshot clobber a live login.
	if !state.populated() && s.state.populated() {
		return nil
	}

	s.state = *state
	return nil
}

// Set records a login. Empty credentials over a populated session are
// rejected; use Clear for logout.
func (s *Session) Set(user *domain.User, token string) error {
	next := State{User: user, Token: token}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !next.populated() && s.state.populated() {
		return customError.ErrEmptySession
	}

	s.state = next

	if s.store != nil {
		return s.store.Save(s.state)
	}
	return nil
}

// Clear empties the session. This is the explicit logout path and is always
// legal.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{}

	if s.store != nil {
		return s.store.Clear()
	}
	return nil
}

// Token returns the current bearer token, empty when logged out
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// User returns the current user, nil when logged out
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User
}

// Authenticated reports whether a token is present
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token != ""
}
