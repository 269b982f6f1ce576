// Package store holds the process-wide authentication state.
//
// State is mutated only through four named actions and observed through
// snapshots and subscriptions. Except for ClearUser's token deletion the
// actions are pure state transitions: persisting the token on login is the
// api layer's job, and cross-checking state against the persisted token is
// the session reconciler's.
package store

import (
	"context"
	"sync"

	"github.com/Haseebfayyaz/authgate/internal/client/models"
	"github.com/Haseebfayyaz/authgate/internal/client/repositories/credentials"
)

// State is a read-only snapshot of the authentication state.
//
// After any SetUser or ClearUser dispatch, IsAuthenticated == (User != nil).
// On a fresh start with a surviving token the state is intentionally
// inconsistent (User nil, IsAuthenticated true) until the reconciler
// hydrates the user; this avoids a flash of signed-out UI.
type State struct {
	User            *models.User
	IsAuthenticated bool
	Loading         bool
	Error           string
}

type Store struct {
	mu    sync.Mutex
	state State
	creds credentials.Repository

	subs   map[int]func(State)
	nextID int
}

// New constructs a Store seeded from the persisted token: IsAuthenticated
// reflects token presence while User always starts nil.
func New(ctx context.Context, creds credentials.Repository) (*Store, error) {
	token, err := creds.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &Store{
		state: State{IsAuthenticated: token != ""},
		creds: creds,
		subs:  make(map[int]func(State)),
	}, nil
}

// Snapshot returns a copy of the current state. The returned user record is
// detached: mutating it does not affect the store.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyState()
}

// Subscribe registers fn to be called with a snapshot after every action.
// The returned function removes the subscription. Callbacks run outside the
// store lock, so a subscriber may dispatch further actions.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// SetLoading sets the loading flag. User and error are untouched.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.state.Loading = loading
	s.mu.Unlock()
	s.notify()
}

// SetUser installs a hydrated user record and marks the session
// authenticated. The token was already persisted by the api layer.
func (s *Store) SetUser(user *models.User) {
	s.mu.Lock()
	s.state.User = user
	s.state.IsAuthenticated = true
	s.state.Loading = false
	s.state.Error = ""
	s.mu.Unlock()
	s.notify()
}

// ClearUser resets the session and deletes the persisted token. This is the
// only action with a side effect, and together with the transport's 401
// handling the only writer allowed to clear the token.
func (s *Store) ClearUser() {
	s.mu.Lock()
	s.state.User = nil
	s.state.IsAuthenticated = false
	s.state.Loading = false
	s.state.Error = ""
	s.mu.Unlock()

	_ = s.creds.Clear(context.Background())
	s.notify()
}

// SetError records a user-facing error message and stops loading. User and
// authentication flag are untouched.
func (s *Store) SetError(message string) {
	s.mu.Lock()
	s.state.Error = message
	s.state.Loading = false
	s.mu.Unlock()
	s.notify()
}

func (s *Store) notify() {
	s.mu.Lock()
	snapshot := s.copyState()
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

func (s *Store) copyState() State {
	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}
