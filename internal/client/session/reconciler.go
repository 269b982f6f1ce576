// Package session reconciles the persisted token with the in-memory auth
// state.
//
// The store is seeded from token presence alone, so a fresh start with a
// surviving token leaves an authenticated flag with no hydrated user. The
// reconciler closes that gap: it is the only place performing cross-store
// validation, and it is idempotent so re-running it against a consistent
// state dispatches nothing.
package session

import (
	"context"
	"sync"

	"github.com/Haseebfayyaz/authgate/internal/client/api"
	"github.com/Haseebfayyaz/authgate/internal/client/repositories/credentials"
	"github.com/Haseebfayyaz/authgate/internal/client/store"
	"github.com/Haseebfayyaz/authgate/internal/logging"
)

// ExpiredMessage is surfaced when a persisted token turns out to be dead.
const ExpiredMessage = "Session expired. Please login again."

type Reconciler struct {
	store  *store.Store
	creds  credentials.Repository
	client api.Client
	log    logging.Logger
}

func New(st *store.Store, creds credentials.Repository, client api.Client, log logging.Logger) *Reconciler {
	return &Reconciler{store: st, creds: creds, client: client, log: log}
}

// Run performs a single reconciliation pass, in this order:
//
//  1. Token present, no hydrated user: fetch the current user and install it
//     with the existing token. If the fetch fails, drop the token, clear the
//     session, and surface ExpiredMessage.
//  2. No token but the authenticated flag is set: clear the session.
//  3. Otherwise the state is consistent; do nothing.
//
// Cancelling ctx aborts the fetch; an update from a stale pass that already
// resolved is a benign overwrite.
func (r *Reconciler) Run(ctx context.Context) {
	token, err := r.creds.Get(ctx)
	if err != nil {
		r.log.Error(ctx, "failed to read persisted token", "error", err)
		return
	}

	st := r.store.Snapshot()

	switch {
	case token != "" && st.User == nil:
		r.store.SetLoading(true)

		user, err := r.client.CurrentUser(ctx)
		if err != nil {
			r.log.Warn(ctx, "persisted session could not be hydrated", "error", err)
			if cerr := r.creds.Clear(ctx); cerr != nil {
				r.log.Error(ctx, "failed to clear persisted token", "error", cerr)
			}
			r.store.ClearUser()
			r.store.SetError(ExpiredMessage)
			return
		}

		user.Token = token
		r.store.SetUser(user)
		r.log.Debug(ctx, "session hydrated", "user", user.Key())

	case token == "" && st.IsAuthenticated:
		// stale flag with nothing to hydrate from
		r.store.ClearUser()
	}
}

// watched are the store inputs whose change re-triggers reconciliation.
type watched struct {
	userKey       string
	authenticated bool
}

func watchedOf(st store.State) watched {
	w := watched{authenticated: st.IsAuthenticated}
	if st.User != nil {
		w.userKey = st.User.Key()
	}
	return w
}

// Start runs one pass immediately and re-runs whenever the watched inputs
// change, until ctx is cancelled or the returned stop function is called.
// Passes run on a dedicated goroutine; coalescing concurrent triggers is
// safe because Run is idempotent.
func (r *Reconciler) Start(ctx context.Context) func() {
	ctx, cancel := context.WithCancel(ctx)

	changes := make(chan struct{}, 1)

	var mu sync.Mutex
	last := watchedOf(r.store.Snapshot())

	unsub := r.store.Subscribe(func(st store.State) {
		w := watchedOf(st)
		mu.Lock()
		changed := w != last
		last = w
		mu.Unlock()
		if !changed {
			return
		}
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	go func() {
		r.Run(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				r.Run(ctx)
			}
		}
	}()

	return func() {
		unsub()
		cancel()
	}
}
