// Package api implements the HTTP session client and the remote
// authentication operations of the auth backend.
//
// All authenticated traffic passes through a single transport that attaches
// the persisted token to outgoing requests and invalidates it on 401
// responses. The package never touches the auth state store: transport and
// application-state concerns stay separate.
package api

import (
	"context"

	"github.com/Haseebfayyaz/authgate/internal/client/models"
)

// Client defines the remote authentication operations.
//
// Contract:
//   - Login / Register: authenticate against the server; on success the
//     session token has been persisted and the returned record carries it.
//   - CurrentUser: fetch the account of the persisted token's owner; the
//     returned record has no token (it is not reissued).
//   - Close: release underlying transport resources.
//
// Every failure is an *AuthError. All methods honor context cancellation.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, name, email, password, passwordConfirmation string) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Close() error
}
