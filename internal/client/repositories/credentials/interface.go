// Package credentials persists the session token in client-local storage.
// The stored value is an opaque string: no validation, no expiry.
package credentials

import "context"

// Repository is the durable slot holding the session token. It is the sole
// source of truth for "is there a credential on this device".
//
// Get returns an empty string when no token is stored. Writers must treat
// read-then-write as non-atomic; the last writer wins.
type Repository interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
