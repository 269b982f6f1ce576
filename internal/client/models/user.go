// Package models contains the client-side domain types.
package models

// User is the canonical account record. It is only ever composed from a
// trusted server response, never from raw form input.
//
// Token is set when the record was produced by login/register (or by the
// session reconciler re-attaching a persisted token); the current-user
// endpoint does not reissue it.
type User struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token,omitempty"`
}

// Key returns the identity key of the record: ID when present,
// otherwise Email.
func (u *User) Key() string {
	if u.ID != "" {
		return u.ID
	}
	return u.Email
}
