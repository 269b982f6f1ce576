package api

// Default failure messages per operation. A server-supplied message field
// takes precedence over these.
const (
	loginFailedMessage        = "Login failed"
	registrationFailedMessage = "Registration failed"
	fetchUserFailedMessage    = "Failed to fetch user details"
)

// AuthError is the single error kind surfaced to the UI by the remote
// operations. Transport-level failures are never returned raw: they are
// wrapped into an AuthError carrying the operation's default message.
type AuthError struct {
	Message string
	cause   error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.cause
}

func newAuthError(message string, cause error) *AuthError {
	return &AuthError{Message: message, cause: cause}
}
