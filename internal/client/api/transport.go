package api

import (
	"fmt"
	"net/http"

	"github.com/Haseebfayyaz/authgate/internal/client/repositories/credentials"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// sessionTransport is the interception point every request passes through.
//
// Outgoing: reads the persisted token and, if present, attaches it as a
// bearer credential. Incoming: a 401 response clears the persisted token as
// a side effect before the response is handed back unchanged. No other
// status is intercepted.
type sessionTransport struct {
	base  http.RoundTripper
	creds credentials.Repository
}

func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.creds.Get(req.Context())
	if err != nil {
		return nil, fmt.Errorf("failed to read persisted token: %w", err)
	}

	req = req.Clone(req.Context())
	req.Header.Set(requestIDHeader, uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_ = t.creds.Clear(req.Context())
	}

	return resp, nil
}
