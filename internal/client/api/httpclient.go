package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Haseebfayyaz/authgate/internal/client/models"
	"github.com/Haseebfayyaz/authgate/internal/client/repositories/credentials"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type authResponse struct {
	User    *userPayload `json:"user"`
	Token   string       `json:"token"`
	Message string       `json:"message"`
}

// HTTPClient talks JSON over HTTP to the auth backend. All requests go
// through sessionTransport.
type HTTPClient struct {
	baseURL string
	creds   credentials.Repository
	http    *http.Client
}

func NewHTTPClient(baseURL string, creds credentials.Repository, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &sessionTransport{base: http.DefaultTransport, creds: creds},
		},
	}
}

// Login authenticates with email and password. The server must return both
// a user object and a token; otherwise the operation fails. On success the
// token is persisted before the composed record is returned.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp authResponse
	status, err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, newAuthError(loginFailedMessage, err)
	}
	return c.composeSession(ctx, status, &resp, loginFailedMessage)
}

// Register creates a new account. Same success and failure contract as Login.
func (c *HTTPClient) Register(ctx context.Context, name, email, password, passwordConfirmation string) (*models.User, error) {
	req := registerRequest{
		Name:                 name,
		Email:                email,
		Password:             password,
		PasswordConfirmation: passwordConfirmation,
	}
	var resp authResponse
	status, err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp)
	if err != nil {
		return nil, newAuthError(registrationFailedMessage, err)
	}
	return c.composeSession(ctx, status, &resp, registrationFailedMessage)
}

// CurrentUser fetches the account belonging to the persisted token. The
// token itself is not reissued, so the returned record carries none.
func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var resp struct {
		userPayload
		Message string `json:"message"`
	}
	status, err := c.do(ctx, http.MethodGet, "/auth/user", nil, &resp)
	if err != nil {
		return nil, newAuthError(fetchUserFailedMessage, err)
	}
	if !is2xx(status) {
		return nil, newAuthError(messageOr(resp.Message, fetchUserFailedMessage), nil)
	}
	return &models.User{ID: resp.ID, Email: resp.Email, Name: resp.Name}, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// composeSession validates an auth response, persists the token, and builds
// the canonical user record. A response without both user and token is a
// failure even on a 2xx status, and must not write to the token store.
func (c *HTTPClient) composeSession(ctx context.Context, status int, resp *authResponse, defaultMessage string) (*models.User, error) {
	if !is2xx(status) {
		return nil, newAuthError(messageOr(resp.Message, defaultMessage), nil)
	}
	if resp.User == nil || resp.Token == "" {
		return nil, newAuthError(messageOr(resp.Message, defaultMessage), nil)
	}
	if err := c.creds.Set(ctx, resp.Token); err != nil {
		return nil, newAuthError(defaultMessage, err)
	}
	return &models.User{
		ID:    resp.User.ID,
		Email: resp.User.Email,
		Name:  resp.User.Name,
		Token: resp.Token,
	}, nil
}

// do performs one JSON request and decodes the body into out when possible.
// Decoding is best effort: error responses may carry an empty or non-JSON
// body, and the status code alone decides success.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil {
		_ = json.NewDecoder(resp.Body).Decode(out)
	}

	return resp.StatusCode, nil
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
