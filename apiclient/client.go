package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/PaynestHQ/paynest-mobile/models"
)

const defaultTimeout = 30 * time.Second

// Client is the one shared HTTP client for the Paynest backend. Screens used
// to fire ad hoc requests each; everything now funnels through here so error
// classification and timeouts are uniform.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different backend (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the given API base URL, e.g.
// "https://api.paynest.app/api/v1".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ============================================================================
// AUTH ENDPOINTS
// ============================================================================

func (c *Client) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.post(ctx, "/auth/login", models.LoginRequest{
		Email:    email,
		Password: password,
	}, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var out models.RegisterResponse
	err := c.post(ctx, "/auth/register", req, &out)
	return out, err
}

func (c *Client) VerifyEmail(ctx context.Context, userID, code string) error {
	var out models.Envelope
	return c.post(ctx, "/auth/verify-email", models.VerifyRequest{
		UserID: userID,
		Code:   code,
	}, &out)
}

func (c *Client) VerifyPhone(ctx context.Context, userID, code string) error {
	var out models.Envelope
	return c.post(ctx, "/auth/verify-phone", models.VerifyRequest{
		UserID: userID,
		Code:   code,
	}, &out)
}

func (c *Client) ResendVerification(ctx context.Context, userID, channel string) error {
	var out models.Envelope
	return c.post(ctx, "/auth/resend-verification", models.ResendRequest{
		UserID: userID,
		Type:   channel,
	}, &out)
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out models.Envelope
	if err := c.post(ctx, "/auth/forgot-password", models.ForgotPasswordRequest{
		Email: email,
	}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// GetProfile fetches the authenticated user's profile with a Bearer token.
func (c *Client) GetProfile(ctx context.Context, token string) (models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user/profile", nil)
	if err != nil {
		return models.User{}, &APIError{Code: models.CodeUnknown, Message: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var out models.ProfileResponse
	if err := c.do(req, &out); err != nil {
		return models.User{}, err
	}
	return out.User, nil
}

// ============================================================================
// TRANSPORT
// ============================================================================

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &APIError{Code: models.CodeUnknown, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return &APIError{Code: models.CodeUnknown, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// do executes the request once. There is deliberately no retry: a failed step
// stays where it is and the user resubmits.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Code: models.CodeNetwork, Message: "Network request failed"}
	}
	defer resp.Body.Close()

	// Every response carries the envelope; decode it first to pick up the
	// structured code, then decode the payload from the same bytes.
	var buf bytes.Buffer
	var envelope models.Envelope
	if err := json.NewDecoder(io.TeeReader(resp.Body, &buf)).Decode(&envelope); err != nil {
		return classify(resp.StatusCode, models.CodeServer, "Unexpected response from server")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !envelope.Success {
		return classify(resp.StatusCode, envelope.Code, envelope.Message)
	}

	if out != nil {
		if err := json.Unmarshal(buf.Bytes(), out); err != nil {
			return classify(resp.StatusCode, models.CodeServer, "Unexpected response from server")
		}
	}
	return nil
}
