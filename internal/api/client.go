package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kitnetmanager/kitnet-client/internal/session"
	customError "github.com/kitnetmanager/kitnet-client/pkg/errors"
	"github.com/kitnetmanager/kitnet-client/pkg/response"
)

// Client talks to the Kitnet Manager backend. The session is injected, not
// global: the client reads the bearer token from it on every request and
// clears it when the backend answers 401.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	session        *session.Session
	validator      *validator.Validate
	onUnauthorized func()
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithOnUnauthorized registers a hook invoked after a 401 clears the session
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// New creates a backend client
func New(baseURL string, timeout time.Duration, sess *session.Session, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		session:    sess,
		validator:  validator.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do issues one request and decodes the backend's response envelope into out.
// All error mapping from HTTP status to the error taxonomy happens here.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return customError.WrapInvalidArgument("request body is not serializable: " + err.Error())
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return customError.WrapTransportError(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return customError.WrapTransportError(err)
	}
	defer resp.Body.Close()

	var env response.Envelope
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return customError.WrapTransportError(err)
	}
	if len(raw) > 0 {
		// An unparseable body on an error status still maps by status below.
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 400 {
			return customError.WrapTransportError(err)
		}
	}

	if err := c.statusError(resp.StatusCode, &env); err != nil {
		return err
	}

	// A 2xx status is not enough; the backend signals failure in the envelope.
	if !env.Success {
		return customError.NewBusinessError(customError.ErrCodeBackendError,
			envelopeMessage(&env, "backend reported failure"), customError.ErrTransport)
	}

	if out != nil {
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return customError.NewBusinessError(customError.ErrCodeBackendError,
				"response payload missing", customError.ErrTransport)
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return customError.WrapInvalidArgument("malformed response payload: " + err.Error())
		}
	}

	return nil
}

func envelopeMessage(env *response.Envelope, fallback string) string {
	if env.Error != "" {
		return env.Error
	}
	if env.Message != "" {
		return env.Message
	}
	return fallback
}

func (c *Client) statusError(status int, env *response.Envelope) error {
	if status >= 200 && status < 300 {
		return nil
	}

	message := envelopeMessage(env, http.StatusText(status))

	switch status {
	case http.StatusUnauthorized:
		// Session is dead; drop it so the next action forces a login.
		_ = c.session.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return customError.NewBusinessError(customError.ErrCodeUnauthorized, message, customError.ErrUnauthorized)
	case http.StatusNotFound:
		return customError.NewBusinessError(customError.ErrCodeNotFound, message, customError.ErrNotFound)
	case http.StatusConflict:
		return customError.NewBusinessError(customError.ErrCodeConflict, message, customError.ErrConflict)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return customError.NewBusinessError(customError.ErrCodeInvalidArgument, message, customError.ErrInvalidArgument)
	default:
		return customError.NewBusinessError(customError.ErrCodeBackendError, message, customError.ErrTransport)
	}
}
