// internal/app/system/crmapi/client.go
package crmapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// ErrShape is returned when a successful envelope carries data of the wrong
// shape (missing, null, or not a list where a list is expected).
var ErrShape = errors.New("crmapi: unexpected response data shape")

// APIError is a failure reported by the backend: an envelope with
// success=false, or an HTTP error status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request was not successful"
	}
	if e.Status != 0 {
		return fmt.Sprintf("crmapi: %s (status %d)", msg, e.Status)
	}
	return "crmapi: " + msg
}

// envelope is the backend's response wrapper.
//
//	{ "success": true, "data": [...], "message": "..." }
//
// DRF error bodies use "detail" instead of "message".
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Detail  string          `json:"detail"`
}

func (e envelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Detail
}

// Config holds the connection settings for the CRM backend.
type Config struct {
	BaseURL string        // e.g. http://localhost:8000/api
	Token   string        // bearer token; empty sends no Authorization header
	Timeout time.Duration // per-request timeout owned by the HTTP client
	Debug   bool          // log raw requests and responses
}

// Client talks to the CRM backend REST API. It never retries; a failed
// request is reported to the caller as is.
type Client struct {
	rc  *resty.Client
	log *zap.Logger
}

// New validates cfg and builds a Client.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if err := ValidateBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var rc *resty.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		rc = resty.NewWithClient(oauth2.NewClient(context.Background(), ts))
	} else {
		rc = resty.New()
	}

	rc.SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json").
		SetLogger(logger.Sugar())
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}
	if cfg.Debug {
		rc.SetDebug(true)
	}

	return &Client{rc: rc, log: logger}, nil
}

// ValidateBaseURL checks that raw is an absolute http(s) URL.
func ValidateBaseURL(raw string) error {
	if raw == "" {
		return errors.New("crmapi: base URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("crmapi: invalid base URL: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("crmapi: base URL must be absolute, got %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("crmapi: base URL scheme must be http or https, got %q", u.Scheme)
	}
	return nil
}

// Ping checks that the backend answers HTTP at all. Any response below 500
// counts as reachable; authentication is not checked.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.rc.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("crmapi: ping: %w", err)
	}
	if resp.StatusCode() >= 500 {
		return &APIError{Status: resp.StatusCode(), Message: "backend unavailable"}
	}
	return nil
}

// do sends one request and returns the decoded envelope. HTTP error
// statuses and success=false envelopes become *APIError.
func (c *Client) do(ctx context.Context, method, path string, body any) (envelope, error) {
	req := c.rc.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return envelope{}, fmt.Errorf("crmapi: %s %s: %w", method, path, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(resp.Body(), &env)

	if resp.IsError() {
		apiErr := &APIError{Status: resp.StatusCode()}
		if decodeErr == nil {
			apiErr.Message = env.message()
		}
		return envelope{}, apiErr
	}
	if decodeErr != nil {
		return envelope{}, fmt.Errorf("crmapi: decode %s %s: %w", method, path, decodeErr)
	}
	if !env.Success {
		return envelope{}, &APIError{Message: env.message()}
	}

	c.log.Debug("crm api request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()))
	return env, nil
}

// list fetches path and decodes data as a list of T.
func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	env, err := c.do(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || data[0] != '[' {
		return nil, fmt.Errorf("%s: %w", path, ErrShape)
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("crmapi: decode %s: %w", path, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// one fetches path and decodes data as a single T.
func one[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	env, err := c.do(ctx, "GET", path, nil)
	if err != nil {
		return out, err
	}
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || data[0] != '{' {
		return out, fmt.Errorf("%s: %w", path, ErrShape)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("crmapi: decode %s: %w", path, err)
	}
	return out, nil
}

// write posts body to path and requires success=true.
func (c *Client) write(ctx context.Context, path string, body any) error {
	_, err := c.do(ctx, "POST", path, body)
	return err
}
