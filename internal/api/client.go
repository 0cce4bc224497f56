// Package api implements the authenticated client for the remote
// financial-services REST API. All business logic (payment processing,
// KYC, commission and TDS computation, balance settlement) lives behind
// these endpoints; the client only fetches, normalizes, and submits.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/paydesk/paydesk/internal/common"
	"github.com/paydesk/paydesk/internal/listview"
	"github.com/paydesk/paydesk/internal/service"
)

// statusSuccess is the envelope status value every 2xx payload must
// carry to be treated as a success.
const statusSuccess = "success"

// Config holds API client configuration.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Validate ensures the config is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("%w: api.base_url is required", common.ErrMissingConfig)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: api.base_url must be an http(s) URL", common.ErrInvalidConfig)
	}
	return nil
}

// Client talks to the remote API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
	token      string
	retryOpts  service.RetryOptions
}

// NewClient creates a client with the given configuration. Token may be
// empty for the login call.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: slog.Default().With("component", "api"),
		retryOpts: service.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     15 * time.Second,
			Multiplier:   2.0,
		},
	}, nil
}

// envelope is the response convention every endpoint follows.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// listValues converts a query into the wire parameters. Status is
// omitted for the ALL sentinel; free-text search is never sent.
func listValues(userID string, q listview.Query) url.Values {
	values := url.Values{}
	values.Set("user_id", userID)

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if !q.StartDate.IsZero() {
		values.Set("start_date", q.StartDate.Format("2006-01-02"))
	}
	if !q.EndDate.IsZero() {
		values.Set("end_date", q.EndDate.Format("2006-01-02"))
	}
	if q.Status != "" && !strings.EqualFold(q.Status, listview.StatusAll) {
		values.Set("status", q.Status)
	}

	return values
}

// get issues an authenticated GET and decodes the envelope data into
// out. A 404 returns common.ErrNotFound so list callers can treat it as
// an empty result rather than an error.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post issues an authenticated JSON POST and decodes the envelope data
// into out (which may be nil).
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	var env envelope
	err := common.WithRetry(ctx, func() error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, u, reader)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return &common.RetryableError{Err: fmt.Errorf("%w: %v", common.ErrAPIUnavailable, err), Retryable: true}
		}
		defer func() { _ = resp.Body.Close() }()

		if handled := c.checkStatus(resp); handled != nil {
			return handled
		}

		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}, c.retryOpts)
	if err != nil {
		return err
	}

	if !strings.EqualFold(env.Status, statusSuccess) {
		msg := env.Message
		if msg == "" {
			msg = "request failed"
		}
		return common.NewUserError(msg, nil)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

// checkStatus maps non-2xx responses to errors; POSTs carrying an
// idempotency key share the GET retry policy safely.
func (c *Client) checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return &common.RetryableError{Err: common.ErrNotFound, Retryable: false}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &common.RetryableError{
			Err:       fmt.Errorf("%w: server rejected token (%d)", common.ErrSessionExpired, resp.StatusCode),
			Retryable: false,
		}
	case resp.StatusCode == http.StatusTooManyRequests:
		c.logger.Warn("Rate limit hit, will retry")
		return &common.RetryableError{Err: common.ErrRateLimit, Retryable: true}
	case resp.StatusCode >= 500:
		return &common.RetryableError{
			Err:       fmt.Errorf("%w: server error %d", common.ErrAPIUnavailable, resp.StatusCode),
			Retryable: true,
		}
	default:
		msg := serverMessage(resp.Body)
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &common.RetryableError{Err: common.NewUserError(msg, nil), Retryable: false}
	}
}

// serverMessage pulls the envelope message out of an error body, best
// effort.
func serverMessage(body io.Reader) string {
	var env envelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		return ""
	}
	return env.Message
}
