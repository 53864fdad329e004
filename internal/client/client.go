// Package client is a typed HTTP client for the calculator API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"arith-service/internal/arithmetic"
	"arith-service/internal/types"

	"github.com/cockroachdb/errors"
)

var ErrNotReady = errors.New("calculator service is not ready")

// APIError is returned for any non-200 reply.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("calculator: status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Add(ctx context.Context, a, b float64) (float64, error) {
	return c.call(ctx, "/add", a, b)
}

func (c *Client) Subtract(ctx context.Context, a, b float64) (float64, error) {
	return c.call(ctx, "/subtract", a, b)
}

func (c *Client) Multiply(ctx context.Context, a, b float64) (float64, error) {
	return c.call(ctx, "/multy", a, b)
}

func (c *Client) Diff(ctx context.Context, a, b float64) (float64, error) {
	return c.call(ctx, "/diff", a, b)
}

// Do runs a named operation, e.g. "add" or "multy".
func (c *Client) Do(ctx context.Context, name string, a, b float64) (float64, error) {
	op, ok := arithmetic.Lookup(name)
	if !ok {
		return 0, errors.Newf("unknown operation %q", name)
	}
	return c.call(ctx, op.Path, a, b)
}

func (c *Client) Welcome(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "get welcome")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read welcome")
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}
	return string(body), nil
}

// WaitReady polls GET / until it answers or timeout elapses.
func (c *Client) WaitReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		if _, err := c.Welcome(ctx); err == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return errors.Mark(errors.Wrapf(ctx.Err(), "waiting for %s", c.baseURL), ErrNotReady)
		case <-ticker.C:
		}
	}
}

func (c *Client) call(ctx context.Context, path string, a, b float64) (float64, error) {
	payload, err := json.Marshal(types.OperandsRequest{A: &a, B: &b})
	if err != nil {
		return 0, errors.Wrap(err, "marshal operands")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrapf(err, "post %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp types.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
			errResp.Error = http.StatusText(resp.StatusCode)
		}
		return 0, &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	var result types.ResultResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, errors.Wrap(err, "decode result")
	}
	return result.Result, nil
}
