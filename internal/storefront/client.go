package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 4 << 20
	tokenHeader      = "X-Shopify-Storefront-Access-Token"
)

// Client issues GraphQL calls against the Storefront API. One attempt per
// call; there are no retries, and failures surface as *APIError.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	log      *zap.Logger
}

// NewClient constructs a client for the given endpoint and public access token.
func NewClient(endpoint, token string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		endpoint: strings.TrimSpace(endpoint),
		token:    strings.TrimSpace(token),
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		log: log,
	}
}

// APIError carries the first failure the gateway reported for a call, either
// a transport-level status or a GraphQL error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("storefront: status %d: %s", e.Status, e.Message)
	}
	return "storefront: " + e.Message
}

type gqlError struct {
	Message string `json:"message"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// request posts {query, variables} and decodes the data field into out.
// A non-2xx status or a top-level errors array fails the call.
func (c *Client) request(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("storefront: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("storefront: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(tokenHeader, c.token)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("storefront: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("storefront: read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := http.StatusText(resp.StatusCode)
		if decodeErr == nil && len(env.Errors) > 0 {
			msg = env.Errors[0].Message
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return fmt.Errorf("storefront: decode response: %w", decodeErr)
	}
	if len(env.Errors) > 0 {
		return &APIError{Message: env.Errors[0].Message}
	}

	c.log.Debug("storefront call",
		zap.Int("status", resp.StatusCode),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("storefront: decode data: %w", err)
	}
	return nil
}

// firstUserError converts a mutation's userErrors array into a failure using
// the first message, matching how transport-level errors surface.
func firstUserError(errs []userError) error {
	if len(errs) == 0 {
		return nil
	}
	return &APIError{Message: errs[0].Message}
}
