// Package gateway implements the single chokepoint for all outbound backend
// calls: bearer-token injection, envelope unwrapping, and the global
// forced-logout policy on authorization failures.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/api/metrics"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

const defaultTimeout = 30 * time.Second

// Client is the backend REST client. Every domain service call goes through
// it; no other component issues HTTP requests to the backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    ports.SessionStore
	log        zerolog.Logger
}

// Config holds client configuration.
type Config struct {
	// BaseURL is the backend root, e.g. "http://localhost:8080".
	BaseURL string
	// Timeout bounds each request. Zero means defaultTimeout.
	Timeout time.Duration
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// New creates a gateway client bound to the given session store.
func New(cfg Config, session ports.SessionStore, log zerolog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("gateway: BaseURL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		session:    session,
		log:        log,
	}, nil
}

// Get issues a GET request and returns the unwrapped envelope body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST request. A nil body sends no payload, which the backend
// expects on action endpoints parameterised purely by query string.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, query, body)
}

// Put issues a PUT request and returns the unwrapped envelope body.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// Delete issues a DELETE request, discarding any envelope body.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// do performs a single-attempt request. No retries, no backoff: callers own
// any retry policy, and none exists in this application.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// The Authorization header is attached only when a token exists; its
	// absence means an unauthenticated request, which is valid for the
	// login and registration endpoints.
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.GatewayRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GatewayRequestsTotal.WithLabelValues(method, "transport_error").Inc()
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("backend unreachable")
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnreachable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.GatewayRequestsTotal.WithLabelValues(method, "transport_error").Inc()
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrBackendUnreachable, err)
	}

	// Global policy: any authorization failure anywhere ends the session
	// before the error reaches the caller.
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		metrics.GatewayRequestsTotal.WithLabelValues(method, "auth_error").Inc()
		metrics.ForcedLogoutsTotal.Inc()
		c.log.Warn().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("authorization failure, ending session")
		c.session.Logout()
		if resp.StatusCode == http.StatusForbidden {
			return nil, domain.ErrForbidden
		}
		return nil, domain.ErrUnauthenticated
	}

	env, decodable := decodeEnvelope(respBody)

	if resp.StatusCode >= http.StatusBadRequest {
		metrics.GatewayRequestsTotal.WithLabelValues(method, "http_error").Inc()
		apiErr := &domain.APIError{Status: resp.StatusCode}
		if decodable {
			apiErr.MessageCodes = env.MessageCodes
		}
		c.log.Error().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Str("code", apiErr.Error()).Msg("backend error")
		return nil, apiErr
	}

	// Some endpoints (DELETE, action posts) answer with an empty body.
	if !decodable {
		metrics.GatewayRequestsTotal.WithLabelValues(method, "ok").Inc()
		return nil, nil
	}

	// A 2xx with success=false is still a failure. This is the backend's
	// "soft failure on 200" pattern, reconciled here once for every caller.
	if !env.Success {
		metrics.GatewayRequestsTotal.WithLabelValues(method, "soft_failure").Inc()
		apiErr := &domain.APIError{Status: resp.StatusCode, MessageCodes: env.MessageCodes}
		c.log.Error().Str("method", method).Str("path", path).Str("code", apiErr.Error()).Msg("backend reported failure")
		return nil, apiErr
	}

	metrics.GatewayRequestsTotal.WithLabelValues(method, "ok").Inc()
	return env.Body, nil
}

// decodeEnvelope parses the uniform response wrapper. The second return is
// false when the body is empty or not an envelope at all.
func decodeEnvelope(body []byte) (domain.Envelope, bool) {
	if len(bytes.TrimSpace(body)) == 0 {
		return domain.Envelope{}, false
	}
	var env domain.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.Envelope{}, false
	}
	return env, true
}
