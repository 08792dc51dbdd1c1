package soap

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	apperrors "catalog-bridge/core/errors"

	"go.uber.org/zap"
)

// Client performs SOAP calls against the Nucleo endpoint.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates a SOAP client with strict connection timeouts.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   30 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
	}

	return &Client{
		cfg:    cfg,
		http:   &http.Client{Transport: transport},
		logger: logger,
	}
}

// Config returns the credentials this client was built with, for envelope
// construction by callers.
func (c *Client) Config() Config {
	return c.cfg
}

// Call posts the envelope for an action and returns the raw response body.
// On failure the call is retried once per policy entry, waiting the
// corresponding duration between attempts; the policy's exhaustion surfaces
// ErrTransport wrapping the last underlying error. Each failure that still
// has a retry ahead is logged as a warning.
func (c *Client) Call(ctx context.Context, action, envelope string, policy Backoff) (string, error) {
	if c.cfg.BaseURL == "" {
		return "", fmt.Errorf("%s: %w: base URL not configured", action, apperrors.ErrTransport)
	}

	var lastErr error
	attempts := len(policy) + 1

	for i := 0; i < attempts; i++ {
		body, err := c.post(ctx, action, envelope)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if i < len(policy) {
			c.logger.Warn("soap call failed, retrying",
				zap.String("action", action),
				zap.Int("attempt", i+1),
				zap.Duration("wait", policy[i]),
				zap.Error(err),
			)
			select {
			case <-time.After(policy[i]):
			case <-ctx.Done():
				return "", fmt.Errorf("%s: %w: %w", action, apperrors.ErrTransport, ctx.Err())
			}
		}
	}

	return "", fmt.Errorf("%s: %w: %w", action, apperrors.ErrTransport, lastErr)
}

// post performs a single SOAP 1.2 POST. A non-2xx status is a failure; a
// call either yields the complete body or an error, never a partial read.
func (c *Client) post(ctx context.Context, action, envelope string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, strings.NewReader(envelope))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", Namespace+action)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, action)
	}

	return string(body), nil
}
