package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"keyword-service/frontend/core"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	pingEndpoint    = "/api/ping"
	loginEndpoint   = "/api/login"
	analyzeEndpoint = "/api/analyze"
	compareEndpoint = "/api/compare"
	cacheEndpoint   = "/api/cache"
	pruneEndpoint   = "/api/cache/prune"

	maxErrorSize = 1 << 10
)

type Client struct {
	log     *slog.Logger
	client  http.Client
	address string
}

func NewClient(address string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		client:  http.Client{Timeout: timeout},
		log:     log,
		address: address,
	}
}

func (c *Client) Ping(ctx context.Context) (core.PingResponse, error) {
	var reply core.PingResponse
	if err := c.do(ctx, http.MethodGet, pingEndpoint, nil, &reply); err != nil {
		return core.PingResponse{}, fmt.Errorf("failed to get ping result: %w", err)
	}
	return reply, nil
}

func (c *Client) Analyze(ctx context.Context, req core.AnalyzeRequest) (core.Report, error) {
	var reply core.Report
	if err := c.do(ctx, http.MethodPost, analyzeEndpoint, req, &reply); err != nil {
		return core.Report{}, fmt.Errorf("failed to analyze: %w", err)
	}
	return reply, nil
}

func (c *Client) Compare(ctx context.Context, req core.CompareRequest) (core.Comparison, error) {
	var reply core.Comparison
	if err := c.do(ctx, http.MethodPost, compareEndpoint, req, &reply); err != nil {
		return core.Comparison{}, fmt.Errorf("failed to compare: %w", err)
	}
	return reply, nil
}

func (c *Client) Login(ctx context.Context, name, password string) (string, error) {
	login := map[string]string{"name": name, "password": password}
	var token string
	if err := c.do(ctx, http.MethodPost, loginEndpoint, login, &token); err != nil {
		return "", fmt.Errorf("failed to login: %w", err)
	}
	return token, nil
}

func (c *Client) DropCache(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, cacheEndpoint, nil, nil)
}

func (c *Client) PruneCache(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, pruneEndpoint, nil, nil)
}

// do sends body as JSON and decodes a JSON reply into result. A *string
// result receives the raw reply. The admin token from ctx is forwarded.
func (c *Client) do(ctx context.Context, method, endpoint string, body, result any) error {
	fullURL, err := url.JoinPath(c.address, endpoint)
	if err != nil {
		return fmt.Errorf("cannot join url path: %w", err)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cannot encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("cannot create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := ctx.Value(core.JwtTokenContextKey).(string); ok && token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot get response: %w", err)
	}
	defer c.closeBody(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
	case http.StatusAccepted:
		return core.ErrAlreadyExists
	case http.StatusBadRequest:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorSize))
		return fmt.Errorf("%w: %s", core.ErrBadArguments, strings.TrimSpace(string(msg)))
	case http.StatusUnauthorized:
		return core.ErrInvalidCredentials
	case http.StatusServiceUnavailable, http.StatusTooManyRequests:
		return core.ErrServiceUnavailable
	default:
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	switch result := result.(type) {
	case nil:
		return nil
	case *string:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("cannot read reply: %w", err)
		}
		*result = string(data)
		return nil
	default:
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("cannot decode reply: %w", err)
		}
		return nil
	}
}

func (c *Client) closeBody(body io.Closer) {
	if err := body.Close(); err != nil {
		c.log.Warn("failed to close response body", "error", err)
	}
}
