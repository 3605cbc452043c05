package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/nutritrack/cli/domain"
	"github.com/nutritrack/cli/pkg/logger"
	"github.com/nutritrack/cli/repository"
)

// Config carries the settings needed to reach the backend.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the nutrition backend over its REST surface. Every
// request carries the stored credential as a bearer header when one is
// present; an anonymous session sends the request unauthenticated and the
// server is responsible for rejecting it.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *fasthttp.Client
	creds   repository.CredentialStore
	logger  *zap.Logger
}

func NewClient(cfg Config, creds repository.CredentialStore, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: timeout,
		http:    &fasthttp.Client{},
		creds:   creds,
		logger:  log,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return domain.WrapError(domain.ErrCodeTransport, "", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")

	if reqID := logger.RequestIDFromContext(ctx); reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}
	if c.creds != nil {
		if session := c.creds.Current(); session.IsAuthenticated() {
			req.Header.Set("Authorization", "Bearer "+string(session.Credential))
		}
	}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.WrapError(domain.ErrCodeInternal, "", err)
		}
		req.SetBody(payload)
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	start := time.Now()
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return domain.WrapError(domain.ErrCodeTransport, "", err)
	}

	status := resp.StatusCode()
	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("elapsed", time.Since(start)))

	if status >= http.StatusBadRequest {
		return errorFromResponse(status, resp.Body())
	}

	if out != nil && len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return domain.WrapError(domain.ErrCodeTransport, "", err)
		}
	}
	return nil
}

// errorFromResponse maps an HTTP failure onto the domain taxonomy,
// preferring the server-supplied human-readable message when one decodes.
func errorFromResponse(status int, body []byte) error {
	var payload errorResponse
	_ = json.Unmarshal(body, &payload)

	code := codeForStatus(status)
	if payload.Message != "" {
		return domain.NewError(code, payload.Message)
	}
	return domain.WrapError(code, "", fmt.Errorf("unexpected status %d", status))
}

func codeForStatus(status int) domain.ErrorCode {
	switch status {
	case http.StatusUnauthorized:
		return domain.ErrCodeUnauthorized
	case http.StatusForbidden:
		return domain.ErrCodeForbidden
	case http.StatusNotFound:
		return domain.ErrCodeNotFound
	case http.StatusBadRequest:
		return domain.ErrCodeValidation
	default:
		return domain.ErrCodeServer
	}
}
