// Package api talks JSON over HTTP to the storefront backend. Every
// response is wrapped in the server's envelope ({success, message, data,
// timestamp}); listing endpoints page their data Spring-style.
//
// The client injects the bearer access token on every request and, on a 401,
// transparently refreshes the token pair once and retries. Rotated tokens
// are surfaced through OnTokensRefreshed so the auth service can persist
// them locally.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hvtran/shopfront/internal/client/models"
	"github.com/hvtran/shopfront/internal/logging"
)

// requestIDHeader carries the checkout idempotency key.
const requestIDHeader = "X-Request-Id"

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// HTTPClient is the concrete API client. It is used from a single goroutine;
// token fields are not locked.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	accessToken  string
	refreshToken string

	onTokensRefreshed func(access, refresh string)
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetTokens installs the token pair used for bearer auth and refresh.
func (c *HTTPClient) SetTokens(access, refresh string) {
	c.accessToken = access
	c.refreshToken = refresh
}

// ClearTokens drops the token pair; subsequent requests go out anonymous.
func (c *HTTPClient) ClearTokens() {
	c.accessToken = ""
	c.refreshToken = ""
}

// OnTokensRefreshed registers a callback invoked after a successful
// transparent token refresh, with the rotated pair.
func (c *HTTPClient) OnTokensRefreshed(fn func(access, refresh string)) {
	c.onTokensRefreshed = fn
}

// do executes one API call, decoding the envelope's data field into out
// (which may be nil). On a 401 it refreshes the token pair once and retries.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.doWithHeaders(ctx, method, path, query, body, out, nil)
}

func (c *HTTPClient) doWithHeaders(ctx context.Context, method, path string, query url.Values, body, out any, headers map[string]string) error {
	err := c.doOnce(ctx, method, path, query, body, out, headers)
	if err == nil || c.refreshToken == "" || path == pathAuthRefreshToken {
		return err
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		return err
	}

	if rerr := c.refresh(ctx); rerr != nil {
		c.log.Warn(ctx, "token refresh failed", "error", rerr)
		return err
	}
	return c.doOnce(ctx, method, path, query, body, out, headers)
}

func (c *HTTPClient) doOnce(ctx context.Context, method, path string, query url.Values, body, out any, headers map[string]string) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var env envelope
	if len(data) > 0 {
		// a non-envelope body (e.g. proxy error page) falls through to the
		// status check below
		_ = json.Unmarshal(data, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &Error{Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// refresh exchanges the refresh token for a rotated pair.
func (c *HTTPClient) refresh(ctx context.Context) error {
	var resp models.LoginResponse
	body := map[string]string{"refreshToken": c.refreshToken}
	if err := c.doOnce(ctx, http.MethodPost, pathAuthRefreshToken, nil, body, &resp, nil); err != nil {
		return err
	}

	c.SetTokens(resp.AccessToken, resp.RefreshToken)
	if c.onTokensRefreshed != nil {
		c.onTokensRefreshed(resp.AccessToken, resp.RefreshToken)
	}
	c.log.Debug(ctx, "access token refreshed")
	return nil
}

func pageQueryValues(q models.PageQuery) url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", fmt.Sprint(q.Page))
	}
	if q.Size > 0 {
		v.Set("size", fmt.Sprint(q.Size))
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortDir != "" {
		v.Set("sortDir", q.SortDir)
	}
	if q.Keyword != "" {
		v.Set("keyword", q.Keyword)
	}
	return v
}
