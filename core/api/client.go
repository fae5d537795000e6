package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"cdn-manager/core/faults"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const acceptHeader = "application/json, text/plain, */*"

// Client talks to the StrikeTracker API on behalf of one account.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter

	mu    sync.Mutex
	token string
}

// NewClient validates the configuration and builds a client. No request is made
// until the first call.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Account == "" {
		return nil, faults.Configuration("an account hash is required")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		cfg:        cfg,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Transport: transport},
		limiter:    limiter,
		token:      cfg.Token,
	}, nil
}

// Account returns the account hash the client is scoped to.
func (c *Client) Account() string { return c.cfg.Account }

// Authenticate exchanges username and password for a bearer token unless one is
// already held.
func (c *Client) Authenticate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		return nil
	}

	tokenURL := c.baseURL + "/auth/token"
	conf := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{
		Transport: &headerTransport{base: c.httpClient.Transport, applicationID: c.cfg.ApplicationID},
	})
	if err := c.wait(ctx); err != nil {
		return err
	}

	token, err := conf.PasswordCredentialsToken(ctx, c.cfg.Username, c.cfg.Password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			resp := retrieveErr.Response
			return faults.NewAPIError(tokenURL, resp.StatusCode, reasonPhrase(resp), errorField(retrieveErr.Body))
		}
		return faults.Transport("token exchange failed", err)
	}

	c.token = token.AccessToken
	return nil
}

// Send performs one request and returns the raw response body.
//
// path is joined to the base URL unless it is already absolute. A non-nil body is
// sent as JSON. A 404 yields faults.ErrNotFound and any other non-2xx status an
// ApiError.
func (c *Client) Send(ctx context.Context, method, path string, body any) ([]byte, error) {
	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}

	url := c.resolve(path)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, faults.Decode("unable to encode request payload", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, faults.Transport("failed to build request", err)
	}
	req.Header.Set("X-Application-Id", c.cfg.ApplicationID)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Authorization", "Bearer "+c.currentToken())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, faults.Transport(fmt.Sprintf("%s %s failed", method, url), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, faults.Transport("failed to read response body", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s %s: %w", method, url, faults.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, faults.NewAPIError(url, resp.StatusCode, reasonPhrase(resp), errorField(data))
	}

	return data, nil
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return faults.Transport("rate limiter wait aborted", err)
	}
	return nil
}

func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// accountPath builds an account scoped API path.
func (c *Client) accountPath(segments ...string) string {
	path := "/api/v1/accounts/" + c.cfg.Account
	for _, segment := range segments {
		path += "/" + segment
	}
	return path
}

// headerTransport stamps the application id on token requests.
type headerTransport struct {
	base          http.RoundTripper
	applicationID string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("X-Application-Id", t.applicationID)
	clone.Header.Set("Accept", acceptHeader)
	return t.base.RoundTrip(clone)
}

func reasonPhrase(resp *http.Response) string {
	if _, reason, ok := strings.Cut(resp.Status, " "); ok && reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}

// errorField extracts the "error" member of a JSON error body.
func errorField(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	switch v := payload["error"].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
