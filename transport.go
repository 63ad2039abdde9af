package cognidb

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HTTPClient is the interface for HTTP client.
type HTTPClient interface {
	// Get sends a GET request to the CogniDB server.
	Get(context.Context, *url.URL) (*http.Response, error)
	// Post sends a POST request to the CogniDB server.
	Post(context.Context, *url.URL, []byte) (*http.Response, error)
	// Close releases idle connections held by the client.
	Close()
}

// httpClient attaches the session cookie to outgoing requests and replays a
// request exactly once after a successful reauthentication.
type httpClient struct {
	client *http.Client
	auth   *authenticator
	logger *zap.Logger
}

func newHTTPClient(config *Config, auth *authenticator) *httpClient {
	return &httpClient{
		client: &http.Client{Timeout: config.timeout()},
		auth:   auth,
		logger: config.logger(),
	}
}

// Ensure httpClient implements HTTPClient.
var _ HTTPClient = (*httpClient)(nil)

func (c *httpClient) Get(ctx context.Context, u *url.URL) (*http.Response, error) {
	return c.dispatch(ctx, http.MethodGet, u, nil)
}

func (c *httpClient) Post(ctx context.Context, u *url.URL, body []byte) (*http.Response, error) {
	return c.dispatch(ctx, http.MethodPost, u, body)
}

func (c *httpClient) Close() {
	c.client.CloseIdleConnections()
}

// barePost sends a POST without session handling and without the retry path.
// Login requests go through here.
func (c *httpClient) barePost(ctx context.Context, u *url.URL, body []byte) (*http.Response, error) {
	return c.roundTrip(ctx, http.MethodPost, u, body, "")
}

// dispatch sends the request with the current session attached. When the
// server answers 401 or 403 and the authenticator refreshes the session, the
// request is replayed exactly once with byte-identical body; the outcome of
// the replay is returned as-is, so a second auth failure propagates without
// another attempt. Transport-level failures and all other statuses are never
// retried.
func (c *httpClient) dispatch(ctx context.Context, method string, u *url.URL, body []byte) (*http.Response, error) {
	session := c.auth.Session()
	resp, err := c.roundTrip(ctx, method, u, body, session)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized && resp.StatusCode != http.StatusForbidden {
		return resp, nil
	}

	observed := newStatusError(resp, u.String())
	sneakyBodyClose(resp.Body)

	ok, err := c.auth.HandleReauth(ctx, c.barePost, session, observed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, observed
	}
	c.logger.Debug("replaying request with refreshed session", zap.String("url", u.String()))
	return c.roundTrip(ctx, method, u, body, c.auth.Session())
}

func (c *httpClient) roundTrip(ctx context.Context, method string, u *url.URL, body []byte, session string) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if session != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: session})
	}
	return c.client.Do(req)
}
