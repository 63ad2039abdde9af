/*
 * Copyright 2025 CogniDB, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cognidb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"go.uber.org/zap"
)

const (
	cloudLoginPath    = "/cloud/login"
	managedLoginPath  = "/api/login"
	sessionCookieName = "session"
)

// postFunc sends a bare POST without session handling. The transport provides
// it so that login requests never pass through the retry path.
type postFunc func(ctx context.Context, u *url.URL, body []byte) (*http.Response, error)

type loginRequest struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

// authenticator owns the session token and the credentials needed to refresh
// it. The transport reads the token; only the authenticator writes it.
type authenticator struct {
	endpoint string
	logger   *zap.Logger

	mu       sync.Mutex
	session  string
	user     string
	password string
	managed  bool
}

func newAuthenticator(endpoint string, logger *zap.Logger) *authenticator {
	return &authenticator{
		endpoint: endpoint,
		logger:   logger,
	}
}

// Session returns the current session token, or the empty string when no
// session has been established.
func (a *authenticator) Session() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// Authenticate performs a login and stores the resulting session token.
//
// The credentials and the managed flag are stored up front so that a later
// reauthentication can replay them even if this attempt fails.
func (a *authenticator) Authenticate(ctx context.Context, post postFunc, user, password string, managed bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = user
	a.password = password
	a.managed = managed
	return a.loginLocked(ctx, post)
}

func (a *authenticator) loginLocked(ctx context.Context, post postFunc) error {
	path := cloudLoginPath
	req := loginRequest{Email: a.user, Password: a.password}
	if a.managed {
		path = managedLoginPath
		req = loginRequest{Username: a.user, Password: a.password}
	}

	u, err := url.Parse(a.endpoint + path)
	if err != nil {
		return err
	}
	body, err := json.Marshal(&req)
	if err != nil {
		return err
	}

	resp, err := post(ctx, u, body)
	if err != nil {
		return &RequestError{URL: u.String(), Err: err}
	}
	defer sneakyBodyClose(resp.Body)
	if err := checkStatusCodeOK(resp, u.String()); err != nil {
		return err
	}

	token, ok := extractCookie(resp.Header.Values("Set-Cookie"), sessionCookieName)
	if !ok {
		return fmt.Errorf("login response carries no %q cookie", sessionCookieName)
	}
	a.session = token
	a.logger.Debug("session established", zap.String("login_path", path))
	return nil
}

// HandleReauth decides whether a failing request may be replayed with a fresh
// session. It returns false without any network call when no session was ever
// established or when the observed error is not an auth-shaped HTTP status
// (401 or 403). Otherwise it replays the stored credentials and returns true
// on success; a failing re-login surfaces as an error.
//
// usedSession is the token the failing request carried. When the stored
// session already differs, another in-flight request refreshed it and no
// additional login is performed.
func (a *authenticator) HandleReauth(ctx context.Context, post postFunc, usedSession string, observed error) (bool, error) {
	var se *StatusError
	if !errors.As(observed, &se) || !se.authShaped() {
		return false, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == "" {
		return false, nil
	}
	if a.session != usedSession {
		a.logger.Debug("session already refreshed by a concurrent request")
		return true, nil
	}

	a.logger.Debug("reauthenticating after auth failure", zap.Int("status", se.Code))
	if err := a.loginLocked(ctx, post); err != nil {
		return false, err
	}
	return true, nil
}
