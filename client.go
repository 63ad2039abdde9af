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

	"go.uber.org/zap"
)

// Client is the entry point for interacting with a CogniDB server.
//
// A Client owns its own session state, so multiple clients against different
// servers (or different accounts on the same server) coexist without
// cross-talk.
type Client struct {
	config *Config
	http   *httpClient
	auth   *authenticator
	logger *zap.Logger
}

// NewClient creates a client without logging in.
//
// Use Connect to also establish a session when credentials are configured.
func NewClient(config *Config) *Client {
	logger := config.logger()
	auth := newAuthenticator(config.Endpoint, logger)
	return &Client{
		config: config,
		http:   newHTTPClient(config, auth),
		auth:   auth,
		logger: logger,
	}
}

// Connect creates a client and, when credentials are configured, performs the
// initial login. Unauthenticated targets (local instances) skip the login and
// send no session cookie.
func Connect(ctx context.Context, config *Config) (*Client, error) {
	c := NewClient(config)
	if config.User == "" {
		return c, nil
	}
	if err := c.Authenticate(ctx); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Authenticate logs in with the configured credentials and stores the
// resulting session token for subsequent requests.
func (c *Client) Authenticate(ctx context.Context) error {
	return c.auth.Authenticate(ctx, c.http.barePost, c.config.User, c.config.Password, c.config.Managed)
}

// Close closes the client connection.
//
// You don't typically need to call this as the garbage collector will release
// the resources when the client is no longer referenced. However, it can be
// useful to call this if you want to release the resources immediately.
func (c *Client) Close() {
	c.http.Close()
}
