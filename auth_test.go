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
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthenticateCloudPath(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "cloud-token", Path: "/"})
	}))
	defer srv.Close()

	c := NewClient(&Config{Endpoint: srv.URL, User: "a@example.com", Password: "pw"})
	defer c.Close()
	require.NoError(t, c.Authenticate(context.Background()))

	require.Equal(t, "/cloud/login", gotPath)
	require.Equal(t, "a@example.com", gotBody["email"])
	require.Equal(t, "pw", gotBody["password"])
	require.NotContains(t, gotBody, "username")
	require.Equal(t, "cloud-token", c.auth.Session())
}

func TestAuthenticateManagedPath(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "managed-token", Path: "/"})
	}))
	defer srv.Close()

	c := NewClient(&Config{Endpoint: srv.URL, User: "admin", Password: "pw", Managed: true})
	defer c.Close()
	require.NoError(t, c.Authenticate(context.Background()))

	require.Equal(t, "/api/login", gotPath)
	require.Equal(t, "admin", gotBody["username"])
	require.NotContains(t, gotBody, "email")
	require.Equal(t, "managed-token", c.auth.Session())
}

func TestAuthenticateMissingCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(&Config{Endpoint: srv.URL, User: "a@example.com", Password: "pw"})
	defer c.Close()
	err := c.Authenticate(context.Background())
	require.ErrorContains(t, err, "session")
}

func TestAuthenticateLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(&Config{Endpoint: srv.URL, User: "a@example.com", Password: "wrong"})
	defer c.Close()

	err := c.Authenticate(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusUnauthorized, se.Code)
}

// noNetwork fails the test when the authenticator tries to reach the server.
func noNetwork(t *testing.T) postFunc {
	return func(context.Context, *url.URL, []byte) (*http.Response, error) {
		t.Fatal("unexpected network call")
		return nil, nil
	}
}

func TestHandleReauthWithoutSession(t *testing.T) {
	a := newAuthenticator("http://unused", zap.NewNop())

	ok, err := a.HandleReauth(context.Background(), noNetwork(t), "", &StatusError{Code: http.StatusUnauthorized})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHandleReauthNonAuthErrors(t *testing.T) {
	a := newAuthenticator("http://unused", zap.NewNop())
	a.session = "established"

	// Errors without an HTTP status never trigger reauthentication.
	ok, err := a.HandleReauth(context.Background(), noNetwork(t), "established", errors.New("connection refused"))
	require.NoError(t, err)
	require.False(t, ok)

	// Nor do non-auth statuses.
	for _, code := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusTooManyRequests, http.StatusInternalServerError} {
		ok, err = a.HandleReauth(context.Background(), noNetwork(t), "established", &StatusError{Code: code})
		require.NoError(t, err)
		require.False(t, ok, "status %d must not trigger reauthentication", code)
	}
}

func TestHandleReauthOnAuthStatuses(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := newAuthServer(t)
		c := NewClient(&Config{Endpoint: srv.srv.URL, User: "a@example.com", Password: "pw"})
		require.NoError(t, c.Authenticate(context.Background()))

		used := c.auth.Session()
		ok, err := c.auth.HandleReauth(context.Background(), c.http.barePost, used, &StatusError{Code: code})
		require.NoError(t, err)
		require.True(t, ok)
		require.NotEqual(t, used, c.auth.Session())

		logins, _ := srv.counts()
		require.Equal(t, 2, logins, "status %d: exactly one login beyond the initial one", code)
		c.Close()
	}
}

func TestHandleReauthSingleFlight(t *testing.T) {
	srv := newAuthServer(t)
	c := NewClient(&Config{Endpoint: srv.srv.URL, User: "a@example.com", Password: "pw"})
	defer c.Close()
	require.NoError(t, c.Authenticate(context.Background()))

	// A request that carried an older token than the stored one finds the
	// session already refreshed and performs no additional login.
	ok, err := c.auth.HandleReauth(context.Background(), c.http.barePost, "tok0", &StatusError{Code: http.StatusUnauthorized})
	require.NoError(t, err)
	require.True(t, ok)

	logins, _ := srv.counts()
	require.Equal(t, 1, logins)
}

func TestCredentialsStoredForReplay(t *testing.T) {
	srv := newAuthServer(t)
	c := NewClient(&Config{Endpoint: srv.srv.URL, User: "a@example.com", Password: "pw"})
	defer c.Close()
	require.NoError(t, c.Authenticate(context.Background()))

	used := c.auth.Session()
	ok, err := c.auth.HandleReauth(context.Background(), c.http.barePost, used, &StatusError{Code: http.StatusForbidden})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "tok2", c.auth.Session())
}
