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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RequestError indicates that a request could not complete at the transport
// level: no response was received from the server.
type RequestError struct {
	// URL is the address the failing request was sent to.
	URL string
	// Err is the underlying transport error.
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s could not complete: %s", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError indicates that the server answered with a non-2xx HTTP status.
type StatusError struct {
	// Code is the HTTP status code.
	Code int
	// Message is the server-provided error text, if any.
	Message string
	// URL is the address the failing request was sent to.
	URL string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (%d): %s: %s", e.Hint(), e.Code, e.URL, e.Message)
	}
	return fmt.Sprintf("%s (%d): %s", e.Hint(), e.Code, e.URL)
}

// Hint returns a human-readable classification of the status code.
func (e *StatusError) Hint() string {
	switch {
	case e.Code == http.StatusBadRequest:
		return "bad request"
	case e.Code == http.StatusUnauthorized:
		return "unauthorized"
	case e.Code == http.StatusForbidden:
		return "forbidden"
	case e.Code == http.StatusNotFound:
		return "not found"
	case e.Code == http.StatusTooManyRequests:
		return "rate limited"
	case e.Code >= 500:
		return "server-side fault"
	default:
		return "unexpected status"
	}
}

// authShaped reports whether the status indicates a stale or missing session.
func (e *StatusError) authShaped() bool {
	return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
}

// QueryError indicates that the server rejected a statement. This is not an
// HTTP-level failure: the server answered 2xx with an error-kind result.
type QueryError struct {
	// Message is the server's error text.
	Message string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("statement failed: %s", e.Message)
}

// serverErrorBody is the error payload shape the server may answer with.
type serverErrorBody struct {
	Message      string `json:"message"`
	ErrorMessage string `json:"error_message"`
	Detail       string `json:"detail"`
}

func (b *serverErrorBody) text() string {
	switch {
	case b.ErrorMessage != "":
		return b.ErrorMessage
	case b.Message != "":
		return b.Message
	default:
		return b.Detail
	}
}

// newStatusError drains the response body and builds a StatusError.
func newStatusError(resp *http.Response, url string) *StatusError {
	e := &StatusError{Code: resp.StatusCode, URL: url}
	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return e
	}
	var body serverErrorBody
	if err := json.Unmarshal(data, &body); err != nil || body.text() == "" {
		e.Message = string(data)
		return e
	}
	e.Message = body.text()
	return e
}

func checkStatusCodeOK(resp *http.Response, url string) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	return newStatusError(resp, url)
}

// sneakyBodyClose closes the body and ignores the error.
// This is useful to close the HTTP response body when we don't care about the error.
func sneakyBodyClose(body io.ReadCloser) {
	if body != nil {
		_ = body.Close()
	}
}
