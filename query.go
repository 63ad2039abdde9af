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
	"io"
	"net/url"
	"strings"
)

const queryPath = "/api/sql/query"

// SQLExecutor executes a raw SQL statement and returns its normalized result.
// All resource clients consume this interface; *Client is the one concrete
// implementation.
type SQLExecutor interface {
	Query(ctx context.Context, statement string) (*QueryResult, error)
}

// Ensure Client implements SQLExecutor.
var _ SQLExecutor = (*Client)(nil)

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	ColumnNames  []string        `json:"column_names"`
	Type         ResultType      `json:"type"`
	Data         [][]Value       `json:"data"`
	ErrorMessage string          `json:"error_message"`
	Context      json.RawMessage `json:"context"`
}

// Query sends the statement to the server and normalizes the response.
//
// When the server rejects the statement, Query returns the error-kind result
// together with a *QueryError so callers can inspect either. Transport-level
// failures surface as *RequestError and non-2xx statuses as *StatusError; a
// stale session is refreshed and the request replayed once by the transport
// before any error reaches the caller.
func (c *Client) Query(ctx context.Context, statement string) (*QueryResult, error) {
	u, err := url.Parse(c.config.Endpoint + queryPath)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(&queryRequest{Query: statement})
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Post(ctx, u, body)
	if err != nil {
		var se *StatusError
		var re *RequestError
		if errors.As(err, &se) || errors.As(err, &re) {
			return nil, err
		}
		return nil, &RequestError{URL: u.String(), Err: err}
	}
	defer sneakyBodyClose(resp.Body)
	if err := checkStatusCodeOK(resp, u.String()); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var raw queryResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	result := normalizeResult(&raw)
	return result, result.Err()
}

// Exec runs a statement and discards the tabular result, if any. It returns
// an error when the statement fails.
func (c *Client) Exec(ctx context.Context, statement string) error {
	_, err := c.Query(ctx, statement)
	return err
}

func normalizeResult(raw *queryResponse) *QueryResult {
	result := &QueryResult{
		Type: raw.Type,
	}
	for _, name := range raw.ColumnNames {
		result.ColumnNames = append(result.ColumnNames, strings.ToLower(name))
	}
	if raw.Type == ResultTypeError {
		result.ErrorMessage = raw.ErrorMessage
		return result
	}
	for _, values := range raw.Data {
		row := make(Row, len(result.ColumnNames))
		for i, name := range result.ColumnNames {
			if i < len(values) {
				row[name] = values[i]
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result
}
