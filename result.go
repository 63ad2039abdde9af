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

import "strings"

// Value stores the contents of a single cell from a CogniDB statement result.
type Value any

// ResultType classifies a statement result.
type ResultType string

const (
	// ResultTypeTable indicates the statement produced rows.
	ResultTypeTable ResultType = "table"
	// ResultTypeOK indicates the statement succeeded without rows.
	ResultTypeOK ResultType = "ok"
	// ResultTypeError indicates the server rejected the statement.
	ResultTypeError ResultType = "error"
)

// Row maps lower-cased column names to cell values.
type Row map[string]Value

// QueryResult is the normalized result of a statement execution.
//
// Column names are lower-cased so downstream lookups are case-insensitive.
// ColumnNames preserves the server's column order; each Row is built by
// zipping the raw value list with ColumnNames positionally.
type QueryResult struct {
	// ColumnNames is the ordered list of lower-cased column names.
	ColumnNames []string
	// Rows is the result data. Always empty when Type is ResultTypeError.
	Rows []Row
	// Type classifies the result.
	Type ResultType
	// ErrorMessage is the server's error text. Set only when Type is
	// ResultTypeError.
	ErrorMessage string
}

// Err returns a QueryError when the result is an error-kind result, and nil
// otherwise.
func (r *QueryResult) Err() error {
	if r.Type != ResultTypeError {
		return nil
	}
	return &QueryError{Message: r.ErrorMessage}
}

// Column returns the values of the named column in row order. The lookup is
// case-insensitive. The second return value reports whether the column
// exists.
func (r *QueryResult) Column(name string) ([]Value, bool) {
	name = strings.ToLower(name)
	found := false
	for _, c := range r.ColumnNames {
		if c == name {
			found = true
			break
		}
	}
	if !found {
		return nil, false
	}
	values := make([]Value, 0, len(r.Rows))
	for _, row := range r.Rows {
		values = append(values, row[name])
	}
	return values, true
}
