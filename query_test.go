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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// resultServer answers every query with the given raw response body.
func resultServer(t testing.TB, body map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/sql/query", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req["query"])
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestQuerySelectOne(t *testing.T) {
	srv := resultServer(t, map[string]any{
		"column_names": []string{"x"},
		"type":         "table",
		"data":         [][]any{{1}},
	})

	c := NewClient(&Config{Endpoint: srv.URL})
	defer c.Close()

	result, err := c.Query(context.Background(), "SELECT 1")
	require.NoError(t, err)
	require.Equal(t, ResultTypeTable, result.Type)
	require.Equal(t, []string{"x"}, result.ColumnNames)
	require.Len(t, result.Rows, 1)
	require.Equal(t, Row{"x": float64(1)}, result.Rows[0])
}

func TestQueryLowercasesColumnNames(t *testing.T) {
	srv := resultServer(t, map[string]any{
		"column_names": []string{"Col_A", "COL_B"},
		"type":         "table",
		"data":         [][]any{{"v1", "v2"}},
	})

	c := NewClient(&Config{Endpoint: srv.URL})
	defer c.Close()

	result, err := c.Query(context.Background(), "SELECT * FROM t")
	require.NoError(t, err)
	require.Equal(t, []string{"col_a", "col_b"}, result.ColumnNames)
	require.Equal(t, "v1", result.Rows[0]["col_a"])
	require.Equal(t, "v2", result.Rows[0]["col_b"])
}

func TestQueryErrorResult(t *testing.T) {
	srv := resultServer(t, map[string]any{
		"column_names":  []string{},
		"type":          "error",
		"data":          [][]any{},
		"error_message": "boom",
	})

	c := NewClient(&Config{Endpoint: srv.URL})
	defer c.Close()

	result, err := c.Query(context.Background(), "SELECT * FROM nope")
	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	require.Equal(t, "boom", qe.Message)

	require.NotNil(t, result)
	require.Empty(t, result.Rows)
	require.Equal(t, ResultTypeError, result.Type)
	require.Equal(t, "boom", result.ErrorMessage)
}

func TestQueryOKResult(t *testing.T) {
	srv := resultServer(t, map[string]any{
		"type": "ok",
	})

	c := NewClient(&Config{Endpoint: srv.URL})
	defer c.Close()

	require.NoError(t, c.Exec(context.Background(), "CREATE PROJECT p"))
}

func TestQueryRaggedRow(t *testing.T) {
	// A short row leaves the trailing columns absent rather than failing.
	srv := resultServer(t, map[string]any{
		"column_names": []string{"a", "b"},
		"type":         "table",
		"data":         [][]any{{"only"}},
	})

	c := NewClient(&Config{Endpoint: srv.URL})
	defer c.Close()

	result, err := c.Query(context.Background(), "SELECT a, b FROM t")
	require.NoError(t, err)
	require.Equal(t, "only", result.Rows[0]["a"])
	require.NotContains(t, result.Rows[0], "b")
}

func TestResultColumn(t *testing.T) {
	r := &QueryResult{
		ColumnNames: []string{"a", "b"},
		Rows: []Row{
			{"a": float64(1), "b": "x"},
			{"a": float64(2), "b": "y"},
		},
		Type: ResultTypeTable,
	}

	values, ok := r.Column("A")
	require.True(t, ok)
	require.Equal(t, []Value{float64(1), float64(2)}, values)

	_, ok = r.Column("missing")
	require.False(t, ok)
}
