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
	"fmt"
	"strings"
)

// Database is a handle to a connected data source database.
type Database struct {
	x SQLExecutor

	// Name is the name of the database.
	Name string
}

// Database returns a handle to the named database. It does not check that the
// database exists.
func (c *Client) Database(name string) *Database {
	return &Database{x: c, Name: name}
}

// CreateDatabase connects a new data source database using the given engine.
// params carries engine-specific connection parameters and is rendered as a
// JSON literal.
func (c *Client) CreateDatabase(ctx context.Context, name, engine string, params map[string]any) (*Database, error) {
	var b strings.Builder
	fmt.Fprintf(&b, `CREATE DATABASE %s WITH ENGINE = %s`, QuoteIdent(name), QuoteValue(engine))
	if len(params) > 0 {
		fmt.Fprintf(&b, `, PARAMETERS = %s`, QuoteValue(params))
	}
	if _, err := c.Query(ctx, b.String()); err != nil {
		return nil, err
	}
	return c.Database(name), nil
}

// DatabaseSummary describes one entry of the database list.
type DatabaseSummary struct {
	Name   string
	Engine string
	Type   string
}

// Databases lists the databases known to the server.
func (c *Client) Databases(ctx context.Context) ([]DatabaseSummary, error) {
	r, err := c.Query(ctx, `SELECT name, engine, type FROM information_schema.databases`)
	if err != nil {
		return nil, err
	}
	summaries := make([]DatabaseSummary, 0, len(r.Rows))
	for _, row := range r.Rows {
		summaries = append(summaries, DatabaseSummary{
			Name:   stringCell(row, "name"),
			Engine: stringCell(row, "engine"),
			Type:   stringCell(row, "type"),
		})
	}
	return summaries, nil
}

func (d *Database) Drop(ctx context.Context) error {
	_, err := d.x.Query(ctx, fmt.Sprintf(`DROP DATABASE %s`, QuoteIdent(d.Name)))
	return err
}

// stringCell reads a cell as a string, degrading to the empty string when the
// cell is absent or not textual.
func stringCell(row Row, name string) string {
	s, _ := row[name].(string)
	return s
}
