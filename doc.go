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

/*
Package cognidb provides a lightweight and easy-to-use client for interacting with a CogniDB service.

# Client

Use Connect to create a client and establish a session. This is the major entrance to construct structs for interacting with CogniDB:

	client, err := cognidb.Connect(ctx, &cognidb.Config{
		Endpoint: "https://cloud.cognidb.com",
		User:     "a@example.com",
		Password: "secret",
	})

Local instances need no credentials:

	client, err := cognidb.Connect(ctx, &cognidb.Config{
		Endpoint: "http://127.0.0.1:47334",
	})

Authentication is session-cookie based. When the server reports the session as
stale, the client logs in again with the stored credentials and replays the
failing request exactly once.

# Query Data

Query runs a SQL statement and returns the normalized result:

	result, err := client.Query(ctx, "SELECT sqft, price FROM example_db.home_rentals LIMIT 10")
	if err != nil {
		return err
	}
	for _, row := range result.Rows {
		fmt.Println(row["sqft"], row["price"])
	}

Column names are lower-cased, so lookups are case-insensitive with respect to
the server's spelling.

# Typed Resources

Databases, projects, tables, views, models, and jobs are exposed as typed
handles that compile to SQL statements:

	db, err := client.CreateDatabase(ctx, "example_db", "postgres", map[string]any{
		"host": "db.example.com",
		"port": 5432,
	})

	proj := client.Project("mind")
	model, err := proj.CreateModel(ctx, "rentals", &cognidb.CreateModelOptions{
		From:    "example_db",
		Select:  "SELECT * FROM home_rentals",
		Predict: "price",
	})
	row, err := model.Predict(ctx, map[string]any{"sqft": 823})
*/
package cognidb
