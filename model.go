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
	"sort"
	"strings"
)

// Model is a handle to an ML model inside a project.
type Model struct {
	x SQLExecutor

	// Project is the name of the project the model belongs to.
	Project string
	// Name is the name of the model.
	Name string
}

// Model returns a handle to the named model. It does not check that the model
// exists.
func (p *Project) Model(name string) *Model {
	return &Model{x: p.x, Project: p.Name, Name: name}
}

// CreateModelOptions configures model creation.
type CreateModelOptions struct {
	// From is the data source database the training query runs against.
	// Optional; required when Select is set.
	From string
	// Select is the training query producing the training data.
	Select string
	// Predict is the target column the model learns to predict.
	Predict string
	// Using carries engine-specific training parameters, rendered as
	// key = value pairs with structured values as JSON literals.
	Using map[string]any
}

// CreateModel creates and starts training a model. Training is asynchronous;
// poll Status until it reports complete.
func (p *Project) CreateModel(ctx context.Context, name string, opts *CreateModelOptions) (*Model, error) {
	m := p.Model(name)

	var b strings.Builder
	fmt.Fprintf(&b, `CREATE MODEL %s`, m.Identifier())
	if opts.Select != "" {
		fmt.Fprintf(&b, ` FROM %s (%s)`, QuoteIdent(opts.From), opts.Select)
	}
	if opts.Predict != "" {
		fmt.Fprintf(&b, ` PREDICT %s`, QuoteIdent(opts.Predict))
	}
	if len(opts.Using) > 0 {
		b.WriteString(` USING `)
		b.WriteString(renderUsing(opts.Using))
	}

	if _, err := p.x.Query(ctx, b.String()); err != nil {
		return nil, err
	}
	return m, nil
}

// Identifier returns the quoted, fully qualified model name.
func (m *Model) Identifier() string {
	return QuoteIdent(m.Project) + "." + QuoteIdent(m.Name)
}

// ModelStatus describes the training state of a model.
type ModelStatus struct {
	Name     string
	Status   string
	Version  string
	Accuracy Value
	Error    string
}

// Status reads the model's training state from the project's models table.
func (m *Model) Status(ctx context.Context) (*ModelStatus, error) {
	stmt := fmt.Sprintf(`SELECT name, status, version, accuracy, error FROM %s.models WHERE name = %s`,
		QuoteIdent(m.Project), QuoteValue(m.Name))
	r, err := m.x.Query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(r.Rows) == 0 {
		return nil, fmt.Errorf("model %s.%s not found", m.Project, m.Name)
	}
	row := r.Rows[0]
	return &ModelStatus{
		Name:     stringCell(row, "name"),
		Status:   stringCell(row, "status"),
		Version:  fmt.Sprintf("%v", row["version"]),
		Accuracy: row["accuracy"],
		Error:    stringCell(row, "error"),
	}, nil
}

// Predict runs a single prediction with the given condition values and
// returns the predicted row.
func (m *Model) Predict(ctx context.Context, conditions map[string]any) (Row, error) {
	var b strings.Builder
	fmt.Fprintf(&b, `SELECT * FROM %s`, m.Identifier())
	if len(conditions) > 0 {
		b.WriteString(` WHERE `)
		keys := sortedKeys(conditions)
		for i, k := range keys {
			if i > 0 {
				b.WriteString(` AND `)
			}
			fmt.Fprintf(&b, `%s = %s`, QuoteIdent(k), QuoteValue(conditions[k]))
		}
	}

	r, err := m.x.Query(ctx, b.String())
	if err != nil {
		return nil, err
	}
	if len(r.Rows) == 0 {
		return nil, fmt.Errorf("model %s.%s returned no prediction", m.Project, m.Name)
	}
	return r.Rows[0], nil
}

// Retrain retrains the model on fresh data with its stored parameters.
func (m *Model) Retrain(ctx context.Context) error {
	_, err := m.x.Query(ctx, fmt.Sprintf(`RETRAIN %s`, m.Identifier()))
	return err
}

func (m *Model) Drop(ctx context.Context) error {
	_, err := m.x.Query(ctx, fmt.Sprintf(`DROP MODEL %s`, m.Identifier()))
	return err
}

// renderUsing renders USING parameters in deterministic key order.
func renderUsing(using map[string]any) string {
	var b strings.Builder
	for i, k := range sortedKeys(using) {
		if i > 0 {
			b.WriteString(`, `)
		}
		fmt.Fprintf(&b, `%s = %s`, QuoteIdent(k), QuoteValue(using[k]))
	}
	return b.String()
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
