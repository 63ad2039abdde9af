package cognidb

import (
	"context"
	"fmt"
)

// View is a handle to a saved view inside a project.
type View struct {
	x SQLExecutor

	// Project is the name of the project the view belongs to.
	Project string
	// Name is the name of the view.
	Name string
}

// View returns a handle to the named view. It does not check that the view
// exists.
func (p *Project) View(name string) *View {
	return &View{x: p.x, Project: p.Name, Name: name}
}

// CreateView saves a select statement as a named view.
func (p *Project) CreateView(ctx context.Context, name, selectStmt string) (*View, error) {
	stmt := fmt.Sprintf(`CREATE VIEW %s.%s AS (%s)`, QuoteIdent(p.Name), QuoteIdent(name), selectStmt)
	if _, err := p.x.Query(ctx, stmt); err != nil {
		return nil, err
	}
	return p.View(name), nil
}

// Identifier returns the quoted, fully qualified view name.
func (v *View) Identifier() string {
	return QuoteIdent(v.Project) + "." + QuoteIdent(v.Name)
}

// Select returns the view contents.
func (v *View) Select(ctx context.Context) (*QueryResult, error) {
	return v.x.Query(ctx, fmt.Sprintf(`SELECT * FROM %s`, v.Identifier()))
}

func (v *View) Drop(ctx context.Context) error {
	_, err := v.x.Query(ctx, fmt.Sprintf(`DROP VIEW %s`, v.Identifier()))
	return err
}
