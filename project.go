package cognidb

import (
	"context"
	"fmt"
)

// Project is a handle to a project, the namespace that scopes models, views,
// and jobs.
type Project struct {
	x SQLExecutor

	// Name is the name of the project.
	Name string
}

// Project returns a handle to the named project. It does not check that the
// project exists.
func (c *Client) Project(name string) *Project {
	return &Project{x: c, Name: name}
}

// CreateProject creates a new project namespace.
func (c *Client) CreateProject(ctx context.Context, name string) (*Project, error) {
	if _, err := c.Query(ctx, fmt.Sprintf(`CREATE PROJECT %s`, QuoteIdent(name))); err != nil {
		return nil, err
	}
	return c.Project(name), nil
}

// Projects lists the project namespaces known to the server.
func (c *Client) Projects(ctx context.Context) ([]string, error) {
	r, err := c.Query(ctx, `SELECT name FROM information_schema.databases WHERE type = 'project'`)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		names = append(names, stringCell(row, "name"))
	}
	return names, nil
}

func (p *Project) Drop(ctx context.Context) error {
	_, err := p.x.Query(ctx, fmt.Sprintf(`DROP PROJECT %s`, QuoteIdent(p.Name)))
	return err
}
