package cognidb

import (
	"bytes"
	"context"
	"fmt"
)

// Table is a handle to a table inside a data source database.
type Table struct {
	x SQLExecutor

	// Database is the name of the database the table belongs to.
	//
	// This is optional and may be empty for tables in the default scope.
	Database string
	// Table is the name of the table.
	Table string
}

func (c *Client) Table(tableName string) *Table {
	return &Table{
		x:     c,
		Table: tableName,
	}
}

func (d *Database) Table(tableName string) *Table {
	return &Table{
		x:        d.x,
		Database: d.Name,
		Table:    tableName,
	}
}

// Identifier returns the quoted, fully qualified table name.
func (t *Table) Identifier() string {
	var b bytes.Buffer
	if t.Database != "" {
		b.WriteString(QuoteIdent(t.Database))
		b.WriteByte('.')
	}
	b.WriteString(QuoteIdent(t.Table))
	return b.String()
}

// CreateFromSelect materializes the table from the result of a select
// statement.
func (t *Table) CreateFromSelect(ctx context.Context, selectStmt string) error {
	_, err := t.x.Query(ctx, fmt.Sprintf(`CREATE TABLE %s (%s)`, t.Identifier(), selectStmt))
	return err
}

// InsertFromSelect appends the result of a select statement to the table.
func (t *Table) InsertFromSelect(ctx context.Context, selectStmt string) error {
	_, err := t.x.Query(ctx, fmt.Sprintf(`INSERT INTO %s (%s)`, t.Identifier(), selectStmt))
	return err
}

// Select returns the table contents. A limit of zero means no LIMIT clause.
func (t *Table) Select(ctx context.Context, limit int) (*QueryResult, error) {
	stmt := fmt.Sprintf(`SELECT * FROM %s`, t.Identifier())
	if limit > 0 {
		stmt = fmt.Sprintf(`%s LIMIT %d`, stmt, limit)
	}
	return t.x.Query(ctx, stmt)
}

func (t *Table) Drop(ctx context.Context) error {
	_, err := t.x.Query(ctx, fmt.Sprintf(`DROP TABLE %s`, t.Identifier()))
	return err
}
