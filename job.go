package cognidb

import (
	"context"
	"fmt"
	"strings"
)

// Job is a handle to a scheduled job inside a project.
type Job struct {
	x SQLExecutor

	// Project is the name of the project the job belongs to.
	Project string
	// Name is the name of the job.
	Name string
}

// Job returns a handle to the named job. It does not check that the job
// exists.
func (p *Project) Job(name string) *Job {
	return &Job{x: p.x, Project: p.Name, Name: name}
}

// CreateJob schedules the given statements as a named job. schedule is the
// repeat interval, e.g. "1 hour"; empty means the job runs once.
func (p *Project) CreateJob(ctx context.Context, name string, statements []string, schedule string) (*Job, error) {
	j := p.Job(name)

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE JOB %s (\n%s\n)", j.Identifier(), strings.Join(statements, ";\n"))
	if schedule != "" {
		fmt.Fprintf(&b, ` EVERY %s`, schedule)
	}

	if _, err := p.x.Query(ctx, b.String()); err != nil {
		return nil, err
	}
	return j, nil
}

// JobSummary describes one entry of a project's job list.
type JobSummary struct {
	Name     string
	Query    string
	Schedule string
}

// Jobs lists the jobs of the project.
func (p *Project) Jobs(ctx context.Context) ([]JobSummary, error) {
	stmt := fmt.Sprintf(`SELECT name, query, schedule_str FROM %s.jobs`, QuoteIdent(p.Name))
	r, err := p.x.Query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	summaries := make([]JobSummary, 0, len(r.Rows))
	for _, row := range r.Rows {
		summaries = append(summaries, JobSummary{
			Name:     stringCell(row, "name"),
			Query:    stringCell(row, "query"),
			Schedule: stringCell(row, "schedule_str"),
		})
	}
	return summaries, nil
}

// Identifier returns the quoted, fully qualified job name.
func (j *Job) Identifier() string {
	return QuoteIdent(j.Project) + "." + QuoteIdent(j.Name)
}

func (j *Job) Drop(ctx context.Context) error {
	_, err := j.x.Query(ctx, fmt.Sprintf(`DROP JOB %s`, j.Identifier()))
	return err
}
