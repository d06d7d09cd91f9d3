package store

import (
	"context"
	"fmt"

	"github.com/coursewell/coursewell/ent"
)

// courseRepo implements CourseRepo using the ent client.
type courseRepo struct {
	client *ent.Client
}

func (r *courseRepo) Get(ctx context.Context, id string) (*Course, error) {
	row, err := r.client.Course.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("course %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return &Course{ID: row.ID, Title: row.Title, Published: row.Published}, nil
}

func (r *courseRepo) Ensure(ctx context.Context, c *Course) error {
	err := r.client.Course.Create().
		SetID(c.ID).
		SetTitle(c.Title).
		SetPublished(c.Published).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("ensure course: %w", err)
	}
	return nil
}
