// Package domain contains application usecases orchestrating domain logic by comment.
package domain

import (
	"context"
	"fmt"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
)

// ListTaskComments returns a task's comments, newest first.
func (u *Usecase) ListTaskComments(ctx context.Context, taskID int64) ([]entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID <= 0 {
		return nil, fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListTaskComments(ctx, taskID)
}

// CreateComment validates required fields and appends a comment.
func (u *Usecase) CreateComment(ctx context.Context, c entities.NewComment) (int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if c.TaskID <= 0 || c.AuthorID <= 0 || c.Text == "" {
		return 0, fmt.Errorf("%w: task_id, author_id and text are required", entities.ErrInvalidArgument)
	}

	id, err := u.repo.CreateComment(ctx, c)
	if err != nil {
		return 0, err
	}

	u.log.Infow("comment create", "comment_id", id, "task_id", c.TaskID)
	return id, nil
}
