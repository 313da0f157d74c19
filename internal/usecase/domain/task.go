// Package domain contains application usecases orchestrating domain logic by task.
package domain

import (
	"context"
	"fmt"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
)

// ListTasks returns the tasks visible to the acting user; nil means the
// unrestricted view.
func (u *Usecase) ListTasks(ctx context.Context, actingUser *int64) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListTasks(ctx, actingUser)
}

// Task returns a task by id.
func (u *Usecase) Task(ctx context.Context, id int64) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTask(ctx, id)
}

// CreateTask validates required fields, fills lookup defaults and inserts a
// task.
func (u *Usecase) CreateTask(ctx context.Context, t entities.NewTask) (int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if t.Name == "" || t.DueDate.IsZero() || t.ProjectID <= 0 {
		return 0, fmt.Errorf("%w: name, due_date and project_id are required", entities.ErrInvalidArgument)
	}
	if t.StatusID <= 0 {
		t.StatusID = entities.DefaultStatusID
	}
	if t.PriorityID <= 0 {
		t.PriorityID = entities.DefaultPriorityID
	}

	id, err := u.repo.CreateTask(ctx, t)
	if err != nil {
		return 0, err
	}

	u.log.Infow("task create", "task_id", id)
	return id, nil
}

// UpdateTask replaces all mutable fields of a task.
func (u *Usecase) UpdateTask(ctx context.Context, id int64, t entities.NewTask) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if t.Name == "" || t.DueDate.IsZero() || t.ProjectID <= 0 || t.StatusID <= 0 || t.PriorityID <= 0 {
		return fmt.Errorf("%w: name, due_date, project_id, status_id and priority_id are required", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateTask(ctx, id, t)
}

// DeleteTask removes a task; deleting an absent id succeeds.
func (u *Usecase) DeleteTask(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.DeleteTask(ctx, id)
}

// Assign inserts an assignment row. Duplicate pairs are permitted.
func (u *Usecase) Assign(ctx context.Context, taskID, userID int64) (int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID <= 0 || userID <= 0 {
		return 0, fmt.Errorf("%w: task id and user_id are required", entities.ErrInvalidArgument)
	}
	return u.repo.AssignTask(ctx, taskID, userID)
}

// Unassign deletes the assignment rows for the pair.
func (u *Usecase) Unassign(ctx context.Context, taskID, userID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID <= 0 || userID <= 0 {
		return fmt.Errorf("%w: task id and user_id are required", entities.ErrInvalidArgument)
	}
	return u.repo.UnassignTask(ctx, taskID, userID)
}
