// Package domain contains application usecases orchestrating domain logic by project.
package domain

import (
	"context"
	"fmt"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
)

// ListProjects returns the projects visible to the acting user; nil means
// the unrestricted view.
func (u *Usecase) ListProjects(ctx context.Context, actingUser *int64) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListProjects(ctx, actingUser)
}

// Project returns a project by id.
func (u *Usecase) Project(ctx context.Context, id int64) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetProject(ctx, id)
}

// CreateProject validates required fields and inserts a project.
func (u *Usecase) CreateProject(ctx context.Context, p entities.NewProject) (int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if p.Name == "" || p.StartDate.IsZero() {
		return 0, fmt.Errorf("%w: name and start_date are required", entities.ErrInvalidArgument)
	}

	id, err := u.repo.CreateProject(ctx, p)
	if err != nil {
		return 0, err
	}

	u.log.Infow("project create", "project_id", id)
	return id, nil
}

// UpdateProject replaces all mutable fields of a project.
func (u *Usecase) UpdateProject(ctx context.Context, id int64, p entities.NewProject) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if p.Name == "" || p.StartDate.IsZero() {
		return fmt.Errorf("%w: name and start_date are required", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateProject(ctx, id, p)
}

// DeleteProject removes a project; deleting an absent id succeeds.
func (u *Usecase) DeleteProject(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.DeleteProject(ctx, id)
}

// AddMember inserts a membership row. Duplicate pairs are permitted.
func (u *Usecase) AddMember(ctx context.Context, projectID, userID int64, roleID *int64) (int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID <= 0 || userID <= 0 {
		return 0, fmt.Errorf("%w: project id and user_id are required", entities.ErrInvalidArgument)
	}
	return u.repo.AddProjectMember(ctx, projectID, userID, roleID)
}

// RemoveMember deletes the membership rows for the pair.
func (u *Usecase) RemoveMember(ctx context.Context, projectID, userID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID <= 0 || userID <= 0 {
		return fmt.Errorf("%w: project id and user_id are required", entities.ErrInvalidArgument)
	}
	return u.repo.RemoveProjectMember(ctx, projectID, userID)
}
