// Package domain contains application usecases orchestrating domain logic by profile.
package domain

import (
	"context"
	"fmt"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
)

// Profile returns the user aggregate with participation counts.
func (u *Usecase) Profile(ctx context.Context, userID int64) (*entities.Profile, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetProfile(ctx, userID)
}

// UpdateProfile replaces the identity fields, re-checking email uniqueness
// against every other user before writing.
func (u *Usecase) UpdateProfile(ctx context.Context, userID int64, upd entities.UserUpdate) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if upd.FirstName == "" || upd.LastName == "" || upd.Email == "" {
		return fmt.Errorf("%w: first_name, last_name and email are required", entities.ErrInvalidArgument)
	}

	taken, err := u.repo.EmailInUse(ctx, upd.Email, userID)
	if err != nil {
		return err
	}
	if taken {
		return entities.ErrEmailExists
	}

	return u.repo.UpdateUser(ctx, userID, upd)
}

// AssignedTasks returns the user's assigned tasks.
func (u *Usecase) AssignedTasks(ctx context.Context, userID int64) ([]entities.AssignedTask, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListAssignedTasks(ctx, userID)
}

// MemberProjects returns the projects the user is a member of.
func (u *Usecase) MemberProjects(ctx context.Context, userID int64) ([]entities.MemberProject, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListMemberProjects(ctx, userID)
}
