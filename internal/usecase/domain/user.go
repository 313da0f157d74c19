// Package domain contains application usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"fmt"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
)

// ListUsers returns every user with role labels.
func (u *Usecase) ListUsers(ctx context.Context) ([]entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListUsers(ctx)
}

// User returns a user by id.
func (u *Usecase) User(ctx context.Context, id int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetUser(ctx, id)
}

// CreateUser is the admin-side user creation; it shares the registration
// rules.
func (u *Usecase) CreateUser(ctx context.Context, firstName, lastName, email, password string) (int64, error) {
	return u.Register(ctx, firstName, lastName, email, password)
}

// UpdateUser replaces the identity fields of a user.
func (u *Usecase) UpdateUser(ctx context.Context, id int64, upd entities.UserUpdate) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if upd.FirstName == "" || upd.LastName == "" || upd.Email == "" {
		return fmt.Errorf("%w: first_name, last_name and email are required", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateUser(ctx, id, upd)
}

// DeleteUser removes a user; deleting an absent id succeeds.
func (u *Usecase) DeleteUser(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.DeleteUser(ctx, id)
}
