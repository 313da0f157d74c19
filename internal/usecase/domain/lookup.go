// Package domain contains application usecases for the static lookup sets.
package domain

import (
	"context"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
)

// Statuses returns the task status lookup set.
func (u *Usecase) Statuses(ctx context.Context) ([]entities.Lookup, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListStatuses(ctx)
}

// Priorities returns the task priority lookup set.
func (u *Usecase) Priorities(ctx context.Context) ([]entities.Lookup, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListPriorities(ctx)
}

// Roles returns the membership role lookup set.
func (u *Usecase) Roles(ctx context.Context) ([]entities.Lookup, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListRoles(ctx)
}
