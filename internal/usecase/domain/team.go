// Package domain contains application usecases orchestrating domain logic by team roster.
package domain

import (
	"context"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
)

// ListTeam returns the roster visible to the acting user; nil means every
// user. An acting user with no visible projects gets an empty roster, not
// an error.
func (u *Usecase) ListTeam(ctx context.Context, actingUser *int64) ([]entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListTeam(ctx, actingUser)
}
