// Package domain contains application usecases orchestrating authentication flows.
package domain

import (
	"context"
	"fmt"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
)

// Register creates a user from the self-registration flow. All four fields
// are required; the credential is stored only as its digest.
func (u *Usecase) Register(ctx context.Context, firstName, lastName, email, password string) (int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if firstName == "" || lastName == "" || email == "" || password == "" {
		return 0, fmt.Errorf("%w: first_name, last_name, email and password are required", entities.ErrInvalidArgument)
	}

	digest, err := u.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("hash credential: %w", err)
	}

	id, err := u.repo.CreateUser(ctx, entities.NewUser{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Digest:    digest,
	})
	if err != nil {
		return 0, err
	}

	u.log.Infow("user registered", "user_id", id)
	return id, nil
}

// Login authenticates by email and credential. Unknown email maps to
// not-found, a digest mismatch to wrong-credential. The returned user still
// carries the digest; the transport layer never serializes it.
func (u *Usecase) Login(ctx context.Context, email, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", entities.ErrInvalidArgument)
	}

	usr, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !u.hasher.Verify(usr.Digest, password) {
		return nil, entities.ErrWrongCredential
	}

	return usr, nil
}

// ChangePassword replaces the stored digest after verifying the old
// credential. On mismatch nothing is written.
func (u *Usecase) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if oldPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: old_password and new_password are required", entities.ErrInvalidArgument)
	}

	usr, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if !u.hasher.Verify(usr.Digest, oldPassword) {
		return entities.ErrWrongCredential
	}

	digest, err := u.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash credential: %w", err)
	}

	if err := u.repo.UpdateDigest(ctx, userID, digest); err != nil {
		return err
	}

	u.log.Infow("credential changed", "user_id", userID)
	return nil
}
