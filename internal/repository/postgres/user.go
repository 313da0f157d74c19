package postgres

import (
	"context"
	"errors"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	listUsersQuery = `
SELECT u.id, u.first_name, u.last_name, u.email, r.name
FROM users u
LEFT JOIN project_members pm ON u.id = pm.user_id
LEFT JOIN roles r ON pm.role_id = r.id`
	selectUserQuery        = `SELECT id, first_name, last_name, email, password_digest FROM users WHERE id=$1`
	selectUserByEmailQuery = `SELECT id, first_name, last_name, email, password_digest FROM users WHERE email=$1`
	insertUserQuery        = `INSERT INTO users(first_name, last_name, email, password_digest) VALUES ($1,$2,$3,$4) RETURNING id`
	updateUserQuery        = `UPDATE users SET first_name=$1, last_name=$2, email=$3 WHERE id=$4`
	deleteUserQuery        = `DELETE FROM users WHERE id=$1`
	updateDigestQuery      = `UPDATE users SET password_digest=$1 WHERE id=$2`
	emailInUseQuery        = `SELECT id FROM users WHERE email=$1 AND id <> $2`
)

// ListUsers returns all users with their membership role labels. A user
// holding several memberships appears once per membership row.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.TeamMember, error) {
	rows, err := p.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, p.wrap("list users", err)
	}
	defer rows.Close()

	users := make([]entities.TeamMember, 0)
	for rows.Next() {
		var m entities.TeamMember
		var role *string
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &role); err != nil {
			return nil, p.wrap("scan users", err)
		}
		m.Role = roleLabel(role)
		users = append(users, m)
	}
	if err := rows.Err(); err != nil {
		return nil, p.wrap("iterate users", err)
	}

	return users, nil
}

// GetUser fetches a user by id, digest included.
func (p *Postgres) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserQuery, id).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Digest)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, p.wrap("get user", err)
	}
	return &u, nil
}

// GetUserByEmail fetches a user by email, digest included.
func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByEmailQuery, email).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Digest)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, p.wrap("get user by email", err)
	}
	return &u, nil
}

// CreateUser inserts a user and returns the generated id. The unique index
// on email maps to ErrEmailExists, which also covers concurrent inserts.
func (p *Postgres) CreateUser(ctx context.Context, u entities.NewUser) (int64, error) {
	var id int64
	err := p.db.QueryRow(ctx, insertUserQuery, u.FirstName, u.LastName, u.Email, u.Digest).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, entities.ErrEmailExists
		}
		return 0, p.wrap("insert user", err)
	}

	p.log.Infow("user created", "user_id", id)
	return id, nil
}

// UpdateUser replaces the mutable identity fields.
func (p *Postgres) UpdateUser(ctx context.Context, id int64, u entities.UserUpdate) error {
	_, err := p.db.Exec(ctx, updateUserQuery, u.FirstName, u.LastName, u.Email, id)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.ErrEmailExists
		}
		return p.wrap("update user", err)
	}
	return nil
}

// DeleteUser removes a user unconditionally. Deleting an absent id is a
// no-op success.
func (p *Postgres) DeleteUser(ctx context.Context, id int64) error {
	if _, err := p.db.Exec(ctx, deleteUserQuery, id); err != nil {
		return p.wrap("delete user", err)
	}
	return nil
}

// UpdateDigest replaces the stored credential digest.
func (p *Postgres) UpdateDigest(ctx context.Context, id int64, digest string) error {
	if _, err := p.db.Exec(ctx, updateDigestQuery, digest, id); err != nil {
		return p.wrap("update digest", err)
	}
	return nil
}

// EmailInUse reports whether another user than excludeID holds the email.
func (p *Postgres) EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error) {
	var id int64
	err := p.db.QueryRow(ctx, emailInUseQuery, email, excludeID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, p.wrap("email in use", err)
	}
	return true, nil
}

func roleLabel(role *string) string {
	if role == nil || *role == "" {
		return entities.DefaultRoleLabel
	}
	return *role
}
