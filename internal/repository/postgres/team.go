package postgres

import (
	"context"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
)

const (
	selectRosterQuery = `
SELECT DISTINCT u.id, u.first_name, u.last_name, u.email, r.name
FROM users u
LEFT JOIN project_members pm ON u.id = pm.user_id
LEFT JOIN roles r ON pm.role_id = r.id`
	rosterOrder = ` ORDER BY u.first_name, u.last_name`
)

// ListTeam returns the team roster visible to the acting user: every user
// holding a membership in one of the acting user's visible projects. A nil
// acting user returns all users.
func (p *Postgres) ListTeam(ctx context.Context, actingUser *int64) ([]entities.TeamMember, error) {
	where, args := scopeRoster(actingUser)

	rows, err := p.db.Query(ctx, selectRosterQuery+where+rosterOrder, args...)
	if err != nil {
		return nil, p.wrap("list team", err)
	}
	defer rows.Close()

	members := make([]entities.TeamMember, 0)
	for rows.Next() {
		var m entities.TeamMember
		var role *string
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &role); err != nil {
			return nil, p.wrap("scan team", err)
		}
		m.Role = roleLabel(role)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, p.wrap("iterate team", err)
	}

	return members, nil
}
