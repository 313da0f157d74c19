package postgres

import (
	"context"
	"errors"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectProjectsQuery = `
SELECT DISTINCT p.id, p.name, p.start_date, p.end_date, p.budget, p.manager_id,
       COALESCE(u.first_name, ''), COALESCE(u.last_name, '')
FROM projects p
LEFT JOIN users u ON p.manager_id = u.id`
	projectsOrder      = ` ORDER BY p.start_date DESC`
	selectProjectQuery = `
SELECT p.id, p.name, p.start_date, p.end_date, p.budget, p.manager_id,
       COALESCE(u.first_name, ''), COALESCE(u.last_name, '')
FROM projects p
LEFT JOIN users u ON p.manager_id = u.id
WHERE p.id=$1`
	insertProjectQuery = `INSERT INTO projects(name, start_date, end_date, budget, manager_id) VALUES ($1,$2,$3,$4,$5) RETURNING id`
	updateProjectQuery = `UPDATE projects SET name=$1, start_date=$2, end_date=$3, budget=$4, manager_id=$5 WHERE id=$6`
	deleteProjectQuery = `DELETE FROM projects WHERE id=$1`
	insertMemberQuery  = `INSERT INTO project_members(project_id, user_id, role_id) VALUES ($1,$2,$3) RETURNING id`
	deleteMemberQuery  = `DELETE FROM project_members WHERE project_id=$1 AND user_id=$2`
)

// ListProjects returns projects visible to the acting user, newest start
// date first. A nil acting user returns every project.
func (p *Postgres) ListProjects(ctx context.Context, actingUser *int64) ([]entities.Project, error) {
	join, where, args := scopeProjects(actingUser)

	rows, err := p.db.Query(ctx, selectProjectsQuery+join+where+projectsOrder, args...)
	if err != nil {
		return nil, p.wrap("list projects", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		var pr entities.Project
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.StartDate, &pr.EndDate, &pr.Budget,
			&pr.ManagerID, &pr.ManagerFirstName, &pr.ManagerLastName); err != nil {
			return nil, p.wrap("scan projects", err)
		}
		projects = append(projects, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, p.wrap("iterate projects", err)
	}

	return projects, nil
}

// GetProject fetches a project with manager names by id.
func (p *Postgres) GetProject(ctx context.Context, id int64) (*entities.Project, error) {
	var pr entities.Project
	err := p.db.QueryRow(ctx, selectProjectQuery, id).
		Scan(&pr.ID, &pr.Name, &pr.StartDate, &pr.EndDate, &pr.Budget,
			&pr.ManagerID, &pr.ManagerFirstName, &pr.ManagerLastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, p.wrap("get project", err)
	}
	return &pr, nil
}

// CreateProject inserts a project and returns the generated id.
func (p *Postgres) CreateProject(ctx context.Context, np entities.NewProject) (int64, error) {
	var id int64
	err := p.db.QueryRow(ctx, insertProjectQuery,
		np.Name, np.StartDate, np.EndDate, np.Budget, np.ManagerID).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, entities.ErrUserNotFound
		}
		return 0, p.wrap("insert project", err)
	}

	p.log.Infow("project created", "project_id", id)
	return id, nil
}

// UpdateProject replaces all mutable fields.
func (p *Postgres) UpdateProject(ctx context.Context, id int64, np entities.NewProject) error {
	_, err := p.db.Exec(ctx, updateProjectQuery,
		np.Name, np.StartDate, np.EndDate, np.Budget, np.ManagerID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entities.ErrUserNotFound
		}
		return p.wrap("update project", err)
	}
	return nil
}

// DeleteProject removes a project unconditionally; absent ids are a no-op.
func (p *Postgres) DeleteProject(ctx context.Context, id int64) error {
	if _, err := p.db.Exec(ctx, deleteProjectQuery, id); err != nil {
		return p.wrap("delete project", err)
	}
	return nil
}

// AddProjectMember inserts a membership row and returns its id. Duplicate
// memberships are not deduplicated; callers may insert the same pair twice.
func (p *Postgres) AddProjectMember(ctx context.Context, projectID, userID int64, roleID *int64) (int64, error) {
	var id int64
	err := p.db.QueryRow(ctx, insertMemberQuery, projectID, userID, roleID).Scan(&id)
	if err != nil {
		if c, ok := fkConstraint(err); ok {
			if c == "project_members_user_id_fkey" {
				return 0, entities.ErrUserNotFound
			}
			return 0, entities.ErrProjectNotFound
		}
		return 0, p.wrap("insert member", err)
	}

	p.log.Infow("member added", "project_id", projectID, "user_id", userID)
	return id, nil
}

// RemoveProjectMember deletes all membership rows for the pair; removing a
// non-member is a no-op success.
func (p *Postgres) RemoveProjectMember(ctx context.Context, projectID, userID int64) error {
	if _, err := p.db.Exec(ctx, deleteMemberQuery, projectID, userID); err != nil {
		return p.wrap("remove member", err)
	}
	return nil
}
