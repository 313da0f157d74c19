package postgres

import (
	"context"
	"errors"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectProfileQuery = `
SELECT u.id, u.first_name, u.last_name, u.email,
       COUNT(DISTINCT pm.project_id), COUNT(DISTINCT ta.task_id)
FROM users u
LEFT JOIN project_members pm ON u.id = pm.user_id
LEFT JOIN task_assignments ta ON u.id = ta.user_id
WHERE u.id=$1
GROUP BY u.id, u.first_name, u.last_name, u.email`
	selectAssignedTasksQuery = `
SELECT t.id, t.name, t.due_date, p.name, s.name, pr.name
FROM task_assignments ta
JOIN tasks t ON ta.task_id = t.id
JOIN projects p ON t.project_id = p.id
JOIN statuses s ON t.status_id = s.id
JOIN priorities pr ON t.priority_id = pr.id
WHERE ta.user_id=$1
ORDER BY t.due_date ASC`
	selectMemberProjectsQuery = `
SELECT p.id, p.name, p.start_date, p.end_date, r.name
FROM project_members pm
JOIN projects p ON pm.project_id = p.id
LEFT JOIN roles r ON pm.role_id = r.id
WHERE pm.user_id=$1
ORDER BY p.start_date DESC`
)

// GetProfile returns the user with distinct project and task participation
// counts; both default to zero when no join rows exist.
func (p *Postgres) GetProfile(ctx context.Context, userID int64) (*entities.Profile, error) {
	var pr entities.Profile
	err := p.db.QueryRow(ctx, selectProfileQuery, userID).
		Scan(&pr.ID, &pr.FirstName, &pr.LastName, &pr.Email, &pr.ProjectCount, &pr.TaskCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, p.wrap("get profile", err)
	}
	return &pr, nil
}

// ListAssignedTasks returns the tasks the user is assigned to, earliest due
// date first.
func (p *Postgres) ListAssignedTasks(ctx context.Context, userID int64) ([]entities.AssignedTask, error) {
	rows, err := p.db.Query(ctx, selectAssignedTasksQuery, userID)
	if err != nil {
		return nil, p.wrap("list assigned tasks", err)
	}
	defer rows.Close()

	tasks := make([]entities.AssignedTask, 0)
	for rows.Next() {
		var t entities.AssignedTask
		if err := rows.Scan(&t.ID, &t.Name, &t.DueDate,
			&t.ProjectName, &t.StatusName, &t.PriorityName); err != nil {
			return nil, p.wrap("scan assigned tasks", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, p.wrap("iterate assigned tasks", err)
	}

	return tasks, nil
}

// ListMemberProjects returns the projects the user holds a membership in,
// newest start date first, with role labels.
func (p *Postgres) ListMemberProjects(ctx context.Context, userID int64) ([]entities.MemberProject, error) {
	rows, err := p.db.Query(ctx, selectMemberProjectsQuery, userID)
	if err != nil {
		return nil, p.wrap("list member projects", err)
	}
	defer rows.Close()

	projects := make([]entities.MemberProject, 0)
	for rows.Next() {
		var mp entities.MemberProject
		var role *string
		if err := rows.Scan(&mp.ID, &mp.Name, &mp.StartDate, &mp.EndDate, &role); err != nil {
			return nil, p.wrap("scan member projects", err)
		}
		mp.Role = roleLabel(role)
		projects = append(projects, mp)
	}
	if err := rows.Err(); err != nil {
		return nil, p.wrap("iterate member projects", err)
	}

	return projects, nil
}
