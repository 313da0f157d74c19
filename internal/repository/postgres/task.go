package postgres

import (
	"context"
	"errors"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectTasksQuery = `
SELECT DISTINCT t.id, t.name, t.description, t.due_date,
       t.project_id, COALESCE(p.name, ''),
       t.status_id, COALESCE(s.name, ''),
       t.priority_id, COALESCE(pr.name, '')
FROM tasks t
LEFT JOIN projects p ON t.project_id = p.id
LEFT JOIN statuses s ON t.status_id = s.id
LEFT JOIN priorities pr ON t.priority_id = pr.id`
	tasksOrder      = ` ORDER BY t.due_date ASC`
	selectTaskQuery = `
SELECT t.id, t.name, t.description, t.due_date,
       t.project_id, COALESCE(p.name, ''),
       t.status_id, COALESCE(s.name, ''),
       t.priority_id, COALESCE(pr.name, '')
FROM tasks t
LEFT JOIN projects p ON t.project_id = p.id
LEFT JOIN statuses s ON t.status_id = s.id
LEFT JOIN priorities pr ON t.priority_id = pr.id
WHERE t.id=$1`
	insertTaskQuery     = `INSERT INTO tasks(name, description, due_date, project_id, status_id, priority_id) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`
	updateTaskQuery     = `UPDATE tasks SET name=$1, description=$2, due_date=$3, project_id=$4, status_id=$5, priority_id=$6 WHERE id=$7`
	deleteTaskQuery     = `DELETE FROM tasks WHERE id=$1`
	insertAssigneeQuery = `INSERT INTO task_assignments(task_id, user_id) VALUES ($1,$2) RETURNING id`
	deleteAssigneeQuery = `DELETE FROM task_assignments WHERE task_id=$1 AND user_id=$2`
)

// ListTasks returns tasks visible to the acting user, earliest due date
// first. A nil acting user returns every task.
func (p *Postgres) ListTasks(ctx context.Context, actingUser *int64) ([]entities.Task, error) {
	join, where, args := scopeTasks(actingUser)

	rows, err := p.db.Query(ctx, selectTasksQuery+join+where+tasksOrder, args...)
	if err != nil {
		return nil, p.wrap("list tasks", err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		var t entities.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.DueDate,
			&t.ProjectID, &t.ProjectName,
			&t.StatusID, &t.StatusName,
			&t.PriorityID, &t.PriorityName); err != nil {
			return nil, p.wrap("scan tasks", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, p.wrap("iterate tasks", err)
	}

	return tasks, nil
}

// GetTask fetches a task with its display names by id.
func (p *Postgres) GetTask(ctx context.Context, id int64) (*entities.Task, error) {
	var t entities.Task
	err := p.db.QueryRow(ctx, selectTaskQuery, id).
		Scan(&t.ID, &t.Name, &t.Description, &t.DueDate,
			&t.ProjectID, &t.ProjectName,
			&t.StatusID, &t.StatusName,
			&t.PriorityID, &t.PriorityName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, p.wrap("get task", err)
	}
	return &t, nil
}

// CreateTask inserts a task and returns the generated id. The project
// reference must name an existing project.
func (p *Postgres) CreateTask(ctx context.Context, nt entities.NewTask) (int64, error) {
	var id int64
	err := p.db.QueryRow(ctx, insertTaskQuery,
		nt.Name, nt.Description, nt.DueDate, nt.ProjectID, nt.StatusID, nt.PriorityID).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, entities.ErrProjectNotFound
		}
		return 0, p.wrap("insert task", err)
	}

	p.log.Infow("task created", "task_id", id, "project_id", nt.ProjectID)
	return id, nil
}

// UpdateTask replaces all mutable fields.
func (p *Postgres) UpdateTask(ctx context.Context, id int64, nt entities.NewTask) error {
	_, err := p.db.Exec(ctx, updateTaskQuery,
		nt.Name, nt.Description, nt.DueDate, nt.ProjectID, nt.StatusID, nt.PriorityID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entities.ErrProjectNotFound
		}
		return p.wrap("update task", err)
	}
	return nil
}

// DeleteTask removes a task unconditionally; absent ids are a no-op.
func (p *Postgres) DeleteTask(ctx context.Context, id int64) error {
	if _, err := p.db.Exec(ctx, deleteTaskQuery, id); err != nil {
		return p.wrap("delete task", err)
	}
	return nil
}

// AssignTask inserts an assignment row and returns its id. Duplicate
// assignments are not deduplicated.
func (p *Postgres) AssignTask(ctx context.Context, taskID, userID int64) (int64, error) {
	var id int64
	err := p.db.QueryRow(ctx, insertAssigneeQuery, taskID, userID).Scan(&id)
	if err != nil {
		if c, ok := fkConstraint(err); ok {
			if c == "task_assignments_user_id_fkey" {
				return 0, entities.ErrUserNotFound
			}
			return 0, entities.ErrTaskNotFound
		}
		return 0, p.wrap("insert assignment", err)
	}

	p.log.Infow("task assigned", "task_id", taskID, "user_id", userID)
	return id, nil
}

// UnassignTask deletes all assignment rows for the pair; removing an absent
// assignment is a no-op success.
func (p *Postgres) UnassignTask(ctx context.Context, taskID, userID int64) error {
	if _, err := p.db.Exec(ctx, deleteAssigneeQuery, taskID, userID); err != nil {
		return p.wrap("remove assignment", err)
	}
	return nil
}
