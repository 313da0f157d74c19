package postgres

import (
	"context"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
)

const (
	selectTaskCommentsQuery = `
SELECT c.id, c.task_id, c.text, c.created_at, u.first_name, u.last_name
FROM comments c
JOIN users u ON c.author_id = u.id
WHERE c.task_id=$1
ORDER BY c.created_at DESC`
	insertCommentQuery = `INSERT INTO comments(task_id, author_id, text) VALUES ($1,$2,$3) RETURNING id`
)

// ListTaskComments returns a task's comments, newest first, with author names.
func (p *Postgres) ListTaskComments(ctx context.Context, taskID int64) ([]entities.Comment, error) {
	rows, err := p.db.Query(ctx, selectTaskCommentsQuery, taskID)
	if err != nil {
		return nil, p.wrap("list comments", err)
	}
	defer rows.Close()

	comments := make([]entities.Comment, 0)
	for rows.Next() {
		var c entities.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.Text, &c.CreatedAt,
			&c.AuthorFirstName, &c.AuthorLastName); err != nil {
			return nil, p.wrap("scan comments", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, p.wrap("iterate comments", err)
	}

	return comments, nil
}

// CreateComment inserts a comment and returns the generated id. Comments
// are append-only; there is no update or delete.
func (p *Postgres) CreateComment(ctx context.Context, c entities.NewComment) (int64, error) {
	var id int64
	err := p.db.QueryRow(ctx, insertCommentQuery, c.TaskID, c.AuthorID, c.Text).Scan(&id)
	if err != nil {
		if fk, ok := fkConstraint(err); ok {
			if fk == "comments_author_id_fkey" {
				return 0, entities.ErrUserNotFound
			}
			return 0, entities.ErrTaskNotFound
		}
		return 0, p.wrap("insert comment", err)
	}

	p.log.Infow("comment created", "comment_id", id, "task_id", c.TaskID)
	return id, nil
}
