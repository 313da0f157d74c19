package postgres

import (
	"context"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
)

const (
	selectStatusesQuery   = `SELECT id, name FROM statuses ORDER BY id`
	selectPrioritiesQuery = `SELECT id, name FROM priorities ORDER BY id`
	selectRolesQuery      = `SELECT id, name FROM roles ORDER BY id`
)

// ListStatuses returns the task status lookup set.
func (p *Postgres) ListStatuses(ctx context.Context) ([]entities.Lookup, error) {
	return p.listLookup(ctx, "list statuses", selectStatusesQuery)
}

// ListPriorities returns the task priority lookup set.
func (p *Postgres) ListPriorities(ctx context.Context) ([]entities.Lookup, error) {
	return p.listLookup(ctx, "list priorities", selectPrioritiesQuery)
}

// ListRoles returns the membership role lookup set.
func (p *Postgres) ListRoles(ctx context.Context) ([]entities.Lookup, error) {
	return p.listLookup(ctx, "list roles", selectRolesQuery)
}

func (p *Postgres) listLookup(ctx context.Context, op, query string) ([]entities.Lookup, error) {
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, p.wrap(op, err)
	}
	defer rows.Close()

	items := make([]entities.Lookup, 0)
	for rows.Next() {
		var l entities.Lookup
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, p.wrap(op, err)
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, p.wrap(op, err)
	}

	return items, nil
}
