package postgres

// Visibility scoping. Read queries over projects, tasks and the team roster
// take an optional acting-user id; when it is present the result set is
// restricted to rows that user manages, is assigned to, or is a member of.
// A nil acting user means the unrestricted administrator view.
//
// The functions below are pure: they produce the join and predicate
// fragments for a given acting user and never touch the store. Queries that
// embed them use SELECT DISTINCT, so a row matching through several
// disjuncts (e.g. a manager who is also a member) appears once.

// scopeProjects returns the membership join and the predicate limiting
// projects to those the acting user manages or holds a membership in.
// The manager clause stands on its own: a manager who never joined the
// membership table still sees their project.
func scopeProjects(actingUser *int64) (join, where string, args []any) {
	if actingUser == nil {
		return "", "", nil
	}
	join = " LEFT JOIN project_members pm ON p.id = pm.project_id"
	where = " WHERE p.manager_id = $1 OR pm.user_id = $1"
	return join, where, []any{*actingUser}
}

// scopeTasks returns the joins and predicate limiting tasks to those the
// acting user is assigned to, belongs to the project of, or manages the
// project of.
func scopeTasks(actingUser *int64) (join, where string, args []any) {
	if actingUser == nil {
		return "", "", nil
	}
	join = " LEFT JOIN task_assignments ta ON t.id = ta.task_id" +
		" LEFT JOIN project_members pm ON t.project_id = pm.project_id"
	where = " WHERE ta.user_id = $1 OR pm.user_id = $1 OR p.manager_id = $1"
	return join, where, []any{*actingUser}
}

// scopeRoster returns the predicate limiting the roster to users holding at
// least one membership in a project visible to the acting user, i.e. the
// membership closure over the project scope above.
func scopeRoster(actingUser *int64) (where string, args []any) {
	if actingUser == nil {
		return "", nil
	}
	where = ` WHERE pm.project_id IN (
		SELECT DISTINCT p.id
		FROM projects p
		LEFT JOIN project_members pm2 ON p.id = pm2.project_id
		WHERE p.manager_id = $1 OR pm2.user_id = $1
	)`
	return where, []any{*actingUser}
}
