// Package entities contains core business entities.
package entities

// Lookup is a row of a static lookup set (statuses, priorities, roles).
// Read-only from the service's perspective.
type Lookup struct {
	ID   int64
	Name string
}

// DefaultRoleLabel is rendered when a membership carries no role reference.
const DefaultRoleLabel = "Team Member"

// Defaults applied when a task is created without explicit references.
const (
	DefaultStatusID   int64 = 1
	DefaultPriorityID int64 = 3
)
