// Package entities contains core business entities.
package entities

import "time"

// Project is a domain model of a project. ManagerID is nil when no manager
// is set; manager names are join-derived and empty in that case.
type Project struct {
	ID               int64
	Name             string
	StartDate        time.Time
	EndDate          *time.Time
	Budget           *float64
	ManagerID        *int64
	ManagerFirstName string
	ManagerLastName  string
}

// NewProject carries the fields for project creation and update.
type NewProject struct {
	Name      string
	StartDate time.Time
	EndDate   *time.Time
	Budget    *float64
	ManagerID *int64
}

// MemberProject is the projection of a project from the membership side,
// carrying the member's role label.
type MemberProject struct {
	ID        int64
	Name      string
	StartDate time.Time
	EndDate   *time.Time
	Role      string
}
