// Package entities contains core business entities.
package entities

import "time"

// Task is a denormalized task row: foreign references are accompanied by
// their display names so callers never see raw identifiers alone.
type Task struct {
	ID           int64
	Name         string
	Description  *string
	DueDate      time.Time
	ProjectID    int64
	ProjectName  string
	StatusID     int64
	StatusName   string
	PriorityID   int64
	PriorityName string
}

// NewTask carries the fields for task creation and update.
type NewTask struct {
	Name        string
	Description *string
	DueDate     time.Time
	ProjectID   int64
	StatusID    int64
	PriorityID  int64
}

// AssignedTask is the compact projection used for a user's assignment list.
type AssignedTask struct {
	ID           int64
	Name         string
	DueDate      time.Time
	ProjectName  string
	StatusName   string
	PriorityName string
}
