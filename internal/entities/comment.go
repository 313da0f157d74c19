// Package entities contains core business entities.
package entities

import "time"

// Comment is an append-only task comment with join-derived author names.
type Comment struct {
	ID              int64
	TaskID          int64
	Text            string
	CreatedAt       time.Time
	AuthorFirstName string
	AuthorLastName  string
}

// NewComment carries the fields for comment creation.
type NewComment struct {
	TaskID   int64
	AuthorID int64
	Text     string
}
