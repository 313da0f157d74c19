// Package entities contains core business entities.
package entities

// User is a domain representation of a registered user.
// Digest holds the stored one-way credential digest, never the plaintext.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Digest    string
}

// NewUser carries the fields for user creation. Digest is computed by the
// usecase layer before the record reaches the store.
type NewUser struct {
	FirstName string
	LastName  string
	Email     string
	Digest    string
}

// UserUpdate carries the mutable identity fields, replaced atomically.
type UserUpdate struct {
	FirstName string
	LastName  string
	Email     string
}

// TeamMember is the denormalized user row returned by user and roster
// listings: identity plus the membership role label.
type TeamMember struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Role      string
}

// Profile aggregates a user with participation counts.
type Profile struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	ProjectCount int64
	TaskCount    int64
}
