// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrProjectNotFound is returned when a project does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTaskNotFound is returned when a task does not exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrEmailExists signals an email uniqueness conflict.
	ErrEmailExists = errors.New("email already in use")
	// ErrWrongCredential signals a credential digest mismatch.
	ErrWrongCredential = errors.New("wrong credential")
	// ErrStoreUnavailable signals that no working store connection could be obtained.
	ErrStoreUnavailable = errors.New("store unavailable")
)
