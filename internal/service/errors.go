package service

import "errors"

var (
	// ErrNoRoutine means the user has no routine rows at all. Callers must
	// distinguish this from a routine that yields zero proposals.
	ErrNoRoutine = errors.New("no routine data found for this user")

	// ErrNotFound means no pending adjustment exists with the given id.
	ErrNotFound = errors.New("no habit adjustment found for this id")

	// ErrInvalidStatus means a resolution status other than accepted or
	// rejected was supplied.
	ErrInvalidStatus = errors.New("invalid status, must be 'accepted' or 'rejected'")
)
