package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrConstraintViolation is returned when a write would break a uniqueness invariant
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrAlreadyClaimed is returned when a trial mint is granted to a user who already claimed one
	ErrAlreadyClaimed = errors.New("trial mint already claimed")

	// ErrExternalService is returned when the minting service or a metadata locator fails
	ErrExternalService = errors.New("external service failure")
)
