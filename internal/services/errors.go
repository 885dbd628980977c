// Package services defines the business logic for registration and the
// daily word pair lifecycle. This file centralizes common service-level
// error values so that they can be consistently returned by service methods
// and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import "errors"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmptyName is returned when a registration request is missing the
	// first or last name.
	ErrEmptyName = errors.New("first and last name are required")

	// ErrEmptyBirthPlace is returned when a registration request is missing
	// the birth place.
	ErrEmptyBirthPlace = errors.New("birth place is required")

	// ErrInvalidBirthDate is returned when a registration request carries a
	// birth date that cannot be parsed or lies in the future.
	ErrInvalidBirthDate = errors.New("invalid birth date")

	// ErrNoPool indicates that a user's stored cornerstone pool is empty or
	// unreadable, so no daily words can be composed for them.
	ErrNoPool = errors.New("cornerstone pool is missing")
)
