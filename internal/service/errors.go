package service

import "errors"

var (
	// ErrValidation is the base error for every input validation failure.
	// Specific failures wrap it with a field-level message, so callers can
	// match the whole family with errors.Is(err, ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrWrongCredentials is returned by Login both when the username does
	// not exist and when the password does not match. The two cases are
	// deliberately indistinguishable so usernames cannot be enumerated.
	ErrWrongCredentials = errors.New("wrong username or password")

	// ErrNotOwner is returned when a user tries to modify or delete a
	// program they do not own.
	ErrNotOwner = errors.New("program belongs to another user")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
