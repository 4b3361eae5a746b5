// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates failed authentication.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates an authenticated caller lacking the required role.
	ErrForbidden = errors.New("forbidden")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., username taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrValidation indicates malformed caller input.
	ErrValidation = errors.New("validation")

	// ErrInsufficientFunds indicates the account lacks energy for a purchase.
	ErrInsufficientFunds = errors.New("insufficient energy")

	// ErrLocked indicates a completed or past day that regeneration must not touch.
	ErrLocked = errors.New("day is locked")

	// ErrInvalidPlan indicates a generated plan that failed structural validation.
	ErrInvalidPlan = errors.New("invalid plan")

	// ErrGenerationFailed indicates the text model never produced a usable plan.
	ErrGenerationFailed = errors.New("generation failed")
)
