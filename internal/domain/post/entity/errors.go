package entity

import "errors"

// Domain errors for planned posts
var (
	// Validation errors
	ErrMissingFields   = errors.New("post id, new date and actor id are required")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrInvalidFormat   = errors.New("invalid post format")
	ErrInvalidStatus   = errors.New("invalid post status")

	// Business rule errors
	ErrPastDate          = errors.New("posts cannot be scheduled in the past")
	ErrPostPublished     = errors.New("published posts cannot be rescheduled")
	ErrPostNotDeletable  = errors.New("only draft posts can be deleted")
	ErrInvalidTransition = errors.New("status transition not allowed")

	// Lookup errors
	ErrPostNotFound = errors.New("post not found")

	// Upstream errors
	ErrAssistUnavailable = errors.New("generative assistance is not configured")
)
