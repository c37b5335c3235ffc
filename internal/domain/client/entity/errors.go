package entity

import "errors"

// Domain errors for clients and objectives
var (
	ErrEmptyName           = errors.New("client name is required")
	ErrEmptyClientID       = errors.New("client ID is required")
	ErrEmptyObjectiveTitle = errors.New("objective title is required")
	ErrClientNotFound      = errors.New("client not found")
	ErrObjectiveNotFound   = errors.New("objective not found")
	ErrAssistUnavailable   = errors.New("generative assistance is not configured")
)
