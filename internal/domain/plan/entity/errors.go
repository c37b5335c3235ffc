package entity

import "errors"

// Domain errors for plans
var (
	ErrEmptyClientID = errors.New("client ID is required")
	ErrEmptyTitle    = errors.New("plan title is required")
	ErrInvalidMonth  = errors.New("month of record is required")
	ErrPlanNotFound  = errors.New("plan not found")
)
