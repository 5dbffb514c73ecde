package services

import "errors"

// The error kinds handlers are expected to branch on. Anything else
// coming out of a service is a storage failure and maps to a 500.
var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrNotFound            = errors.New("not found")
	ErrUnknownPlan         = errors.New("unknown plan")
)
