package errs

import "errors"

// Domain-specific sentinel errors for the lead/credit usecase layers
var (
	// Lead errors
	ErrLeadNotFound      = errors.New("lead not found")
	ErrNotAssigned       = errors.New("lead not assigned to business")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotRevealed       = errors.New("lead contact not revealed")

	// Credit errors
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInvalidAmount       = errors.New("invalid credit amount")
	ErrInvalidReason       = errors.New("invalid grant reason")
	ErrBalanceNotFound     = errors.New("credit balance not found")

	// Intake errors
	ErrNoCandidates = errors.New("no candidate businesses for quote")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
