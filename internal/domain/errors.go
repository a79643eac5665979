package domain

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrTicketNotFound = errors.New("ticket not found")
)

var (
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	// ErrPartialWrite means the ticket record was written but the owning
	// event could not be updated to match it.
	ErrPartialWrite = errors.New("partial write: ticket and event views diverged")
)

var (
	ErrInvalidOperation = errors.New("invalid operation name")
)
