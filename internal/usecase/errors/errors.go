package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// Meeting errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
)

// Action item errors
var (
	ErrActionItemNotFound = errors.New("action item not found")
	ErrInvalidStatus      = errors.New("invalid action item status")
	ErrInvalidDueDate     = errors.New("invalid due date")
)

// AI errors
var (
	ErrEmptyQuery = errors.New("query required")
)
