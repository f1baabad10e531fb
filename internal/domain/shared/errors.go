// Package shared contains common domain types, errors, and value objects
// that are used across all domain packages. This package has zero external
// dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
	ErrInvalidEntity = errors.New("invalid entity")

	// Validation errors
	ErrValidation    = errors.New("validation error")
	ErrInvalidID     = errors.New("invalid ID")
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmptyValue    = errors.New("value cannot be empty")
	ErrInvalidFormat = errors.New("invalid format")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Concurrency errors
	ErrConflict               = errors.New("conflict")
	ErrConcurrentModification = errors.New("concurrent modification detected")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "team", "problem", "progress"
	Op      string // Operation that failed, e.g., "Create", "Reorder"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Team domain errors
var (
	ErrTeamNotFound      = NewDomainError("team", "Find", ErrNotFound, "team not found")
	ErrMemberNotFound    = NewDomainError("team", "FindMember", ErrNotFound, "member not found in team")
	ErrUsernameTaken     = NewDomainError("team", "AddMember", ErrAlreadyExists, "username already taken in this team")
	ErrInvalidTeamID     = NewDomainError("team", "Validate", ErrInvalidID, "invalid team ID")
	ErrInvalidUsername   = NewDomainError("team", "Validate", ErrInvalidInput, "invalid username")
	ErrEmptyTeamName     = NewDomainError("team", "Rename", ErrEmptyValue, "team name cannot be empty")
	ErrInvalidCredential = NewDomainError("team", "Login", ErrUnauthorized, "invalid credentials")
)

// Problem domain errors
var (
	ErrProblemNotFound  = NewDomainError("problem", "Find", ErrNotFound, "problem not found")
	ErrInvalidDirection = NewDomainError("problem", "Reorder", ErrInvalidInput, "direction must be up or down")
	ErrProblemRequired  = NewDomainError("problem", "Create", ErrEmptyValue, "name, link, and sheet are required")
)

// Progress domain errors
var (
	ErrProgressNotFound = NewDomainError("progress", "Find", ErrNotFound, "progress record not found")
	ErrInvalidStatus    = NewDomainError("progress", "Validate", ErrInvalidInput, "invalid progress status")
)

// Sheet domain errors
var (
	ErrSheetNotFound  = NewDomainError("sheet", "Find", ErrNotFound, "sheet not found")
	ErrEmptySheetName = NewDomainError("sheet", "Validate", ErrEmptyValue, "sheet name required")
)

// Contest domain errors
var (
	ErrContestNotFound = NewDomainError("contest", "Find", ErrNotFound, "contest not found")
	ErrContestRequired = NewDomainError("contest", "Create", ErrEmptyValue, "contest name and date required")
)

// Topic domain errors
var (
	ErrTopicNotFound       = NewDomainError("topic", "Find", ErrNotFound, "topic not found")
	ErrEmptyTopicName      = NewDomainError("topic", "Validate", ErrEmptyValue, "topic name is required")
	ErrInvalidTopicStatus  = NewDomainError("topic", "Validate", ErrInvalidInput, "invalid topic status")
	ErrInvalidTopicLevel  = NewDomainError("topic", "Validate", ErrInvalidInput, "invalid topic priority")
)

// Session errors
var (
	ErrSessionNotFound = NewDomainError("session", "Find", ErrUnauthorized, "session not found or expired")
	ErrTokenRequired   = NewDomainError("session", "Authenticate", ErrUnauthorized, "token required")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if the error is an "already exists" error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrInvalidFormat)
}

// IsUnauthorized checks if the error is an authorization error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}

// IsConflict checks if the error is a concurrency conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrConcurrentModification)
}
