package errors

import (
	"errors"
	"fmt"
)

// Outcome is the coarse result of an assignment operation as reported to callers
type Outcome string

const (
	OutcomeSuccess      Outcome = "success"
	OutcomeAlreadyTaken Outcome = "already_taken"
	OutcomeOutOfWindow  Outcome = "out_of_window"
	OutcomeForbidden    Outcome = "forbidden"
	OutcomeNotEligible  Outcome = "not_eligible"
	OutcomeNoMembership Outcome = "no_membership"
	OutcomeNotFound     Outcome = "not_found"
	OutcomeError        Outcome = "error"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// BenignError is an expected result of concurrent use, such as losing a claim race.
// It is never logged as an error.
type BenignError struct {
	Outcome Outcome
	Message string
}

func (e *BenignError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for BenignError
func (e *BenignError) Is(target error) bool {
	t, ok := target.(*BenignError)
	if !ok {
		return false
	}
	return e.Outcome == t.Outcome
}

// Entity Not Found Errors
var (
	ErrCleaningNotFound        = &NotFoundError{Entity: "cleaning"}
	ErrPropertyNotFound        = &NotFoundError{Entity: "property"}
	ErrInventoryReviewNotFound = &NotFoundError{Entity: "inventory review"}
)

// Assignment outcomes that are a normal part of concurrent use
var (
	ErrAlreadyTaken = &BenignError{Outcome: OutcomeAlreadyTaken, Message: "cleaning has already been taken"}
	ErrOutOfWindow  = &BenignError{Outcome: OutcomeOutOfWindow, Message: "cleaning is outside the availability window"}
	ErrNotEligible  = &BenignError{Outcome: OutcomeNotEligible, Message: "cleaning is no longer eligible for this action"}
	ErrNoMembership = &BenignError{Outcome: OutcomeNoMembership, Message: "user has no team membership"}
)

// Authorization Errors
var (
	ErrForbidden             = &AuthorizationError{Message: "user has no team access to this cleaning"}
	ErrInactiveTeamForFuture = &AuthorizationError{Message: "future cleanings cannot be claimed through a paused team"}
)

// Authentication Errors
var (
	ErrUserIDNotFound = &AuthenticationError{Message: "user id not found in context"}
	ErrInvalidToken   = &AuthenticationError{Message: "invalid token"}
)

// Request Errors
var (
	ErrInvalidTimeRange = &ValidationError{Field: "to", Message: "must not be before from"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsBenign checks if an error is an expected outcome of concurrent use
func IsBenign(err error) bool {
	var benignErr *BenignError
	return errors.As(err, &benignErr)
}

// OutcomeOf maps an error returned by the assignment engine to its outcome
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}
	var benignErr *BenignError
	if errors.As(err, &benignErr) {
		return benignErr.Outcome
	}
	switch {
	case IsAuthorization(err):
		return OutcomeForbidden
	case IsNotFound(err):
		return OutcomeNotFound
	}
	return OutcomeError
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
