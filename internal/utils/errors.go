package utils

import (
	"errors"
	"fmt"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrEmailExists        = errors.New("email_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrAccountNotFound    = errors.New("account_not_found")
	ErrAccountSuspended   = errors.New("account_suspended")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not_found")

	ErrInvalidDocument   = errors.New("invalid_document")
	ErrDuplicateDocument = errors.New("duplicate_document")
	ErrInvalidTransition = errors.New("invalid_transition")

	ErrNoActivePlan = errors.New("no_active_plan")
	ErrPlanNotFound = errors.New("plan_not_found")

	ErrNoPhotosProvided = errors.New("no_photos_provided")
)

// QuotaExceededError is returned when a new listing would push the account
// past its plan's max_listings. It carries the numeric limit so the caller
// can render it without a second round trip.
type QuotaExceededError struct {
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return "quota_exceeded"
}

// PhotoLimitError is the same idea for the plan's max_photos cap.
type PhotoLimitError struct {
	Limit int
}

func (e *PhotoLimitError) Error() string {
	return "photo_limit_exceeded"
}

// MissingFieldsError names the specific fields a creation payload lacked.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing_fields: %v", e.Fields)
}
