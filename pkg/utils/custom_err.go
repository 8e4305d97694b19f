package utils

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrAccountNotFound       = errors.New("account not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrPlanNotFound          = errors.New("plan not found")
	ErrPlanAlreadyExists     = errors.New("plan already exists")
	ErrSubscriptionNotFound  = errors.New("no active subscription found")
	ErrAlreadySubscribed     = errors.New("an active subscription already exists")
	ErrSubscriptionInactive  = errors.New("subscription is not active")
	ErrPreferenceExists      = errors.New("you already have a session preference for this subscription")
	ErrPreferenceNotFound    = errors.New("no session preference found for your subscription")
	ErrTherapyNotAllowed     = errors.New("selected therapy is not allowed for this plan")
	ErrNoTherapistAvailable  = errors.New("no therapist available for the selected therapy")
	ErrSessionNotFound       = errors.New("session not found")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrPaymentAlreadyHandled = errors.New("payment reference already processed")
	ErrDatabaseError         = errors.New("database error")
)

// ValidationError carries a user-facing message for malformed booking input
// (wrong day count for a tier, weekend day, missing field). It maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
