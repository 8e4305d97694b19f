package db_models

import (
	"github.com/google/uuid"
)

// BookingWaitlist records clients who could not be matched to a therapist.
// Entries are written only by the explicit waitlist transition, never by the
// booking transaction itself, and are not retried automatically.
type BookingWaitlist struct {
	BaseModel
	UserID         uuid.UUID `gorm:"index"`
	SubscriptionID uuid.UUID `gorm:"index"`
	TherapyType    string    `gorm:"size:64"`
}
