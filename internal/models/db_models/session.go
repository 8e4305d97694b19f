package db_models

import (
	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionUpcoming    SessionStatus = "upcoming"
	SessionCompleted   SessionStatus = "completed"
	SessionCanceled    SessionStatus = "canceled"
	SessionNoShow      SessionStatus = "no-show"
	SessionRescheduled SessionStatus = "rescheduled"
)

// Session rows are created in bulk at booking time, one per generated date.
// They are never deleted; later actions only move Status.
type Session struct {
	BaseModel
	UserID         uuid.UUID `gorm:"index"`
	SubscriptionID uuid.UUID `gorm:"index"`
	TherapistID    uuid.UUID `gorm:"index"`

	TherapyType   string `gorm:"size:64"`
	Date          int64  `gorm:"not null;index"` // unix seconds, noon-anchored
	PreferredTime PreferredTime
	ScheduledTime *string `gorm:"size:5"` // "HH:MM", set later by the therapist
	Duration      int     `gorm:"default:30"`

	Status SessionStatus `gorm:"size:16;default:upcoming"`
	Notes  string
}
