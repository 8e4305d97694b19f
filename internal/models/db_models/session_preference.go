package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PreferredTime string

const (
	TimeMorning   PreferredTime = "Morning"
	TimeAfternoon PreferredTime = "Afternoon"
	TimeEvening   PreferredTime = "Evening"
)

// SessionPreference is the client's one-time declaration of therapy type,
// weekdays and time-of-day for a subscription cycle. One per subscription;
// a partial unique index on subscription_id keeps a second booking attempt
// out even if two requests race past the existence check.
type SessionPreference struct {
	BaseModel
	UserID         uuid.UUID `gorm:"index"`
	SubscriptionID uuid.UUID `gorm:"index"`
	PlanID         uuid.UUID `gorm:"index"`

	TherapyType   string         `gorm:"size:64"` // stored lower-cased
	SessionDays   pq.StringArray `gorm:"type:text[]"`
	PreferredTime PreferredTime  `gorm:"size:16"`
}
