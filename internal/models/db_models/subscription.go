package db_models

import (
	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubStatusPending    SubscriptionStatus = "pending"
	SubStatusSubscribed SubscriptionStatus = "subscribed"
	SubStatusWaitlist   SubscriptionStatus = "waitlist"
	SubStatusCanceled   SubscriptionStatus = "canceled"
	SubStatusCompleted  SubscriptionStatus = "completed"
)

// Subscription is the client's current plan cycle. At most one row per user
// may have is_active = true; the partial unique index created during
// migration backs the application-level pre-check.
type Subscription struct {
	BaseModel
	UserID uuid.UUID `gorm:"index"`
	PlanID uuid.UUID `gorm:"index"`

	Status   SubscriptionStatus `gorm:"size:16;index"`
	IsActive bool

	StartDate int64  `gorm:"not null"`
	EndDate   *int64 // nil until the first session date is generated

	SessionsPerWeek int
	MaxSessions     int

	Plan Plan `gorm:"foreignKey:PlanID"`
}
