package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentSuccessful PaymentStatus = "successful"
	PaymentFailed     PaymentStatus = "failed"
	PaymentAbandoned  PaymentStatus = "abandoned"
)

type Payment struct {
	BaseModel
	Email          string    `gorm:"not null"`
	AmountMinor    int64     `gorm:"not null"`
	SubscriptionID uuid.UUID `gorm:"index"`
	UserID         uuid.UUID `gorm:"index"`

	// Gateway reference; idempotency key across verify calls and webhooks.
	Reference string        `gorm:"uniqueIndex"`
	Status    PaymentStatus `gorm:"size:16;default:pending;index"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
