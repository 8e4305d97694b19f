package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationType string

const (
	NotifyTherapistAssigned NotificationType = "therapist_assigned"
	NotifySessionBooking    NotificationType = "session_booking"
	NotifySessionTimeSet    NotificationType = "session_time_set"
	NotifySessionReminder   NotificationType = "session_reminder"
	NotifyInfo              NotificationType = "info"
)

// Notification is persisted before any live-delivery attempt so the user
// sees it even if they were offline when it fired.
type Notification struct {
	BaseModel
	UserID  uuid.UUID        `gorm:"index"`
	Type    NotificationType `gorm:"size:32"`
	Title   string
	Message string
	Data    datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Read    bool           `gorm:"default:false;index"`
}
