package request_models

import "encoding/json"

// SessionDays stays raw here: Basic submits a bare weekday string while
// Standard/Premium submit a list, and the scheduling layer owns telling
// those apart.
type CreateBookingRequest struct {
	PlanName      string          `json:"planName" binding:"required"`
	TherapyType   string          `json:"therapyType" binding:"required"`
	SessionDays   json.RawMessage `json:"sessionDays" binding:"required"`
	PreferredTime string          `json:"preferredTime" binding:"required,oneof=Morning Afternoon Evening"`
}
