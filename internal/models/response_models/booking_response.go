package response_models

type SessionResponse struct {
	ID            string `json:"id"`
	TherapistID   string `json:"therapistId"`
	TherapyType   string `json:"therapyType"`
	Date          string `json:"date"` // dd/mm/yyyy
	PreferredTime string `json:"preferredTime"`
	ScheduledTime string `json:"scheduledTime,omitempty"`
	Duration      int    `json:"duration"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
}

type BookingResponse struct {
	SubscriptionID string            `json:"subscriptionId"`
	TherapistName  string            `json:"therapistName"`
	Sessions       []SessionResponse `json:"sessions"`
}

type BookingDetailsResponse struct {
	SubscriptionID string            `json:"subscriptionId"`
	TherapyType    string            `json:"therapyType"`
	SessionDays    []string          `json:"sessionDays"`
	PreferredTime  string            `json:"preferredTime"`
	Sessions       []SessionResponse `json:"sessions"`
}

type AvailabilityResponse struct {
	TherapyType string `json:"therapyType"`
	PlanName    string `json:"planName"`
	Available   int    `json:"available"`
}
