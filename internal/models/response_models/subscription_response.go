package response_models

type SubscriptionResponse struct {
	ID              string `json:"id"`
	PlanID          string `json:"planId"`
	Status          string `json:"status"`
	IsActive        bool   `json:"isActive"`
	StartDate       string `json:"startDate"` // dd/mm/yyyy
	EndDate         string `json:"endDate,omitempty"`
	SessionsPerWeek int    `json:"sessionsPerWeek"`
	MaxSessions     int    `json:"maxSessions"`
}
