package response_models

type PlanResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           int64    `json:"price"`
	Features        []string `json:"features"`
	TherapyTypes    []string `json:"therapyTypes"`
	SessionsPerWeek int      `json:"sessionsPerWeek"`
	MaxSessions     int      `json:"maxSessions"`
}
