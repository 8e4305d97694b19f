package request_models

type CreateSubscriptionRequest struct {
	PlanName string `json:"planName" binding:"required"`
}

type WaitlistRequest struct {
	TherapyType string `json:"therapyType" binding:"required"`
}
