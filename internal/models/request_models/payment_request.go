package request_models

type InitializePaymentRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Amount         int64  `json:"amount" binding:"required,gt=0"` // minor units
	SubscriptionID string `json:"subscriptionId" binding:"required,uuid"`
}
