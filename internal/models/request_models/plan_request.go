package request_models

type CreatePlanRequest struct {
	Name            string   `json:"name" binding:"required,oneof=Basic Standard Premium"`
	Price           int64    `json:"price" binding:"min=0"`
	Features        []string `json:"features" binding:"required,min=1"`
	SessionsPerWeek int      `json:"sessionsPerWeek" binding:"required,gt=0"`
}
