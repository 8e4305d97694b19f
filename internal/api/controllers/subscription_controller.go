package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anontherapy/internal/models/request_models"
	"anontherapy/internal/services"
	"anontherapy/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// Subscribe godoc
// @Summary Subscribe to a plan
// @Description Opens a subscription cycle. Paid tiers stay pending until payment is confirmed.
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.CreateSubscriptionRequest true "Subscription payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /subscriptions [post]
func (s *SubscriptionController) Subscribe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sub, err := s.subscriptionService.CreateSubscription(c.Request.Context(), userID, req.PlanName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, sub, "Subscription created successfully")
}

// GetActive godoc
// @Summary Fetch the caller's active subscription
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /subscriptions/active [get]
func (s *SubscriptionController) GetActive(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sub, err := s.subscriptionService.GetActiveSubscription(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sub, "Subscription retrieved successfully")
}

// History godoc
// @Summary List every subscription cycle for the caller
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /subscriptions [get]
func (s *SubscriptionController) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	subs, err := s.subscriptionService.ListSubscriptions(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, subs, "Subscriptions retrieved successfully")
}

// Cancel godoc
// @Summary Cancel the caller's active subscription
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /subscriptions/active [delete]
func (s *SubscriptionController) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := s.subscriptionService.CancelSubscription(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Subscription canceled")
}

// Waitlist godoc
// @Summary Move a subscription to the waitlist
// @Description Used when no therapist could be matched for the requested therapy type.
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription id"
// @Param request body request_models.WaitlistRequest true "Waitlist payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /subscriptions/{id}/waitlist [post]
func (s *SubscriptionController) Waitlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	subscriptionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.WaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := s.subscriptionService.MoveToWaitlist(c.Request.Context(), userID, subscriptionID, req.TherapyType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Moved to waitlist")
}
