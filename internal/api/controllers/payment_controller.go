package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anontherapy/internal/models/request_models"
	"anontherapy/internal/services"
	"anontherapy/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// Initialize godoc
// @Summary Start a checkout for a pending subscription
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.InitializePaymentRequest true "Payment payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /payments/initialize [post]
func (p *PaymentController) Initialize(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.InitializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.paymentService.InitializePayment(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Payment initialized")
}

// Confirm godoc
// @Summary Verify a payment reference and activate the subscription
// @Tags Payments
// @Produce json
// @Param reference path string true "Gateway payment reference"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /payments/{reference}/confirm [post]
func (p *PaymentController) Confirm(c *gin.Context) {
	reference := c.Param("reference")
	if reference == "" {
		utils.RespondError(c, http.StatusBadRequest, "reference is required")
		return
	}

	status, err := p.paymentService.ConfirmPayment(c.Request.Context(), reference)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"reference": reference, "status": status}, "Payment verified")
}

// History godoc
// @Summary List the caller's payments
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /payments [get]
func (p *PaymentController) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	history, err := p.paymentService.PaymentHistory(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, history, "Payment history retrieved")
}
