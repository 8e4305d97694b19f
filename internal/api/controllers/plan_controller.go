package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anontherapy/internal/models/request_models"
	"anontherapy/internal/services"
	"anontherapy/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// GetAllPlans godoc
// @Summary List all subscription plans
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (p *PlanController) GetAllPlans(c *gin.Context) {
	plans, err := p.planService.GetAllPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "Plans retrieved successfully")
}

// GetPlanByName godoc
// @Summary Fetch a plan by tier name
// @Tags Plans
// @Produce json
// @Param name path string true "Plan name (Basic, Standard, Premium)"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plans/{name} [get]
func (p *PlanController) GetPlanByName(c *gin.Context) {
	plan, err := p.planService.GetPlanByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Plan retrieved successfully")
}

// CreatePlan godoc
// @Summary Create a subscription plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.CreatePlanRequest true "Plan payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /plans [post]
func (p *PlanController) CreatePlan(c *gin.Context) {
	var req request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.planService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, plan, "Plan created successfully")
}
