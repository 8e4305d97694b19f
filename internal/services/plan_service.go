package services

import (
	"context"

	"anontherapy/internal/models/db_models"
	"anontherapy/internal/models/request_models"
	"anontherapy/internal/models/response_models"
	"anontherapy/internal/repositories"
	"anontherapy/internal/scheduling"
	"anontherapy/pkg/utils"
)

type PlanServiceInterface interface {
	GetPlanByName(ctx context.Context, name string) (*response_models.PlanResponse, error)
	GetAllPlans(ctx context.Context) ([]response_models.PlanResponse, error)
	CreatePlan(ctx context.Context, request request_models.CreatePlanRequest) (*response_models.PlanResponse, error)
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{planRepo: planRepo}
}

func (p *PlanService) GetPlanByName(ctx context.Context, name string) (*response_models.PlanResponse, error) {
	canonical, err := scheduling.NormalizeTier(name)
	if err != nil {
		return nil, utils.ErrPlanNotFound
	}

	plan, err := p.planRepo.GetPlanByName(ctx, canonical)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return planToResponse(plan), nil
}

func (p *PlanService) GetAllPlans(ctx context.Context) ([]response_models.PlanResponse, error) {
	plans, err := p.planRepo.GetAllPlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.PlanResponse, 0, len(plans))
	for i := range plans {
		result = append(result, *planToResponse(&plans[i]))
	}
	return result, nil
}

// CreatePlan is an admin action. The therapy-type allow-list is derived from
// the tier name via the static catalog, never taken from the request.
func (p *PlanService) CreatePlan(ctx context.Context, request request_models.CreatePlanRequest) (*response_models.PlanResponse, error) {
	canonical, err := scheduling.NormalizeTier(request.Name)
	if err != nil {
		return nil, utils.NewValidationError("plan name must be Basic, Standard or Premium")
	}

	existing, err := p.planRepo.GetPlanByName(ctx, canonical)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrPlanAlreadyExists
	}

	plan := &db_models.Plan{
		Name:            db_models.PlanName(canonical),
		PriceMinor:      request.Price,
		Features:        request.Features,
		TherapyTypes:    scheduling.TherapyTypesFor(canonical),
		SessionsPerWeek: request.SessionsPerWeek,
		MaxSessions:     request.SessionsPerWeek * 4,
	}
	if err := p.planRepo.CreatePlan(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return planToResponse(plan), nil
}

func planToResponse(plan *db_models.Plan) *response_models.PlanResponse {
	return &response_models.PlanResponse{
		ID:              plan.ID.String(),
		Name:            string(plan.Name),
		Price:           plan.PriceMinor,
		Features:        plan.Features,
		TherapyTypes:    plan.TherapyTypes,
		SessionsPerWeek: plan.SessionsPerWeek,
		MaxSessions:     plan.MaxSessions,
	}
}
