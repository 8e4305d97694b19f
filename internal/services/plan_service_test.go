package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anontherapy/internal/models/request_models"
	"anontherapy/internal/repositories"
	"anontherapy/pkg/utils"
)

func TestCreatePlanDerivesCatalogFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlanService(repositories.NewPlanRepository(db))

	resp, err := svc.CreatePlan(context.Background(), request_models.CreatePlanRequest{
		Name:            "Premium",
		Price:           500000,
		Features:        []string{"four sessions weekly", "priority matching"},
		SessionsPerWeek: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, "Premium", resp.Name)
	assert.Equal(t, 16, resp.MaxSessions)
	// Therapy types come from the tier catalog, never the request.
	assert.Contains(t, resp.TherapyTypes, "trauma therapy")
	assert.Contains(t, resp.TherapyTypes, "cognitive therapy")
}

func TestCreatePlanDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	seedPlan(t, db, "Basic", 150000)
	svc := NewPlanService(repositories.NewPlanRepository(db))

	_, err := svc.CreatePlan(context.Background(), request_models.CreatePlanRequest{
		Name:            "Basic",
		Price:           100000,
		Features:        []string{"weekly session"},
		SessionsPerWeek: 1,
	})
	require.ErrorIs(t, err, utils.ErrPlanAlreadyExists)
}

func TestCreatePlanUnknownTier(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlanService(repositories.NewPlanRepository(db))

	_, err := svc.CreatePlan(context.Background(), request_models.CreatePlanRequest{
		Name:            "Platinum",
		Price:           900000,
		Features:        []string{"everything"},
		SessionsPerWeek: 7,
	})
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestGetPlanByNameCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	seedPlan(t, db, "Standard", 250000)
	svc := NewPlanService(repositories.NewPlanRepository(db))

	resp, err := svc.GetPlanByName(context.Background(), "sTANDARD")
	require.NoError(t, err)
	assert.Equal(t, "Standard", resp.Name)

	_, err = svc.GetPlanByName(context.Background(), "Premium")
	require.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestGetAllPlans(t *testing.T) {
	db := newTestDB(t)
	seedPlan(t, db, "Basic", 150000)
	seedPlan(t, db, "Standard", 250000)
	svc := NewPlanService(repositories.NewPlanRepository(db))

	plans, err := svc.GetAllPlans(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, 2)
}
