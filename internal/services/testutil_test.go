package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"anontherapy/internal/infra"
	"anontherapy/internal/models/db_models"
	"anontherapy/internal/scheduling"
)

// newTestDB opens an isolated in-memory database with the production schema,
// partial unique indexes included.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory store.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, infra.Migrate(db))
	return db
}

func seedPlan(t *testing.T, db *gorm.DB, tier string, price int64) *db_models.Plan {
	t.Helper()
	policy, err := scheduling.PolicyFor(tier)
	require.NoError(t, err)

	plan := &db_models.Plan{
		Name:            db_models.PlanName(tier),
		PriceMinor:      price,
		Features:        pq.StringArray{"weekly sessions", "in-app messaging"},
		TherapyTypes:    pq.StringArray(scheduling.TherapyTypesFor(tier)),
		SessionsPerWeek: policy.SessionsPerWeek,
		MaxSessions:     policy.TotalSessions,
	}
	require.NoError(t, db.Create(plan).Error)
	return plan
}

func seedAccount(t *testing.T, db *gorm.DB, username, email string) *db_models.Account {
	t.Helper()
	account := &db_models.Account{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
		Gender:       "female",
		Role:         db_models.RoleClient,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func seedSubscription(t *testing.T, db *gorm.DB, userID, planID uuid.UUID, plan *db_models.Plan, active bool) *db_models.Subscription {
	t.Helper()
	status := db_models.SubStatusPending
	if active {
		status = db_models.SubStatusSubscribed
	}
	sub := &db_models.Subscription{
		UserID:          userID,
		PlanID:          planID,
		Status:          status,
		IsActive:        active,
		StartDate:       time.Now().Unix(),
		SessionsPerWeek: plan.SessionsPerWeek,
		MaxSessions:     plan.MaxSessions,
	}
	require.NoError(t, db.Create(sub).Error)
	return sub
}

func seedTherapist(t *testing.T, db *gorm.DB, firstName, specialization string, years, clients int) *db_models.Therapist {
	t.Helper()
	therapist := &db_models.Therapist{
		FirstName:         firstName,
		LastName:          "Okafor",
		Email:             firstName + "@clinic.test",
		PasswordHash:      "x",
		Gender:            "male",
		Specialization:    specialization,
		LicenseNo:         time.Now().UnixNano(),
		YearsOfExperience: years,
		Status:            db_models.TherapistActive,
		CurrentClients:    clients,
		MaxClients:        10,
	}
	require.NoError(t, db.Create(therapist).Error)
	return therapist
}

// recordingDeliverer captures live-delivery attempts.
type recordingDeliverer struct {
	delivered []uuid.UUID
	online    bool
}

func (r *recordingDeliverer) SendToUser(userID uuid.UUID, payload interface{}) bool {
	r.delivered = append(r.delivered, userID)
	return r.online
}
