package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"anontherapy/internal/models/db_models"
	"anontherapy/internal/models/request_models"
	"anontherapy/internal/repositories"
	"anontherapy/pkg/utils"
)

func newTherapistService(db *gorm.DB, deliverer *recordingDeliverer) TherapistServiceInterface {
	notifier := NewNotificationService(repositories.NewNotificationRepository(db), deliverer)
	return NewTherapistService(
		repositories.NewTherapistRepository(db),
		repositories.NewSessionRepository(db),
		repositories.NewAccountRepository(db),
		notifier, nil)
}

func seedSession(t *testing.T, db *gorm.DB, userID, therapistID uuid.UUID) *db_models.Session {
	t.Helper()
	session := &db_models.Session{
		UserID:         userID,
		SubscriptionID: uuid.New(),
		TherapistID:    therapistID,
		TherapyType:    "cognitive therapy",
		Date:           time.Now().AddDate(0, 0, 7).Unix(),
		PreferredTime:  db_models.TimeMorning,
		Duration:       30,
		Status:         db_models.SessionUpcoming,
	}
	require.NoError(t, db.Create(session).Error)
	return session
}

func TestRegisterTherapistNormalizesFields(t *testing.T) {
	db := newTestDB(t)
	svc := newTherapistService(db, &recordingDeliverer{})

	therapist, err := svc.Register(context.Background(), request_models.RegisterTherapistRequest{
		FirstName:         "Chidi",
		LastName:          "Okafor",
		Email:             "Chidi.Okafor@Clinic.Test",
		Password:          "sup3rs3cret",
		Gender:            "male",
		Specialization:    "  Cognitive Therapy ",
		YearsOfExperience: 7,
		LicenseNo:         88123,
	})
	require.NoError(t, err)

	assert.Equal(t, "chidi.okafor@clinic.test", therapist.Email)
	assert.Equal(t, "cognitive therapy", therapist.Specialization)
	assert.Equal(t, db_models.TherapistActive, therapist.Status)
	assert.NotEqual(t, "sup3rs3cret", therapist.PasswordHash)

	_, err = svc.Register(context.Background(), request_models.RegisterTherapistRequest{
		FirstName:         "Other",
		LastName:          "Person",
		Email:             "chidi.okafor@clinic.test",
		Password:          "sup3rs3cret",
		Gender:            "female",
		Specialization:    "art therapy",
		YearsOfExperience: 3,
		LicenseNo:         99456,
	})
	require.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestTherapistLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newTherapistService(db, &recordingDeliverer{})

	_, err := svc.Register(context.Background(), request_models.RegisterTherapistRequest{
		FirstName:         "Chidi",
		LastName:          "Okafor",
		Email:             "chidi@clinic.test",
		Password:          "sup3rs3cret",
		Gender:            "male",
		Specialization:    "cognitive therapy",
		YearsOfExperience: 7,
		LicenseNo:         88123,
	})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "CHIDI@clinic.test",
		Password: "sup3rs3cret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "chidi@clinic.test",
		Password: "wrong",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestAssignTimeToSession(t *testing.T) {
	db := newTestDB(t)
	account := seedAccount(t, db, "amara", "amara@example.test")
	therapist := seedTherapist(t, db, "chidi", "cognitive therapy", 7, 2)
	session := seedSession(t, db, account.ID, therapist.ID)

	deliverer := &recordingDeliverer{online: true}
	svc := newTherapistService(db, deliverer)

	require.NoError(t, svc.AssignTimeToSession(context.Background(), therapist.ID, session.ID, "10:30"))

	var after db_models.Session
	require.NoError(t, db.First(&after, "id = ?", session.ID).Error)
	require.NotNil(t, after.ScheduledTime)
	assert.Equal(t, "10:30", *after.ScheduledTime)

	// The client got a session-time notification.
	assert.Equal(t, []uuid.UUID{account.ID}, deliverer.delivered)
}

func TestAssignTimeRejectsBadClock(t *testing.T) {
	db := newTestDB(t)
	account := seedAccount(t, db, "amara", "amara@example.test")
	therapist := seedTherapist(t, db, "chidi", "cognitive therapy", 7, 2)
	session := seedSession(t, db, account.ID, therapist.ID)

	svc := newTherapistService(db, &recordingDeliverer{})
	for _, bad := range []string{"25:00", "9:5", "noonish", "12:60"} {
		err := svc.AssignTimeToSession(context.Background(), therapist.ID, session.ID, bad)
		var verr *utils.ValidationError
		require.ErrorAs(t, err, &verr, "input %q", bad)
	}
}

func TestAssignTimeWrongTherapist(t *testing.T) {
	db := newTestDB(t)
	account := seedAccount(t, db, "amara", "amara@example.test")
	owner := seedTherapist(t, db, "chidi", "cognitive therapy", 7, 2)
	intruder := seedTherapist(t, db, "ngozi", "cognitive therapy", 8, 1)
	session := seedSession(t, db, account.ID, owner.ID)

	svc := newTherapistService(db, &recordingDeliverer{})
	err := svc.AssignTimeToSession(context.Background(), intruder.ID, session.ID, "10:30")
	require.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestUpdateSessionStatus(t *testing.T) {
	db := newTestDB(t)
	account := seedAccount(t, db, "amara", "amara@example.test")
	therapist := seedTherapist(t, db, "chidi", "cognitive therapy", 7, 2)
	session := seedSession(t, db, account.ID, therapist.ID)

	svc := newTherapistService(db, &recordingDeliverer{})
	require.NoError(t, svc.UpdateSessionStatus(context.Background(), therapist.ID, session.ID, "completed", "good progress"))

	var after db_models.Session
	require.NoError(t, db.First(&after, "id = ?", session.ID).Error)
	assert.Equal(t, db_models.SessionCompleted, after.Status)
	assert.Equal(t, "good progress", after.Notes)

	err := svc.UpdateSessionStatus(context.Background(), therapist.ID, session.ID, "upcoming", "")
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestRescheduleSession(t *testing.T) {
	db := newTestDB(t)
	account := seedAccount(t, db, "amara", "amara@example.test")
	therapist := seedTherapist(t, db, "chidi", "cognitive therapy", 7, 2)
	session := seedSession(t, db, account.ID, therapist.ID)

	svc := newTherapistService(db, &recordingDeliverer{online: true})
	target := time.Now().UTC().AddDate(0, 0, 14)
	require.NoError(t, svc.RescheduleSession(context.Background(), therapist.ID, session.ID, request_models.RescheduleSessionRequest{
		NewDate: target.Format(time.RFC3339),
		NewTime: "14:00",
	}))

	var after db_models.Session
	require.NoError(t, db.First(&after, "id = ?", session.ID).Error)
	moved := time.Unix(after.Date, 0).UTC()
	assert.Equal(t, target.Day(), moved.Day())
	assert.Equal(t, 12, moved.Hour())

	// A date in the past is refused.
	err := svc.RescheduleSession(context.Background(), therapist.ID, session.ID, request_models.RescheduleSessionRequest{
		NewDate: time.Now().AddDate(0, 0, -1).Format(time.RFC3339),
	})
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCheckAvailability(t *testing.T) {
	db := newTestDB(t)
	seedTherapist(t, db, "chidi", "cognitive therapy", 7, 2)
	seedTherapist(t, db, "ngozi", "cognitive therapy", 9, 6)
	seedTherapist(t, db, "junior", "cognitive therapy", 2, 0) // below the Standard band

	svc := newTherapistService(db, &recordingDeliverer{})
	availability, err := svc.CheckAvailability(context.Background(), "Standard", "Cognitive Therapy")
	require.NoError(t, err)
	assert.Equal(t, 2, availability.Available)
	assert.Equal(t, "cognitive therapy", availability.TherapyType)
	assert.Equal(t, "Standard", availability.PlanName)

	_, err = svc.CheckAvailability(context.Background(), "Basic", "clinical psychology")
	require.ErrorIs(t, err, utils.ErrTherapyNotAllowed)

	_, err = svc.CheckAvailability(context.Background(), "Platinum", "cognitive therapy")
	require.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestListSessions(t *testing.T) {
	db := newTestDB(t)
	account := seedAccount(t, db, "amara", "amara@example.test")
	therapist := seedTherapist(t, db, "chidi", "cognitive therapy", 7, 2)
	other := seedTherapist(t, db, "ngozi", "art therapy", 3, 0)
	seedSession(t, db, account.ID, therapist.ID)
	seedSession(t, db, account.ID, therapist.ID)
	seedSession(t, db, account.ID, other.ID)

	svc := newTherapistService(db, &recordingDeliverer{})
	sessions, err := svc.ListSessions(context.Background(), therapist.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}
