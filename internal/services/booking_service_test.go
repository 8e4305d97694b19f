package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"anontherapy/internal/models/db_models"
	"anontherapy/internal/models/request_models"
	"anontherapy/internal/repositories"
	"anontherapy/internal/scheduling"
	"anontherapy/pkg/utils"
)

// Wednesday morning, well before noon, so "today" weekdays still count.
var bookingClock = time.Date(2026, 9, 2, 9, 30, 0, 0, time.UTC)

func newBookingService(t *testing.T, db *gorm.DB) (BookingServiceInterface, *recordingDeliverer) {
	t.Helper()
	deliverer := &recordingDeliverer{online: true}
	notifier := NewNotificationService(repositories.NewNotificationRepository(db), deliverer)
	generator := scheduling.NewGenerator(func() time.Time { return bookingClock })
	return NewBookingService(db, generator, repositories.NewPreferenceRepository(db), notifier, nil), deliverer
}

func standardBookingRequest() request_models.CreateBookingRequest {
	return request_models.CreateBookingRequest{
		PlanName:      "Standard",
		TherapyType:   "Cognitive Therapy",
		SessionDays:   json.RawMessage(`["Monday","Thursday"]`),
		PreferredTime: "Morning",
	}
}

func TestCreateBookingStandardPlan(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db, "Standard", 250000)
	account := seedAccount(t, db, "amara", "amara@example.test")
	sub := seedSubscription(t, db, account.ID, plan.ID, plan, true)
	therapist := seedTherapist(t, db, "chidi", "cognitive therapy", 7, 2)

	svc, deliverer := newBookingService(t, db)
	resp, err := svc.CreateBooking(context.Background(), account.ID, standardBookingRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, sub.ID.String(), resp.SubscriptionID)
	assert.Equal(t, "chidi Okafor", resp.TherapistName)
	require.Len(t, resp.Sessions, 8)

	// Every persisted session falls on a preferred weekday, in the future,
	// anchored at noon.
	var stored []db_models.Session
	require.NoError(t, db.Order("date ASC").Find(&stored).Error)
	require.Len(t, stored, 8)
	for _, s := range stored {
		at := time.Unix(s.Date, 0).UTC()
		assert.Contains(t, []time.Weekday{time.Monday, time.Thursday}, at.Weekday())
		assert.Equal(t, 12, at.Hour())
		assert.True(t, at.After(bookingClock))
		assert.Equal(t, therapist.ID, s.TherapistID)
		assert.Equal(t, "cognitive therapy", s.TherapyType)
		assert.Equal(t, 30, s.Duration)
		assert.Equal(t, db_models.SessionUpcoming, s.Status)
	}
	// Thursday Sep 3 comes before the first Monday.
	first := time.Unix(stored[0].Date, 0).UTC()
	assert.Equal(t, time.Date(2026, 9, 3, 12, 0, 0, 0, time.UTC), first)

	// Preference stored once, therapy type lower-cased, days canonical.
	var prefs []db_models.SessionPreference
	require.NoError(t, db.Find(&prefs).Error)
	require.Len(t, prefs, 1)
	assert.Equal(t, "cognitive therapy", prefs[0].TherapyType)
	assert.ElementsMatch(t, []string{"Monday", "Thursday"}, []string(prefs[0].SessionDays))

	// Therapist load went up by exactly one.
	var after db_models.Therapist
	require.NoError(t, db.First(&after, "id = ?", therapist.ID).Error)
	assert.Equal(t, 3, after.CurrentClients)

	// End date is the first session plus 28 days.
	var subAfter db_models.Subscription
	require.NoError(t, db.First(&subAfter, "id = ?", sub.ID).Error)
	require.NotNil(t, subAfter.EndDate)
	assert.Equal(t, first.AddDate(0, 0, 28).Unix(), *subAfter.EndDate)

	// Client and therapist were both notified.
	assert.Len(t, deliverer.delivered, 2)
}

func TestCreateBookingNoTherapistRollsBack(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db, "Standard", 250000)
	account := seedAccount(t, db, "amara", "amara@example.test")
	seedSubscription(t, db, account.ID, plan.ID, plan, true)
	// Wrong specialization, so nobody matches.
	seedTherapist(t, db, "chidi", "art therapy", 7, 2)

	svc, _ := newBookingService(t, db)
	_, err := svc.CreateBooking(context.Background(), account.ID, standardBookingRequest())
	require.ErrorIs(t, err, utils.ErrNoTherapistAvailable)

	// Nothing survives the rollback.
	var prefCount, sessionCount int64
	require.NoError(t, db.Model(&db_models.SessionPreference{}).Count(&prefCount).Error)
	require.NoError(t, db.Model(&db_models.Session{}).Count(&sessionCount).Error)
	assert.Zero(t, prefCount)
	assert.Zero(t, sessionCount)

	var sub db_models.Subscription
	require.NoError(t, db.First(&sub).Error)
	assert.Nil(t, sub.EndDate)
}

func TestCreateBookingTwiceConflicts(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db, "Standard", 250000)
	account := seedAccount(t, db, "amara", "amara@example.test")
	seedSubscription(t, db, account.ID, plan.ID, plan, true)
	seedTherapist(t, db, "chidi", "cognitive therapy", 7, 2)

	svc, _ := newBookingService(t, db)
	_, err := svc.CreateBooking(context.Background(), account.ID, standardBookingRequest())
	require.NoError(t, err)

	_, err = svc.CreateBooking(context.Background(), account.ID, standardBookingRequest())
	require.ErrorIs(t, err, utils.ErrPreferenceExists)

	var sessionCount int64
	require.NoError(t, db.Model(&db_models.Session{}).Count(&sessionCount).Error)
	assert.EqualValues(t, 8, sessionCount)
}

func TestCreateBookingPicksLeastLoaded(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db, "Standard", 250000)
	account := seedAccount(t, db, "amara", "amara@example.test")
	seedSubscription(t, db, account.ID, plan.ID, plan, true)
	seedTherapist(t, db, "busy", "cognitive therapy", 8, 5)
	light := seedTherapist(t, db, "light", "cognitive therapy", 7, 2)

	svc, _ := newBookingService(t, db)
	resp, err := svc.CreateBooking(context.Background(), account.ID, standardBookingRequest())
	require.NoError(t, err)
	assert.Equal(t, light.ID.String(), resp.Sessions[0].TherapistID)
}

func TestCreateBookingRespectsExperienceBand(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db, "Standard", 250000)
	account := seedAccount(t, db, "amara", "amara@example.test")
	seedSubscription(t, db, account.ID, plan.ID, plan, true)
	// Standard wants [5, 15) years; 3 is too junior, 15 just over the line.
	seedTherapist(t, db, "junior", "cognitive therapy", 3, 0)
	seedTherapist(t, db, "senior", "cognitive therapy", 15, 0)

	svc, _ := newBookingService(t, db)
	_, err := svc.CreateBooking(context.Background(), account.ID, standardBookingRequest())
	require.ErrorIs(t, err, utils.ErrNoTherapistAvailable)
}

func TestCreateBookingRespectsCapacity(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db, "Standard", 250000)
	account := seedAccount(t, db, "amara", "amara@example.test")
	seedSubscription(t, db, account.ID, plan.ID, plan, true)
	// Standard caps at 7 clients.
	seedTherapist(t, db, "full", "cognitive therapy", 7, 7)

	svc, _ := newBookingService(t, db)
	_, err := svc.CreateBooking(context.Background(), account.ID, standardBookingRequest())
	require.ErrorIs(t, err, utils.ErrNoTherapistAvailable)
}

func TestCreateBookingTherapyNotInPlan(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db, "Basic", 150000)
	account := seedAccount(t, db, "amara", "amara@example.test")
	seedSubscription(t, db, account.ID, plan.ID, plan, true)

	svc, _ := newBookingService(t, db)
	req := request_models.CreateBookingRequest{
		PlanName:      "Basic",
		TherapyType:   "clinical psychology",
		SessionDays:   json.RawMessage(`"Monday"`),
		PreferredTime: "Morning",
	}
	_, err := svc.CreateBooking(context.Background(), account.ID, req)
	require.ErrorIs(t, err, utils.ErrTherapyNotAllowed)
}

func TestCreateBookingDayShapeRejected(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db, "Basic", 150000)
	account := seedAccount(t, db, "amara", "amara@example.test")
	seedSubscription(t, db, account.ID, plan.ID, plan, true)
	seedTherapist(t, db, "chidi", "cognitive therapy", 2, 1)

	svc, _ := newBookingService(t, db)
	req := request_models.CreateBookingRequest{
		PlanName:      "Basic",
		TherapyType:   "cognitive therapy",
		SessionDays:   json.RawMessage(`["Monday"]`), // Basic wants a bare string
		PreferredTime: "Morning",
	}
	_, err := svc.CreateBooking(context.Background(), account.ID, req)
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)

	var prefCount int64
	require.NoError(t, db.Model(&db_models.SessionPreference{}).Count(&prefCount).Error)
	assert.Zero(t, prefCount)
}

func TestCreateBookingWithoutSubscription(t *testing.T) {
	db := newTestDB(t)
	seedPlan(t, db, "Standard", 250000)
	account := seedAccount(t, db, "amara", "amara@example.test")

	svc, _ := newBookingService(t, db)
	_, err := svc.CreateBooking(context.Background(), account.ID, standardBookingRequest())
	require.ErrorIs(t, err, utils.ErrSubscriptionNotFound)
}

func TestCreateBookingBasicPlan(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db, "Basic", 150000)
	account := seedAccount(t, db, "amara", "amara@example.test")
	seedSubscription(t, db, account.ID, plan.ID, plan, true)
	seedTherapist(t, db, "chidi", "cognitive therapy", 2, 1)

	svc, _ := newBookingService(t, db)
	req := request_models.CreateBookingRequest{
		PlanName:      "basic", // tier matching is case-insensitive
		TherapyType:   "Cognitive Therapy",
		SessionDays:   json.RawMessage(`"Wednesday"`),
		PreferredTime: "Evening",
	}
	resp, err := svc.CreateBooking(context.Background(), account.ID, req)
	require.NoError(t, err)
	require.Len(t, resp.Sessions, 4)

	// Booked on a Wednesday before noon, so today's slot is included.
	var stored []db_models.Session
	require.NoError(t, db.Order("date ASC").Find(&stored).Error)
	first := time.Unix(stored[0].Date, 0).UTC()
	assert.Equal(t, time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC), first)
}

func TestGetBookingAfterCreate(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db, "Standard", 250000)
	account := seedAccount(t, db, "amara", "amara@example.test")
	sub := seedSubscription(t, db, account.ID, plan.ID, plan, true)
	seedTherapist(t, db, "chidi", "cognitive therapy", 7, 2)

	svc, _ := newBookingService(t, db)

	_, err := svc.GetBooking(context.Background(), account.ID)
	require.ErrorIs(t, err, utils.ErrPreferenceNotFound)

	_, err = svc.CreateBooking(context.Background(), account.ID, standardBookingRequest())
	require.NoError(t, err)

	details, err := svc.GetBooking(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.ID.String(), details.SubscriptionID)
	assert.Equal(t, "cognitive therapy", details.TherapyType)
	assert.ElementsMatch(t, []string{"Monday", "Thursday"}, details.SessionDays)
	assert.Equal(t, "Morning", details.PreferredTime)
	assert.Len(t, details.Sessions, 8)
}

func TestCreateBookingEndDateWrittenOnce(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db, "Standard", 250000)
	account := seedAccount(t, db, "amara", "amara@example.test")
	sub := seedSubscription(t, db, account.ID, plan.ID, plan, true)
	seedTherapist(t, db, "chidi", "cognitive therapy", 7, 2)

	// A previously recorded cycle end must not move.
	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).Unix()
	require.NoError(t, db.Model(&db_models.Subscription{}).
		Where("id = ?", sub.ID).Update("end_date", fixed).Error)

	svc, _ := newBookingService(t, db)
	_, err := svc.CreateBooking(context.Background(), account.ID, standardBookingRequest())
	require.NoError(t, err)

	var after db_models.Subscription
	require.NoError(t, db.First(&after, "id = ?", sub.ID).Error)
	require.NotNil(t, after.EndDate)
	assert.Equal(t, fixed, *after.EndDate)
}
