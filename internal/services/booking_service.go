package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"anontherapy/internal/models/db_models"
	"anontherapy/internal/models/request_models"
	"anontherapy/internal/models/response_models"
	"anontherapy/internal/repositories"
	"anontherapy/internal/scheduling"
	"anontherapy/pkg/utils"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, request request_models.CreateBookingRequest) (*response_models.BookingResponse, error)
	GetBooking(ctx context.Context, userID uuid.UUID) (*response_models.BookingDetailsResponse, error)
}

// BookingService coordinates the one transactional write path of the system:
// preference + N sessions + therapist load increment + subscription end date,
// committed or rolled back as a unit. Matching and date generation are pure
// and run inside the transaction only because the therapist row they pick
// must stay locked until the load increment lands.
type BookingService struct {
	db             *gorm.DB
	generator      *scheduling.Generator
	preferenceRepo repositories.IPreferenceRepository
	notifier       NotificationServiceInterface
	mailer         IMailService
}

func NewBookingService(db *gorm.DB, generator *scheduling.Generator, preferenceRepo repositories.IPreferenceRepository, notifier NotificationServiceInterface, mailer IMailService) BookingServiceInterface {
	if generator == nil {
		generator = scheduling.NewGenerator(nil)
	}
	return &BookingService{
		db:             db,
		generator:      generator,
		preferenceRepo: preferenceRepo,
		notifier:       notifier,
		mailer:         mailer,
	}
}

func (b *BookingService) CreateBooking(ctx context.Context, userID uuid.UUID, request request_models.CreateBookingRequest) (*response_models.BookingResponse, error) {
	tier, err := scheduling.NormalizeTier(request.PlanName)
	if err != nil {
		return nil, utils.ErrPlanNotFound
	}
	therapyType := strings.ToLower(strings.TrimSpace(request.TherapyType))

	var (
		subscription db_models.Subscription
		therapist    db_models.Therapist
		sessions     []db_models.Session
	)

	txErr := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Active subscription for the caller.
		err := tx.Where("user_id = ? AND is_active = ?", userID, true).
			First(&subscription).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrSubscriptionNotFound
			}
			return err
		}

		// 2. One booking per subscription lifetime.
		var existing int64
		err = tx.Model(&db_models.SessionPreference{}).
			Where("subscription_id = ?", subscription.ID).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return utils.ErrPreferenceExists
		}

		// 3. Plan by name.
		var plan db_models.Plan
		err = tx.First(&plan, "name = ?", tier).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrPlanNotFound
			}
			return err
		}

		if !scheduling.TherapyAllowed(tier, therapyType) {
			return utils.ErrTherapyNotAllowed
		}

		// 4. Day cardinality / weekday validation for the tier.
		days, err := scheduling.DecodeSessionDays(request.SessionDays, tier)
		if err != nil {
			return err
		}

		// 5. Preference row. The partial unique index on subscription_id
		// catches a concurrent booking that slipped past step 2.
		preference := db_models.SessionPreference{
			UserID:         userID,
			SubscriptionID: subscription.ID,
			PlanID:         plan.ID,
			TherapyType:    therapyType,
			SessionDays:    days,
			PreferredTime:  db_models.PreferredTime(request.PreferredTime),
		}
		if err := tx.Create(&preference).Error; err != nil {
			if isDuplicateKey(err) {
				return utils.ErrPreferenceExists
			}
			return err
		}

		// 6. Least-loaded eligible therapist, locked until the increment.
		therapistPick, err := b.selectTherapist(tx, tier, therapyType)
		if err != nil {
			return err
		}
		therapist = *therapistPick

		// 7. Session calendar.
		dates, err := b.generator.SessionDates(days, tier)
		if err != nil {
			return err
		}

		// 8. End date: first session + 28 days, written exactly once.
		if subscription.EndDate == nil {
			endDate := dates[0].AddDate(0, 0, 28).Unix()
			if err := tx.Model(&db_models.Subscription{}).
				Where("id = ?", subscription.ID).
				Update("end_date", endDate).Error; err != nil {
				return err
			}
			subscription.EndDate = &endDate
		}

		// 9. One session row per generated date.
		sessions = make([]db_models.Session, 0, len(dates))
		for _, d := range dates {
			sessions = append(sessions, db_models.Session{
				UserID:         userID,
				SubscriptionID: subscription.ID,
				TherapistID:    therapist.ID,
				TherapyType:    therapyType,
				Date:           d.Unix(),
				PreferredTime:  db_models.PreferredTime(request.PreferredTime),
				Duration:       30,
				Status:         db_models.SessionUpcoming,
			})
		}
		if err := tx.Create(&sessions).Error; err != nil {
			return err
		}

		// 10. Load increment, same transaction as the session rows.
		return tx.Model(&db_models.Therapist{}).
			Where("id = ?", therapist.ID).
			UpdateColumn("current_clients", gorm.Expr("current_clients + ?", 1)).Error
	})

	if txErr != nil {
		return nil, mapBookingError(txErr)
	}

	// Post-commit, best-effort: the booking already succeeded, delivery
	// problems are logged and never surfaced.
	b.announceBooking(ctx, userID, &therapist, sessions)

	return b.buildResponse(&subscription, &therapist, sessions), nil
}

// selectTherapist implements the band/capacity policy: active therapists in
// the tier's experience band with the requested specialization and spare
// capacity, least-loaded first. On postgres the winning row is locked FOR
// UPDATE so concurrent bookings serialize on the load counter.
func (b *BookingService) selectTherapist(tx *gorm.DB, tier, therapyType string) (*db_models.Therapist, error) {
	policy, err := scheduling.PolicyFor(tier)
	if err != nil {
		return nil, err
	}

	query := tx.
		Where("status = ?", db_models.TherapistActive).
		Where("specialization = ?", therapyType).
		Where("years_of_experience >= ? AND years_of_experience < ?", policy.MinYears, policy.MaxYears).
		Where("current_clients < ?", policy.MaxClients).
		Order("current_clients ASC")
	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var therapist db_models.Therapist
	if err := query.First(&therapist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNoTherapistAvailable
		}
		return nil, err
	}
	return &therapist, nil
}

func (b *BookingService) announceBooking(ctx context.Context, userID uuid.UUID, therapist *db_models.Therapist, sessions []db_models.Session) {
	if b.notifier != nil {
		b.notifier.NotifyTherapistAssignment(ctx, userID, therapist)
		b.notifier.NotifySessionBooking(ctx, therapist.ID, b.clientName(ctx, userID))
	}

	if b.mailer != nil && len(sessions) > 0 {
		var account db_models.Account
		if err := b.db.WithContext(ctx).First(&account, "id = ?", userID).Error; err == nil {
			firstDate := utils.FormatDateDisplay(sessions[0].Date)
			therapistName := therapist.FirstName + " " + therapist.LastName
			if err := b.mailer.SendBookingConfirmation(account.Email, account.Username, therapistName, firstDate); err != nil {
				log.Printf("booking: confirmation mail to %s failed: %v", account.Email, err)
			}
		}
	}
}

// GetBooking returns the preference and session calendar tied to the user's
// active subscription.
func (b *BookingService) GetBooking(ctx context.Context, userID uuid.UUID) (*response_models.BookingDetailsResponse, error) {
	preference, err := b.preferenceRepo.GetForActiveSubscription(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if preference == nil {
		return nil, utils.ErrPreferenceNotFound
	}

	var sessions []db_models.Session
	err = b.db.WithContext(ctx).
		Where("subscription_id = ?", preference.SubscriptionID).
		Order("date ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp := response_models.SessionResponse{
			ID:            s.ID.String(),
			TherapistID:   s.TherapistID.String(),
			TherapyType:   s.TherapyType,
			Date:          utils.FormatDateDisplay(s.Date),
			PreferredTime: string(s.PreferredTime),
			Duration:      s.Duration,
			Status:        string(s.Status),
			Notes:         s.Notes,
		}
		if s.ScheduledTime != nil {
			resp.ScheduledTime = *s.ScheduledTime
		}
		out = append(out, resp)
	}

	return &response_models.BookingDetailsResponse{
		SubscriptionID: preference.SubscriptionID.String(),
		TherapyType:    preference.TherapyType,
		SessionDays:    preference.SessionDays,
		PreferredTime:  string(preference.PreferredTime),
		Sessions:       out,
	}, nil
}

func (b *BookingService) clientName(ctx context.Context, userID uuid.UUID) string {
	var account db_models.Account
	if err := b.db.WithContext(ctx).First(&account, "id = ?", userID).Error; err != nil {
		return "a new client"
	}
	return account.Username
}

func (b *BookingService) buildResponse(subscription *db_models.Subscription, therapist *db_models.Therapist, sessions []db_models.Session) *response_models.BookingResponse {
	out := make([]response_models.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp := response_models.SessionResponse{
			ID:            s.ID.String(),
			TherapistID:   s.TherapistID.String(),
			TherapyType:   s.TherapyType,
			Date:          utils.FormatDateDisplay(s.Date),
			PreferredTime: string(s.PreferredTime),
			Duration:      s.Duration,
			Status:        string(s.Status),
		}
		if s.ScheduledTime != nil {
			resp.ScheduledTime = *s.ScheduledTime
		}
		out = append(out, resp)
	}
	return &response_models.BookingResponse{
		SubscriptionID: subscription.ID.String(),
		TherapistName:  therapist.FirstName + " " + therapist.LastName,
		Sessions:       out,
	}
}

// mapBookingError keeps sentinel and validation errors intact and folds
// anything else (driver faults, context cancellation mid-transaction) into
// the generic database error after logging.
func mapBookingError(err error) error {
	var ve *utils.ValidationError
	if errors.As(err, &ve) {
		return err
	}
	for _, sentinel := range []error{
		utils.ErrSubscriptionNotFound,
		utils.ErrPreferenceExists,
		utils.ErrPlanNotFound,
		utils.ErrTherapyNotAllowed,
		utils.ErrNoTherapistAvailable,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	log.Printf("booking: transaction failed: %v", err)
	return utils.ErrDatabaseError
}
