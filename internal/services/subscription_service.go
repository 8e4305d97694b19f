package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anontherapy/internal/models/db_models"
	"anontherapy/internal/models/response_models"
	"anontherapy/internal/repositories"
	"anontherapy/internal/scheduling"
	"anontherapy/pkg/utils"
)

type SubscriptionServiceInterface interface {
	CreateSubscription(ctx context.Context, userID uuid.UUID, planName string) (*response_models.SubscriptionResponse, error)
	ActivateSubscription(ctx context.Context, subscriptionID uuid.UUID) error
	MoveToWaitlist(ctx context.Context, userID, subscriptionID uuid.UUID, therapyType string) error
	CancelSubscription(ctx context.Context, userID uuid.UUID) error
	GetActiveSubscription(ctx context.Context, userID uuid.UUID) (*response_models.SubscriptionResponse, error)
	ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]response_models.SubscriptionResponse, error)
}

type SubscriptionService struct {
	db               *gorm.DB
	subscriptionRepo repositories.ISubscriptionRepository
	planRepo         repositories.IPlanRepository
}

func NewSubscriptionService(db *gorm.DB, subscriptionRepo repositories.ISubscriptionRepository, planRepo repositories.IPlanRepository) SubscriptionServiceInterface {
	return &SubscriptionService{
		db:               db,
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
	}
}

// CreateSubscription opens a new plan cycle for the user. Paid tiers start
// pending until payment confirmation; a zero-cost plan goes straight to
// subscribed and active. The existence pre-check mirrors the original flow;
// the partial unique index on (user_id) where is_active backs it up when two
// checkouts race.
func (s *SubscriptionService) CreateSubscription(ctx context.Context, userID uuid.UUID, planName string) (*response_models.SubscriptionResponse, error) {
	canonical, err := scheduling.NormalizeTier(planName)
	if err != nil {
		return nil, utils.ErrPlanNotFound
	}

	plan, err := s.planRepo.GetPlanByName(ctx, canonical)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	existing, err := s.subscriptionRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrAlreadySubscribed
	}

	sub := &db_models.Subscription{
		UserID:          userID,
		PlanID:          plan.ID,
		Status:          db_models.SubStatusPending,
		IsActive:        false,
		StartDate:       time.Now().Unix(),
		SessionsPerWeek: plan.SessionsPerWeek,
		MaxSessions:     plan.MaxSessions,
	}
	if plan.PriceMinor == 0 {
		sub.Status = db_models.SubStatusSubscribed
		sub.IsActive = true
	}

	if err := s.subscriptionRepo.Create(ctx, sub); err != nil {
		if isDuplicateKey(err) {
			return nil, utils.ErrAlreadySubscribed
		}
		return nil, utils.ErrDatabaseError
	}
	return subscriptionToResponse(sub), nil
}

// ActivateSubscription flips a pending subscription to subscribed+active.
// Called on payment confirmation; activating an already-active subscription
// is a no-op.
func (s *SubscriptionService) ActivateSubscription(ctx context.Context, subscriptionID uuid.UUID) error {
	sub, err := s.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil {
		return utils.ErrSubscriptionNotFound
	}
	if sub.IsActive && sub.Status == db_models.SubStatusSubscribed {
		return nil
	}

	err = s.subscriptionRepo.UpdateStatus(ctx, subscriptionID, db_models.SubStatusSubscribed, true)
	if err != nil {
		if isDuplicateKey(err) {
			return utils.ErrAlreadySubscribed
		}
		return utils.ErrDatabaseError
	}
	return nil
}

// MoveToWaitlist parks a subscription whose booking could not be matched to
// a therapist. The transition is explicit; the booking transaction itself
// never writes waitlist rows, and nothing retries waitlisted users
// automatically when capacity frees up.
func (s *SubscriptionService) MoveToWaitlist(ctx context.Context, userID, subscriptionID uuid.UUID, therapyType string) error {
	sub, err := s.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil || sub.UserID != userID {
		return utils.ErrSubscriptionNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.Subscription{}).
			Where("id = ?", subscriptionID).
			Update("status", db_models.SubStatusWaitlist).Error; err != nil {
			return err
		}
		entry := &db_models.BookingWaitlist{
			UserID:         userID,
			SubscriptionID: subscriptionID,
			TherapyType:    therapyType,
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SubscriptionService) CancelSubscription(ctx context.Context, userID uuid.UUID) error {
	sub, err := s.subscriptionRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil {
		return utils.ErrSubscriptionNotFound
	}

	err = s.subscriptionRepo.UpdateStatus(ctx, sub.ID, db_models.SubStatusCanceled, false)
	if err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SubscriptionService) GetActiveSubscription(ctx context.Context, userID uuid.UUID) (*response_models.SubscriptionResponse, error) {
	sub, err := s.subscriptionRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}
	return subscriptionToResponse(sub), nil
}

// ListSubscriptions returns every cycle the user has opened, newest first,
// including canceled and completed ones.
func (s *SubscriptionService) ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]response_models.SubscriptionResponse, error) {
	subs, err := s.subscriptionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SubscriptionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, *subscriptionToResponse(&subs[i]))
	}
	return out, nil
}

func subscriptionToResponse(sub *db_models.Subscription) *response_models.SubscriptionResponse {
	resp := &response_models.SubscriptionResponse{
		ID:              sub.ID.String(),
		PlanID:          sub.PlanID.String(),
		Status:          string(sub.Status),
		IsActive:        sub.IsActive,
		StartDate:       utils.FormatDateDisplay(sub.StartDate),
		SessionsPerWeek: sub.SessionsPerWeek,
		MaxSessions:     sub.MaxSessions,
	}
	if sub.EndDate != nil {
		resp.EndDate = utils.FormatDateDisplay(*sub.EndDate)
	}
	return resp
}
