package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anontherapy/internal/models/db_models"
	"anontherapy/internal/models/request_models"
	"anontherapy/internal/models/response_models"
	"anontherapy/internal/repositories"
	"anontherapy/pkg/memcache"
	"anontherapy/pkg/utils"
)

type PaymentServiceInterface interface {
	InitializePayment(ctx context.Context, userID uuid.UUID, request request_models.InitializePaymentRequest) (*response_models.InitializePaymentResponse, error)
	ConfirmPayment(ctx context.Context, reference string) (db_models.PaymentStatus, error)
	PaymentHistory(ctx context.Context, userID uuid.UUID) ([]response_models.PaymentHistoryEntry, error)
}

type PaymentService struct {
	db          *gorm.DB
	paymentRepo repositories.IPaymentRepository
	subRepo     repositories.ISubscriptionRepository
	gateway     PaymentGateway
	refs        memcache.ReferenceGuard
}

func NewPaymentService(db *gorm.DB, paymentRepo repositories.IPaymentRepository, subRepo repositories.ISubscriptionRepository, gateway PaymentGateway, refs memcache.ReferenceGuard) PaymentServiceInterface {
	if refs == nil {
		refs = memcache.NewReferenceHolds()
	}
	return &PaymentService{
		db:          db,
		paymentRepo: paymentRepo,
		subRepo:     subRepo,
		gateway:     gateway,
		refs:        refs,
	}
}

func (p *PaymentService) InitializePayment(ctx context.Context, userID uuid.UUID, request request_models.InitializePaymentRequest) (*response_models.InitializePaymentResponse, error) {
	subscriptionID, err := uuid.Parse(request.SubscriptionID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	sub, err := p.subRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil || sub.UserID != userID {
		return nil, utils.ErrSubscriptionNotFound
	}

	result, err := p.gateway.Initialize(ctx, request.Email, request.Amount)
	if err != nil {
		log.Printf("payment: gateway initialize failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	meta, _ := json.Marshal(map[string]interface{}{
		"subscription_id": sub.ID,
		"plan_id":         sub.PlanID,
	})
	payment := &db_models.Payment{
		Email:          request.Email,
		AmountMinor:    request.Amount,
		SubscriptionID: sub.ID,
		UserID:         userID,
		Reference:      result.Reference,
		Status:         db_models.PaymentPending,
		Metadata:       meta,
	}
	if err := p.paymentRepo.Create(ctx, payment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.InitializePaymentResponse{
		Reference:   result.Reference,
		CheckoutURL: result.CheckoutURL,
		Amount:      request.Amount,
	}, nil
}

// ConfirmPayment verifies a reference with the gateway and, on success,
// marks the payment and activates the subscription in one transaction.
// Re-verifying an already-successful reference is a no-op; concurrent
// verifies for the same reference are serialized by the in-memory hold.
func (p *PaymentService) ConfirmPayment(ctx context.Context, reference string) (db_models.PaymentStatus, error) {
	if !p.refs.Acquire(reference, 30*time.Second) {
		return "", utils.ErrPaymentAlreadyHandled
	}
	defer p.refs.Release(reference)

	payment, err := p.paymentRepo.GetByReference(ctx, reference)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if payment == nil {
		return "", utils.ErrPaymentNotFound
	}
	if payment.Status == db_models.PaymentSuccessful {
		return db_models.PaymentSuccessful, nil
	}

	status, err := p.gateway.Verify(ctx, reference)
	if err != nil {
		log.Printf("payment: gateway verify failed for %s: %v", reference, err)
		return "", utils.ErrDatabaseError
	}

	switch status {
	case GatewaySuccess:
		err = p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&db_models.Payment{}).
				Where("reference = ?", reference).
				Update("status", db_models.PaymentSuccessful).Error; err != nil {
				return err
			}
			return tx.Model(&db_models.Subscription{}).
				Where("id = ?", payment.SubscriptionID).
				Updates(map[string]interface{}{
					"status":    db_models.SubStatusSubscribed,
					"is_active": true,
				}).Error
		})
		if err != nil {
			if isDuplicateKey(err) {
				return "", utils.ErrAlreadySubscribed
			}
			log.Printf("payment: activation failed for %s: %v", reference, err)
			return "", utils.ErrDatabaseError
		}
		return db_models.PaymentSuccessful, nil

	case GatewayFailed:
		if err := p.paymentRepo.UpdateStatus(ctx, reference, db_models.PaymentFailed); err != nil {
			return "", utils.ErrDatabaseError
		}
		return db_models.PaymentFailed, nil

	case GatewayAbandoned:
		if err := p.paymentRepo.UpdateStatus(ctx, reference, db_models.PaymentAbandoned); err != nil {
			return "", utils.ErrDatabaseError
		}
		return db_models.PaymentAbandoned, nil

	default:
		return db_models.PaymentPending, nil
	}
}

func (p *PaymentService) PaymentHistory(ctx context.Context, userID uuid.UUID) ([]response_models.PaymentHistoryEntry, error) {
	payments, err := p.paymentRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PaymentHistoryEntry, 0, len(payments))
	for _, payment := range payments {
		out = append(out, response_models.PaymentHistoryEntry{
			Reference: payment.Reference,
			Amount:    payment.AmountMinor,
			Status:    string(payment.Status),
			Date:      utils.FormatDateDisplay(payment.CreatedAt),
		})
	}
	return out, nil
}
