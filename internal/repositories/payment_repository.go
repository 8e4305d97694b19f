package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anontherapy/internal/models/db_models"
)

type IPaymentRepository interface {
	Create(ctx context.Context, payment *db_models.Payment) error
	GetByReference(ctx context.Context, reference string) (*db_models.Payment, error)
	UpdateStatus(ctx context.Context, reference string, status db_models.PaymentStatus) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.Payment, error)
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) IPaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *PaymentRepository) GetByReference(ctx context.Context, reference string) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := r.db.WithContext(ctx).First(&payment, "reference = ?", reference).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, reference string, status db_models.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Where("reference = ?", reference).
		Update("status", status).Error
}

func (r *PaymentRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
