package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anontherapy/internal/models/db_models"
)

type ITherapistRepository interface {
	Create(ctx context.Context, therapist *db_models.Therapist) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Therapist, error)
	GetByEmail(ctx context.Context, email string) (*db_models.Therapist, error)
	// FindEligible returns active therapists in the experience band with the
	// given specialization and spare capacity, least-loaded first.
	FindEligible(ctx context.Context, specialization string, minYears, maxYears, maxClients int) ([]db_models.Therapist, error)
}

type TherapistRepository struct {
	db *gorm.DB
}

func NewTherapistRepository(db *gorm.DB) ITherapistRepository {
	return &TherapistRepository{db: db}
}

func (r *TherapistRepository) Create(ctx context.Context, therapist *db_models.Therapist) error {
	return r.db.WithContext(ctx).Create(therapist).Error
}

func (r *TherapistRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Therapist, error) {
	var therapist db_models.Therapist
	err := r.db.WithContext(ctx).First(&therapist, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &therapist, nil
}

func (r *TherapistRepository) GetByEmail(ctx context.Context, email string) (*db_models.Therapist, error) {
	var therapist db_models.Therapist
	err := r.db.WithContext(ctx).First(&therapist, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &therapist, nil
}

func (r *TherapistRepository) FindEligible(ctx context.Context, specialization string, minYears, maxYears, maxClients int) ([]db_models.Therapist, error) {
	var therapists []db_models.Therapist
	err := r.db.WithContext(ctx).
		Where("status = ?", db_models.TherapistActive).
		Where("specialization = ?", specialization).
		Where("years_of_experience >= ? AND years_of_experience < ?", minYears, maxYears).
		Where("current_clients < ?", maxClients).
		Order("current_clients ASC").
		Find(&therapists).Error
	if err != nil {
		return nil, err
	}
	return therapists, nil
}
