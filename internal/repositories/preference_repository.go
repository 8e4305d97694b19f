package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anontherapy/internal/models/db_models"
)

type IPreferenceRepository interface {
	// GetForActiveSubscription finds the preference tied to the user's
	// currently active subscription, if any.
	GetForActiveSubscription(ctx context.Context, userID uuid.UUID) (*db_models.SessionPreference, error)
}

type PreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) IPreferenceRepository {
	return &PreferenceRepository{db: db}
}

func (r *PreferenceRepository) GetForActiveSubscription(ctx context.Context, userID uuid.UUID) (*db_models.SessionPreference, error) {
	var pref db_models.SessionPreference
	err := r.db.WithContext(ctx).
		Joins("JOIN subscriptions ON subscriptions.id = session_preferences.subscription_id").
		Where("session_preferences.user_id = ? AND subscriptions.is_active = ?", userID, true).
		First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

