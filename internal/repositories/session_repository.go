package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anontherapy/internal/models/db_models"
)

type ISessionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Session, error)
	ListByTherapistID(ctx context.Context, therapistID uuid.UUID) ([]db_models.Session, error)
	SetScheduledTime(ctx context.Context, id uuid.UUID, scheduledTime string) error
	SetStatus(ctx context.Context, id uuid.UUID, status db_models.SessionStatus, notes string) error
	Reschedule(ctx context.Context, id uuid.UUID, newDate int64, scheduledTime string) error
}

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) ISessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Session, error) {
	var session db_models.Session
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) ListByTherapistID(ctx context.Context, therapistID uuid.UUID) ([]db_models.Session, error) {
	var sessions []db_models.Session
	err := r.db.WithContext(ctx).
		Where("therapist_id = ?", therapistID).
		Order("date ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepository) SetScheduledTime(ctx context.Context, id uuid.UUID, scheduledTime string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Session{}).
		Where("id = ?", id).
		Update("scheduled_time", scheduledTime).Error
}

func (r *SessionRepository) SetStatus(ctx context.Context, id uuid.UUID, status db_models.SessionStatus, notes string) error {
	updates := map[string]interface{}{"status": status}
	if notes != "" {
		updates["notes"] = notes
	}
	return r.db.WithContext(ctx).
		Model(&db_models.Session{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *SessionRepository) Reschedule(ctx context.Context, id uuid.UUID, newDate int64, scheduledTime string) error {
	updates := map[string]interface{}{
		"date":   newDate,
		"status": db_models.SessionRescheduled,
	}
	if scheduledTime != "" {
		updates["scheduled_time"] = scheduledTime
	}
	return r.db.WithContext(ctx).
		Model(&db_models.Session{}).
		Where("id = ?", id).
		Updates(updates).Error
}
