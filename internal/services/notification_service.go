package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"anontherapy/internal/models/db_models"
	"anontherapy/internal/repositories"
	"anontherapy/pkg/utils"
)

// LiveDeliverer pushes a notification to a connected user. The realtime
// transport lives outside this service; delivery is best-effort and a false
// return only means the user was offline.
type LiveDeliverer interface {
	SendToUser(userID uuid.UUID, payload interface{}) bool
}

// NoopDeliverer is used when no realtime transport is wired in.
type NoopDeliverer struct{}

func (NoopDeliverer) SendToUser(uuid.UUID, interface{}) bool { return false }

type NotificationInput struct {
	Type    db_models.NotificationType
	Title   string
	Message string
	Data    map[string]interface{}
}

type NotificationServiceInterface interface {
	SendToUser(ctx context.Context, userID uuid.UUID, input NotificationInput) bool
	NotifyTherapistAssignment(ctx context.Context, userID uuid.UUID, therapist *db_models.Therapist)
	NotifySessionBooking(ctx context.Context, therapistID uuid.UUID, clientName string)
	NotifySessionTime(ctx context.Context, userID uuid.UUID, therapistName, sessionTime, sessionDate string)
	GetMissed(ctx context.Context, userID uuid.UUID) ([]db_models.Notification, error)
	MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	DeleteAll(ctx context.Context, userID uuid.UUID) error
}

type NotificationService struct {
	notificationRepo repositories.INotificationRepository
	deliverer        LiveDeliverer
}

func NewNotificationService(notificationRepo repositories.INotificationRepository, deliverer LiveDeliverer) NotificationServiceInterface {
	if deliverer == nil {
		deliverer = NoopDeliverer{}
	}
	return &NotificationService{
		notificationRepo: notificationRepo,
		deliverer:        deliverer,
	}
}

// SendToUser persists the notification first so the user sees it even when
// offline, then attempts live delivery. Persistence failures are logged and
// never propagate to the caller's flow.
func (n *NotificationService) SendToUser(ctx context.Context, userID uuid.UUID, input NotificationInput) bool {
	data, _ := json.Marshal(input.Data)
	notification := &db_models.Notification{
		UserID:  userID,
		Type:    input.Type,
		Title:   input.Title,
		Message: input.Message,
		Data:    data,
	}
	if err := n.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("notification: failed to persist for user %s: %v", userID, err)
	}

	return n.deliverer.SendToUser(userID, notification)
}

func (n *NotificationService) NotifyTherapistAssignment(ctx context.Context, userID uuid.UUID, therapist *db_models.Therapist) {
	n.SendToUser(ctx, userID, NotificationInput{
		Type:    db_models.NotifyTherapistAssigned,
		Title:   "Therapist Assigned",
		Message: fmt.Sprintf("A therapist has been assigned to handle your sessions. DR %s %s", therapist.FirstName, therapist.LastName),
		Data: map[string]interface{}{
			"firstName":    therapist.FirstName,
			"lastName":     therapist.LastName,
			"therapistBio": therapist.BioData,
		},
	})
}

func (n *NotificationService) NotifySessionBooking(ctx context.Context, therapistID uuid.UUID, clientName string) {
	n.SendToUser(ctx, therapistID, NotificationInput{
		Type:    db_models.NotifySessionBooking,
		Title:   "New Session Booking",
		Message: fmt.Sprintf("You have a new session booking from %s", clientName),
	})
}

func (n *NotificationService) NotifySessionTime(ctx context.Context, userID uuid.UUID, therapistName, sessionTime, sessionDate string) {
	n.SendToUser(ctx, userID, NotificationInput{
		Type:    db_models.NotifySessionTimeSet,
		Title:   "Session Time Set",
		Message: fmt.Sprintf("Your session with %s has been scheduled for %s on %s", therapistName, sessionTime, sessionDate),
		Data: map[string]interface{}{
			"therapistName": therapistName,
			"sessionTime":   sessionTime,
			"sessionDate":   sessionDate,
		},
	})
}

func (n *NotificationService) GetMissed(ctx context.Context, userID uuid.UUID) ([]db_models.Notification, error) {
	notifications, err := n.notificationRepo.ListUnread(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notifications, nil
}

func (n *NotificationService) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	affected, err := n.notificationRepo.MarkAsRead(ctx, userID, notificationID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrNotificationNotFound
	}
	return nil
}

func (n *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	if err := n.notificationRepo.MarkAllAsRead(ctx, userID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (n *NotificationService) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	if err := n.notificationRepo.DeleteAll(ctx, userID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
