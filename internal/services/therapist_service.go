package services

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"anontherapy/internal/models/db_models"
	"anontherapy/internal/models/request_models"
	"anontherapy/internal/models/response_models"
	"anontherapy/internal/repositories"
	"anontherapy/internal/scheduling"
	"anontherapy/pkg/utils"
)

var clockTimeRe = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

type TherapistServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterTherapistRequest) (*db_models.Therapist, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CheckAvailability(ctx context.Context, planName, therapyType string) (*response_models.AvailabilityResponse, error)
	ListSessions(ctx context.Context, therapistID uuid.UUID) ([]db_models.Session, error)
	AssignTimeToSession(ctx context.Context, therapistID, sessionID uuid.UUID, scheduledTime string) error
	UpdateSessionStatus(ctx context.Context, therapistID, sessionID uuid.UUID, status string, notes string) error
	RescheduleSession(ctx context.Context, therapistID, sessionID uuid.UUID, request request_models.RescheduleSessionRequest) error
}

type TherapistService struct {
	therapistRepo repositories.ITherapistRepository
	sessionRepo   repositories.ISessionRepository
	accountRepo   repositories.IAccountRepository
	notifier      NotificationServiceInterface
	mailer        IMailService
}

func NewTherapistService(
	therapistRepo repositories.ITherapistRepository,
	sessionRepo repositories.ISessionRepository,
	accountRepo repositories.IAccountRepository,
	notifier NotificationServiceInterface,
	mailer IMailService,
) TherapistServiceInterface {
	return &TherapistService{
		therapistRepo: therapistRepo,
		sessionRepo:   sessionRepo,
		accountRepo:   accountRepo,
		notifier:      notifier,
		mailer:        mailer,
	}
}

func (t *TherapistService) Register(ctx context.Context, request request_models.RegisterTherapistRequest) (*db_models.Therapist, error) {
	existing, err := t.therapistRepo.GetByEmail(ctx, strings.ToLower(request.Email))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	therapist := &db_models.Therapist{
		FirstName:         request.FirstName,
		LastName:          request.LastName,
		Email:             strings.ToLower(request.Email),
		PasswordHash:      hash,
		Gender:            request.Gender,
		BioData:           request.BioData,
		Specialization:    strings.ToLower(strings.TrimSpace(request.Specialization)),
		LicenseNo:         request.LicenseNo,
		YearsOfExperience: request.YearsOfExperience,
		Status:            db_models.TherapistActive,
	}
	if err := t.therapistRepo.Create(ctx, therapist); err != nil {
		if isDuplicateKey(err) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}
	return therapist, nil
}

func (t *TherapistService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	therapist, err := t.therapistRepo.GetByEmail(ctx, strings.ToLower(request.Email))
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if therapist == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(therapist.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(therapist.ID, string(db_models.RoleTherapist))
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

// CheckAvailability reports how many therapists could currently take the
// booking, so clients can see whether a therapy type is matchable before
// committing. Uses the same band and capacity policy as booking itself.
func (t *TherapistService) CheckAvailability(ctx context.Context, planName, therapyType string) (*response_models.AvailabilityResponse, error) {
	tier, err := scheduling.NormalizeTier(planName)
	if err != nil {
		return nil, utils.ErrPlanNotFound
	}
	normalized := strings.ToLower(strings.TrimSpace(therapyType))
	if !scheduling.TherapyAllowed(tier, normalized) {
		return nil, utils.ErrTherapyNotAllowed
	}

	policy, err := scheduling.PolicyFor(tier)
	if err != nil {
		return nil, utils.ErrPlanNotFound
	}
	eligible, err := t.therapistRepo.FindEligible(ctx, normalized, policy.MinYears, policy.MaxYears, policy.MaxClients)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AvailabilityResponse{
		TherapyType: normalized,
		PlanName:    tier,
		Available:   len(eligible),
	}, nil
}

func (t *TherapistService) ListSessions(ctx context.Context, therapistID uuid.UUID) ([]db_models.Session, error) {
	sessions, err := t.sessionRepo.ListByTherapistID(ctx, therapistID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return sessions, nil
}

// AssignTimeToSession sets the clock time for a session the client booked by
// weekday only, then notifies the client through the notifier and by email.
func (t *TherapistService) AssignTimeToSession(ctx context.Context, therapistID, sessionID uuid.UUID, scheduledTime string) error {
	if !clockTimeRe.MatchString(scheduledTime) {
		return utils.NewValidationError("scheduledTime must be HH:MM in 24-hour format")
	}

	session, err := t.ownedSession(ctx, therapistID, sessionID)
	if err != nil {
		return err
	}

	if err := t.sessionRepo.SetScheduledTime(ctx, sessionID, scheduledTime); err != nil {
		return utils.ErrDatabaseError
	}

	therapist, err := t.therapistRepo.GetByID(ctx, therapistID)
	if err != nil || therapist == nil {
		return nil
	}
	therapistName := therapist.FirstName + " " + therapist.LastName
	sessionDate := utils.FormatDateDisplay(session.Date)

	if t.notifier != nil {
		t.notifier.NotifySessionTime(ctx, session.UserID, therapistName, scheduledTime, sessionDate)
	}
	if t.mailer != nil {
		if account, err := t.accountRepo.FindByID(ctx, session.UserID); err == nil && account != nil {
			if err := t.mailer.SendSessionTimeMail(account.Email, therapistName, scheduledTime, sessionDate); err != nil {
				log.Printf("therapist: session time mail to %s failed: %v", account.Email, err)
			}
		}
	}
	return nil
}

func (t *TherapistService) UpdateSessionStatus(ctx context.Context, therapistID, sessionID uuid.UUID, status string, notes string) error {
	if _, err := t.ownedSession(ctx, therapistID, sessionID); err != nil {
		return err
	}

	switch db_models.SessionStatus(status) {
	case db_models.SessionCompleted, db_models.SessionCanceled, db_models.SessionNoShow:
	default:
		return utils.NewValidationError("status must be completed, canceled or no-show")
	}

	if err := t.sessionRepo.SetStatus(ctx, sessionID, db_models.SessionStatus(status), notes); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TherapistService) RescheduleSession(ctx context.Context, therapistID, sessionID uuid.UUID, request request_models.RescheduleSessionRequest) error {
	session, err := t.ownedSession(ctx, therapistID, sessionID)
	if err != nil {
		return err
	}

	newDate, err := time.Parse(time.RFC3339, request.NewDate)
	if err != nil {
		return utils.NewValidationError("newDate must be RFC 3339")
	}
	if !newDate.After(time.Now()) {
		return utils.NewValidationError("newDate must be in the future")
	}
	if request.NewTime != "" && !clockTimeRe.MatchString(request.NewTime) {
		return utils.NewValidationError("newTime must be HH:MM in 24-hour format")
	}

	// Keep the noon anchor so the stored date stays inside its weekday.
	anchored := time.Date(newDate.Year(), newDate.Month(), newDate.Day(), 12, 0, 0, 0, newDate.Location())
	if err := t.sessionRepo.Reschedule(ctx, sessionID, anchored.Unix(), request.NewTime); err != nil {
		return utils.ErrDatabaseError
	}

	if t.notifier != nil {
		therapist, terr := t.therapistRepo.GetByID(ctx, therapistID)
		if terr == nil && therapist != nil {
			t.notifier.NotifySessionTime(ctx, session.UserID,
				therapist.FirstName+" "+therapist.LastName,
				request.NewTime,
				utils.FormatDateDisplay(anchored.Unix()))
		}
	}
	return nil
}

func (t *TherapistService) ownedSession(ctx context.Context, therapistID, sessionID uuid.UUID) (*db_models.Session, error) {
	session, err := t.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil || session.TherapistID != therapistID {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}
