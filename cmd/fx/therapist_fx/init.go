package therapist_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"anontherapy/internal/api/controllers"
	"anontherapy/internal/repositories"
	"anontherapy/internal/services"
)

var Module = fx.Provide(
	provideTherapistRepository,
	provideSessionRepository,
	provideTherapistService,
	provideTherapistController,
)

func provideTherapistRepository(db *gorm.DB) repositories.ITherapistRepository {
	return repositories.NewTherapistRepository(db)
}

func provideSessionRepository(db *gorm.DB) repositories.ISessionRepository {
	return repositories.NewSessionRepository(db)
}

func provideTherapistService(
	therapistRepo repositories.ITherapistRepository,
	sessionRepo repositories.ISessionRepository,
	accountRepo repositories.IAccountRepository,
	notifier services.NotificationServiceInterface,
	mailer services.IMailService,
) services.TherapistServiceInterface {
	return services.NewTherapistService(therapistRepo, sessionRepo, accountRepo, notifier, mailer)
}

func provideTherapistController(therapistService services.TherapistServiceInterface) *controllers.TherapistController {
	return controllers.NewTherapistController(therapistService)
}
