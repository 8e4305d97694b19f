package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"anontherapy/internal/api/controllers"
	"anontherapy/internal/repositories"
	"anontherapy/internal/scheduling"
	"anontherapy/internal/services"
)

var Module = fx.Provide(
	provideGenerator,
	providePreferenceRepository,
	provideBookingService,
	provideBookingController,
)

func provideGenerator() *scheduling.Generator {
	return scheduling.NewGenerator(nil)
}

func providePreferenceRepository(db *gorm.DB) repositories.IPreferenceRepository {
	return repositories.NewPreferenceRepository(db)
}

func provideBookingService(
	db *gorm.DB,
	generator *scheduling.Generator,
	preferenceRepo repositories.IPreferenceRepository,
	notifier services.NotificationServiceInterface,
	mailer services.IMailService,
) services.BookingServiceInterface {
	return services.NewBookingService(db, generator, preferenceRepo, notifier, mailer)
}

func provideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
