package notification_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"anontherapy/internal/api/controllers"
	"anontherapy/internal/repositories"
	"anontherapy/internal/services"
)

var Module = fx.Provide(
	provideNotificationRepository,
	provideDeliverer,
	provideNotificationService,
	provideNotificationController,
)

func provideNotificationRepository(db *gorm.DB) repositories.INotificationRepository {
	return repositories.NewNotificationRepository(db)
}

// The missed-notification store works without a live channel; plug a socket
// deliverer here when one exists.
func provideDeliverer() services.LiveDeliverer {
	return &services.NoopDeliverer{}
}

func provideNotificationService(notificationRepo repositories.INotificationRepository, deliverer services.LiveDeliverer) services.NotificationServiceInterface {
	return services.NewNotificationService(notificationRepo, deliverer)
}

func provideNotificationController(notificationService services.NotificationServiceInterface) *controllers.NotificationController {
	return controllers.NewNotificationController(notificationService)
}
