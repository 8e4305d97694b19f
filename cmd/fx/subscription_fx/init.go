package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"anontherapy/internal/api/controllers"
	"anontherapy/internal/repositories"
	"anontherapy/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepository,
	provideSubscriptionService,
	provideSubscriptionController,
)

func provideSubscriptionRepository(db *gorm.DB) repositories.ISubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(db *gorm.DB, subscriptionRepo repositories.ISubscriptionRepository, planRepo repositories.IPlanRepository) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(db, subscriptionRepo, planRepo)
}

func provideSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *controllers.SubscriptionController {
	return controllers.NewSubscriptionController(subscriptionService)
}
