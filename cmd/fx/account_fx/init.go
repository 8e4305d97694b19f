package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"anontherapy/internal/api/controllers"
	"anontherapy/internal/repositories"
	"anontherapy/internal/services"
)

var Module = fx.Provide(
	provideAccountRepository,
	provideAccountService,
	provideAccountController,
)

func provideAccountRepository(db *gorm.DB) repositories.IAccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.IAccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
