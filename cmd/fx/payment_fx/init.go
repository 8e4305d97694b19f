package payment_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"anontherapy/internal/api/controllers"
	"anontherapy/internal/repositories"
	"anontherapy/internal/services"
	"anontherapy/pkg/memcache"
)

var Module = fx.Provide(
	providePaymentRepository,
	provideReferenceGuard,
	providePaymentGateway,
	providePaymentService,
	providePaymentController,
)

func providePaymentRepository(db *gorm.DB) repositories.IPaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func provideReferenceGuard() memcache.ReferenceGuard {
	return memcache.NewReferenceHolds()
}

func providePaymentGateway() services.PaymentGateway {
	cfg := services.PayOSConfig{
		ClientID:     os.Getenv("PAYOS_CLIENT_ID"),
		ApiKey:       os.Getenv("PAYOS_API_KEY"),
		ChecksumKey:  os.Getenv("PAYOS_CHECKSUM_KEY"),
		ReturnURL:    os.Getenv("PAYOS_RETURN_URL"),
		CancelURL:    os.Getenv("PAYOS_CANCEL_URL"),
		ProviderName: "payos",
	}

	gateway, err := services.NewPayOSGateway(cfg)
	if err != nil {
		log.Printf("Error initializing payment gateway: %v", err)
	}
	return gateway
}

func providePaymentService(
	db *gorm.DB,
	paymentRepo repositories.IPaymentRepository,
	subscriptionRepo repositories.ISubscriptionRepository,
	gateway services.PaymentGateway,
	refs memcache.ReferenceGuard,
) services.PaymentServiceInterface {
	return services.NewPaymentService(db, paymentRepo, subscriptionRepo, gateway, refs)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
