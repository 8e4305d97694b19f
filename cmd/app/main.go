package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"anontherapy/cmd/fx/account_fx"
	"anontherapy/cmd/fx/booking_fx"
	"anontherapy/cmd/fx/db_fx"
	"anontherapy/cmd/fx/mail_fx"
	"anontherapy/cmd/fx/notification_fx"
	"anontherapy/cmd/fx/payment_fx"
	"anontherapy/cmd/fx/plan_fx"
	"anontherapy/cmd/fx/subscription_fx"
	"anontherapy/cmd/fx/therapist_fx"
	"anontherapy/internal/api/controllers"
	"anontherapy/internal/models/db_models"
	"anontherapy/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		plan_fx.Module,
		subscription_fx.Module,
		booking_fx.Module,
		payment_fx.Module,
		therapist_fx.Module,
		notification_fx.Module,
		mail_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	subscriptionController *controllers.SubscriptionController,
	bookingController *controllers.BookingController,
	paymentController *controllers.PaymentController,
	therapistController *controllers.TherapistController,
	notificationController *controllers.NotificationController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		planController,
		subscriptionController,
		bookingController,
		paymentController,
		therapistController,
		notificationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	subscriptionController *controllers.SubscriptionController,
	bookingController *controllers.BookingController,
	paymentController *controllers.PaymentController,
	therapistController *controllers.TherapistController,
	notificationController *controllers.NotificationController) {

	auth := middleware.JWTAuthMiddleware()
	clientOnly := middleware.RoleMiddleware(string(db_models.RoleClient))
	therapistOnly := middleware.RoleMiddleware(string(db_models.RoleTherapist))
	adminOnly := middleware.RoleMiddleware(string(db_models.RoleAdmin))

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	plans := r.Group("/plans")
	plans.GET("", planController.GetAllPlans)
	plans.GET("/:name", planController.GetPlanByName)
	plans.POST("", auth, adminOnly, planController.CreatePlan)

	subscriptions := r.Group("/subscriptions", auth, clientOnly)
	subscriptions.POST("", subscriptionController.Subscribe)
	subscriptions.GET("", subscriptionController.History)
	subscriptions.GET("/active", subscriptionController.GetActive)
	subscriptions.DELETE("/active", subscriptionController.Cancel)
	subscriptions.POST("/:id/waitlist", subscriptionController.Waitlist)

	bookings := r.Group("/bookings", auth, clientOnly)
	bookings.POST("", bookingController.CreateBooking)
	bookings.GET("/me", bookingController.GetBooking)

	payments := r.Group("/payments", auth, clientOnly)
	payments.POST("/initialize", paymentController.Initialize)
	payments.POST("/:reference/confirm", paymentController.Confirm)
	payments.GET("", paymentController.History)

	therapists := r.Group("/therapists")
	therapists.POST("/register", therapistController.Register)
	therapists.POST("/login", therapistController.Login)
	therapists.GET("/availability", therapistController.Availability)
	therapists.GET("/sessions", auth, therapistOnly, therapistController.ListSessions)
	therapists.PUT("/sessions/:id/time", auth, therapistOnly, therapistController.AssignTime)
	therapists.PUT("/sessions/:id/status", auth, therapistOnly, therapistController.UpdateSessionStatus)
	therapists.PUT("/sessions/:id/reschedule", auth, therapistOnly, therapistController.Reschedule)

	notifications := r.Group("/notifications", auth)
	notifications.GET("", notificationController.GetMissed)
	notifications.PUT("/:id/read", notificationController.MarkAsRead)
	notifications.PUT("/read-all", notificationController.MarkAllAsRead)
	notifications.DELETE("", notificationController.DeleteAll)
}
