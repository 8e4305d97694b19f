package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"anontherapy/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := Migrate(connectionPool); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	return connectionPool
}

// Migrate creates the schema plus the partial unique indexes that make the
// one-active-subscription and one-preference-per-subscription invariants
// hold under concurrent booking calls. The application still pre-checks
// before writing; the indexes catch the read-then-write race the pre-check
// alone cannot.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Therapist{},
		&db_models.Plan{},
		&db_models.Subscription{},
		&db_models.SessionPreference{},
		&db_models.Session{},
		&db_models.Payment{},
		&db_models.Notification{},
		&db_models.BookingWaitlist{},
	)
	if err != nil {
		return err
	}

	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_subscriptions_one_active
			ON subscriptions (user_id) WHERE is_active AND deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_preferences_one_per_subscription
			ON session_preferences (subscription_id) WHERE deleted_at IS NULL`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
