package db_models

type AccountRole string

const (
	RoleClient    AccountRole = "client"
	RoleTherapist AccountRole = "therapist"
	RoleAdmin     AccountRole = "admin"
)

type Account struct {
	BaseModel
	Username     string      `gorm:"not null"`
	Email        string      `gorm:"uniqueIndex;not null"`
	PasswordHash string      `gorm:"not null"`
	Gender       string      `gorm:"size:8"`
	Role         AccountRole `gorm:"size:16;default:client"`
	IsVerified   bool
}
