package db_models

type TherapistStatus string

const (
	TherapistActive   TherapistStatus = "active"
	TherapistInactive TherapistStatus = "inactive"
	TherapistOnLeave  TherapistStatus = "on leave"
)

type Therapist struct {
	BaseModel
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Gender       string `gorm:"size:8"`
	BioData      string

	Specialization    string `gorm:"size:64;index"` // stored lower-cased
	LicenseNo         int64  `gorm:"uniqueIndex"`
	YearsOfExperience int

	Status         TherapistStatus `gorm:"size:16;default:active;index"`
	CurrentClients int             // incremented once per successful booking
	MaxClients     int

	ProfilePic string
	IsVerified bool
}
