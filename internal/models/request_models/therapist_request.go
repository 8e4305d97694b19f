package request_models

type RegisterTherapistRequest struct {
	FirstName         string `json:"firstName" binding:"required"`
	LastName          string `json:"lastName" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required,min=8"`
	Gender            string `json:"gender" binding:"required,oneof=male female"`
	Specialization    string `json:"specialization" binding:"required"`
	YearsOfExperience int    `json:"yearsOfExperience" binding:"required,min=0"`
	LicenseNo         int64  `json:"licenseNo" binding:"required"`
	BioData           string `json:"bioData"`
}

type AssignTimeRequest struct {
	ScheduledTime string `json:"scheduledTime" binding:"required"` // "HH:MM"
}

type SessionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=completed canceled no-show"`
	Notes  string `json:"notes"`
}

type RescheduleSessionRequest struct {
	NewDate string `json:"newDate" binding:"required"` // RFC 3339
	NewTime string `json:"newTime"`                    // "HH:MM"
}
