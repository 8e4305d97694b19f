package db_models

import (
	"github.com/lib/pq"
)

type PlanName string

const (
	PlanBasic    PlanName = "Basic"
	PlanStandard PlanName = "Standard"
	PlanPremium  PlanName = "Premium"
)

type Plan struct {
	BaseModel
	Name            PlanName       `gorm:"uniqueIndex;size:16"`
	PriceMinor      int64          // 150000 = $1,500.00
	Features        pq.StringArray `gorm:"type:text[]"`
	TherapyTypes    pq.StringArray `gorm:"type:text[]"` // derived from Name, never client-supplied
	SessionsPerWeek int
	MaxSessions     int // SessionsPerWeek x 4, the monthly cycle
}
