package scheduling

import (
	"strings"
	"time"

	"anontherapy/pkg/utils"
)

// TierPolicy fixes, per plan tier, the session cadence plus the experience
// band and capacity ceiling used to gate therapist eligibility. MaxYears is
// exclusive. The Standard/Premium band overlap (15 vs 6) is carried over
// from the original business rules as-is.
type TierPolicy struct {
	SessionsPerWeek int
	TotalSessions   int // SessionsPerWeek x 4-week cycle
	MinYears        int
	MaxYears        int
	MaxClients      int
}

const (
	TierBasic    = "Basic"
	TierStandard = "Standard"
	TierPremium  = "Premium"
)

var tierPolicies = map[string]TierPolicy{
	TierBasic:    {SessionsPerWeek: 1, TotalSessions: 4, MinYears: 0, MaxYears: 5, MaxClients: 10},
	TierStandard: {SessionsPerWeek: 2, TotalSessions: 8, MinYears: 5, MaxYears: 15, MaxClients: 7},
	TierPremium:  {SessionsPerWeek: 4, TotalSessions: 16, MinYears: 6, MaxYears: 30, MaxClients: 5},
}

var therapyTypesByTier = map[string][]string{
	TierBasic: {
		"nutritional therapy",
		"adolescent therapy",
	},
	TierStandard: {
		"marriage and family therapy",
		"nutritional therapy",
		"cognitive therapy",
		"adolescent therapy",
	},
	TierPremium: {
		"clinical psychology",
		"marriage and family therapy",
		"nutritional therapy",
		"cognitive therapy",
		"adolescent therapy",
		"career & life coaching",
	},
}

var weekdayByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var canonicalDayName = map[time.Weekday]string{
	time.Sunday:    "Sunday",
	time.Monday:    "Monday",
	time.Tuesday:   "Tuesday",
	time.Wednesday: "Wednesday",
	time.Thursday:  "Thursday",
	time.Friday:    "Friday",
	time.Saturday:  "Saturday",
}

// NormalizeTier resolves a tier name case-insensitively to canonical casing.
func NormalizeTier(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "basic":
		return TierBasic, nil
	case "standard":
		return TierStandard, nil
	case "premium":
		return TierPremium, nil
	default:
		return "", utils.ErrPlanNotFound
	}
}

func PolicyFor(tier string) (TierPolicy, error) {
	canonical, err := NormalizeTier(tier)
	if err != nil {
		return TierPolicy{}, err
	}
	return tierPolicies[canonical], nil
}

// TherapyAllowed reports whether therapyType is available on the tier.
// Comparison is against the lower-cased catalog entries.
func TherapyAllowed(tier, therapyType string) bool {
	canonical, err := NormalizeTier(tier)
	if err != nil {
		return false
	}
	want := strings.ToLower(strings.TrimSpace(therapyType))
	for _, t := range therapyTypesByTier[canonical] {
		if t == want {
			return true
		}
	}
	return false
}

func TherapyTypesFor(tier string) []string {
	canonical, err := NormalizeTier(tier)
	if err != nil {
		return nil
	}
	out := make([]string, len(therapyTypesByTier[canonical]))
	copy(out, therapyTypesByTier[canonical])
	return out
}

func weekdayOf(name string) (time.Weekday, bool) {
	wd, ok := weekdayByName[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}
