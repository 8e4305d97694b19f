package scheduling

import (
	"encoding/json"
	"fmt"
	"time"

	"anontherapy/pkg/utils"
)

// DecodeSessionDays parses the raw sessionDays payload for a tier. Basic
// takes a single weekday as a bare string (a list is rejected); Standard and
// Premium take a list of exactly sessionsPerWeek distinct weekday names.
// Weekend days are rejected for every tier. Returned names are canonical
// ("Monday" .. "Friday").
func DecodeSessionDays(raw json.RawMessage, tier string) ([]string, error) {
	canonical, err := NormalizeTier(tier)
	if err != nil {
		return nil, err
	}
	policy := tierPolicies[canonical]

	if len(raw) == 0 {
		return nil, utils.NewValidationError("sessionDays is required")
	}

	if canonical == TierBasic {
		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, utils.NewValidationError("Basic plan takes a single session day, not a list")
		}
		return ValidateSessionDays([]string{single}, canonical)
	}

	var days []string
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, utils.NewValidationError(fmt.Sprintf("%s plan requires a list of %d session days", canonical, policy.SessionsPerWeek))
	}
	return ValidateSessionDays(days, canonical)
}

// ValidateSessionDays checks cardinality, distinctness and weekday validity
// against the tier policy and returns the canonicalized day names.
func ValidateSessionDays(days []string, tier string) ([]string, error) {
	canonical, err := NormalizeTier(tier)
	if err != nil {
		return nil, err
	}
	policy := tierPolicies[canonical]

	if len(days) != policy.SessionsPerWeek {
		return nil, utils.NewValidationError(fmt.Sprintf(
			"%s plan requires exactly %d session day(s), got %d", canonical, policy.SessionsPerWeek, len(days)))
	}

	seen := make(map[time.Weekday]bool, len(days))
	out := make([]string, 0, len(days))
	for _, day := range days {
		wd, ok := weekdayOf(day)
		if !ok {
			return nil, utils.NewValidationError(fmt.Sprintf("%q is not a valid weekday name", day))
		}
		if wd == time.Saturday || wd == time.Sunday {
			return nil, utils.NewValidationError("sessions can only be scheduled Monday through Friday")
		}
		if seen[wd] {
			return nil, utils.NewValidationError(fmt.Sprintf("duplicate session day %q", canonicalDayName[wd]))
		}
		seen[wd] = true
		out = append(out, canonicalDayName[wd])
	}
	return out, nil
}
