package scheduling

import (
	"time"

	"anontherapy/pkg/utils"
)

// Generator produces the recurring session calendar for a booking. The clock
// is injected so the walk is deterministic under test.
type Generator struct {
	now func() time.Time
}

func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// SessionDates walks the calendar forward from now and collects the tier's
// total session count on the preferred weekdays. Each date is anchored to
// noon so DST and timezone boundaries cannot shift it across a weekday, and
// only instants strictly after now are collected. The result is strictly
// ascending and its length always equals the tier total.
func (g *Generator) SessionDates(days []string, tier string) ([]time.Time, error) {
	policy, err := PolicyFor(tier)
	if err != nil {
		return nil, err
	}

	preferred := make(map[time.Weekday]bool, len(days))
	for _, day := range days {
		wd, ok := weekdayOf(day)
		if !ok {
			return nil, utils.NewValidationError("invalid weekday name: " + day)
		}
		preferred[wd] = true
	}
	if len(preferred) == 0 {
		return nil, utils.NewValidationError("no session days provided")
	}

	now := g.now()

	// Skip ahead to the first preferred weekday so "today" never counts
	// ambiguously as the start of the cycle.
	cursor := now
	for !preferred[cursor.Weekday()] {
		cursor = cursor.AddDate(0, 0, 1)
	}

	dates := make([]time.Time, 0, policy.TotalSessions)
	for len(dates) < policy.TotalSessions {
		if preferred[cursor.Weekday()] {
			anchored := time.Date(cursor.Year(), cursor.Month(), cursor.Day(), 12, 0, 0, 0, cursor.Location())
			if anchored.After(now) {
				dates = append(dates, anchored)
			}
		}
		cursor = cursor.AddDate(0, 0, 1)
	}
	return dates, nil
}
