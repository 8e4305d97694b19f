package utils

import "time"

// Unix seconds are the storage format for every date column.
func NowUnixSeconds() int64 { return time.Now().Unix() }

func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0)
}

// FormatDateDisplay renders a stored date as dd/mm/yyyy for API responses.
func FormatDateDisplay(t int64) string {
	if t <= 0 {
		return ""
	}
	return time.Unix(t, 0).Format("02/01/2006")
}

func FormatRFC3339(t int64) string {
	if t <= 0 {
		return ""
	}
	return time.Unix(t, 0).Format(time.RFC3339)
}
