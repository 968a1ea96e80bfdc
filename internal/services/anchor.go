package services

import (
	"time"

	"github.com/gkxornjs/Uokjeryeok/internal/models"
)

// AnchorDate maps a date to the canonical storage day for a granularity:
// the day itself, the Monday of its week, the first of its month, or
// January 1st of its year. Anchoring an already-anchored date is a no-op.
func AnchorDate(value time.Time, granularity models.Granularity, location *time.Location) time.Time {
	day := DateAtLocation(value, location)

	switch granularity {
	case models.GranularityWeekly:
		// Weeks start on Monday; a Sunday belongs to the week that began
		// six days earlier.
		offset := int(day.Weekday()) - int(time.Monday)
		if day.Weekday() == time.Sunday {
			offset = 6
		}
		return day.AddDate(0, 0, -offset)
	case models.GranularityMonthly:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	case models.GranularityYearly:
		return time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
	default:
		return day
	}
}

// AnchorKey returns the ISO YYYY-MM-DD record key for a date and granularity.
func AnchorKey(value time.Time, granularity models.Granularity, location *time.Location) string {
	return FormatDateKey(AnchorDate(value, granularity, location))
}
