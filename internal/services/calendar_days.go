package services

import (
	"time"

	"github.com/gkxornjs/Uokjeryeok/internal/models"
)

// CalendarDayState is one cell of the dashboard month grid. The grid always
// spans whole Sunday-to-Saturday weeks, so leading and trailing cells can
// fall outside the queried month.
type CalendarDayState struct {
	Date       time.Time `json:"-"`
	DateKey    string    `json:"date"`
	Day        int       `json:"day"`
	InMonth    bool      `json:"inMonth"`
	IsToday    bool      `json:"isToday"`
	HasData    bool      `json:"hasData"`
	HasContent bool      `json:"hasContent"`
}

// BuildCalendarDayStates lays out the heatmap grid for the month starting at
// monthStart, marking cells that have a stored record.
func BuildCalendarDayStates(monthStart time.Time, records []models.Record, now time.Time, location *time.Location) []CalendarDayState {
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	hasRecord := make(map[string]bool, len(records))
	hasContent := make(map[string]bool, len(records))
	for _, record := range records {
		hasRecord[record.DateKey] = true
		hasContent[record.DateKey] = hasContent[record.DateKey] || record.HasContent()
	}

	todayKey := FormatDateKey(DateAtLocation(now, location))

	days := make([]CalendarDayState, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		key := FormatDateKey(day)
		days = append(days, CalendarDayState{
			Date:       day,
			DateKey:    key,
			Day:        day.Day(),
			InMonth:    day.Month() == monthStart.Month(),
			IsToday:    key == todayKey,
			HasData:    hasRecord[key],
			HasContent: hasContent[key],
		})
	}

	return days
}
