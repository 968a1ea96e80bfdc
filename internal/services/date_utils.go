package services

import "time"

// DateKeyLayout is the canonical ISO day format used for record keys.
const DateKeyLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func MonthStart(value time.Time, location *time.Location) time.Time {
	day := DateAtLocation(value, location)
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
}

// DaysInMonth returns the calendar length of the month containing value.
func DaysInMonth(value time.Time, location *time.Location) int {
	start := MonthStart(value, location)
	return start.AddDate(0, 1, -1).Day()
}

func FormatDateKey(value time.Time) string {
	return value.Format(DateKeyLayout)
}

func ParseDateKey(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(DateKeyLayout, raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return DateAtLocation(parsed, location), nil
}
