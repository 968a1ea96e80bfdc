package services

import (
	"math"
	"time"

	"github.com/gkxornjs/Uokjeryeok/internal/models"
)

// MonthlyStats carries the three dashboard KPIs derived from one month of
// records. Nothing here is stored; every query recomputes from the range.
type MonthlyStats struct {
	CompletionRate int `json:"completionRate"`
	ActiveDays     int `json:"activeDays"`
	StreakDays     int `json:"streakDays"`
}

type StatsRecordReader interface {
	ListByUserKeyRange(userID uint, fromKey string, toKeyExclusive string) ([]models.Record, error)
}

type StatsService struct {
	records StatsRecordReader
}

func NewStatsService(records StatsRecordReader) *StatsService {
	return &StatsService{records: records}
}

// MonthlyStatsFor computes the KPIs for the month containing monthStart.
func (service *StatsService) MonthlyStatsFor(userID uint, monthStart time.Time) (MonthlyStats, error) {
	nextMonth := monthStart.AddDate(0, 1, 0)
	records, err := service.records.ListByUserKeyRange(userID, FormatDateKey(monthStart), FormatDateKey(nextMonth))
	if err != nil {
		return MonthlyStats{}, err
	}
	return BuildMonthlyStats(records, monthStart), nil
}

// BuildMonthlyStats derives the KPIs from an already-fetched month of records.
// The streak is measured backward from the last day of the month, not from
// today: a month queried before it ends reports the run ending at month-end,
// and past months keep their final value. This mirrors the shipped dashboard
// behavior and is kept deliberately.
func BuildMonthlyStats(records []models.Record, monthStart time.Time) MonthlyStats {
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()
	activeDays := len(records)

	completionRate := int(math.Round(float64(activeDays) / float64(daysInMonth) * 100))
	if completionRate < 0 {
		completionRate = 0
	}
	if completionRate > 100 {
		completionRate = 100
	}

	present := make(map[string]bool, len(records))
	for _, record := range records {
		present[record.DateKey] = true
	}

	streakDays := 0
	lastDay := monthStart.AddDate(0, 1, -1)
	for day := lastDay; !day.Before(monthStart); day = day.AddDate(0, 0, -1) {
		if !present[FormatDateKey(day)] {
			break
		}
		streakDays++
	}

	return MonthlyStats{
		CompletionRate: completionRate,
		ActiveDays:     activeDays,
		StreakDays:     streakDays,
	}
}
