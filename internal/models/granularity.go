package models

import (
	"fmt"
	"strings"
)

// Granularity selects which record scope a date key anchors: the day itself,
// the Monday of the week, the first of the month, or January 1st of the year.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

func ParseGranularity(raw string) (Granularity, error) {
	switch Granularity(strings.ToLower(strings.TrimSpace(raw))) {
	case GranularityDaily:
		return GranularityDaily, nil
	case GranularityWeekly:
		return GranularityWeekly, nil
	case GranularityMonthly:
		return GranularityMonthly, nil
	case GranularityYearly:
		return GranularityYearly, nil
	}
	return "", fmt.Errorf("unknown granularity %q", raw)
}
