package api

import (
	"time"

	"github.com/gkxornjs/Uokjeryeok/internal/services"
	"github.com/gofiber/fiber/v2"
)

// MonthlyStats serves the three dashboard KPIs. Without a month query the
// current calendar month is used; `?month=YYYY-MM` selects another one. The
// streak is always measured from month-end, matching the dashboard contract.
func (handler *Handler) MonthlyStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	monthStart, err := parseMonthQuery(c.Query("month"), time.Now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	stats, err := handler.stats.MonthlyStatsFor(user.ID, monthStart)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute stats")
	}

	return c.JSON(stats)
}

func parseMonthQuery(raw string, now time.Time, location *time.Location) (time.Time, error) {
	if raw == "" {
		return services.MonthStart(now, location), nil
	}
	parsed, err := time.ParseInLocation("2006-01", raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, location), nil
}
