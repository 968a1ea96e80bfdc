package api

import (
	"time"

	"github.com/gkxornjs/Uokjeryeok/internal/services"
	"github.com/gofiber/fiber/v2"
)

// MonthCalendar serves the dashboard month grid: whole Sunday-to-Saturday
// weeks with per-day record flags. `?month=YYYY-MM` selects the month, the
// current one by default.
func (handler *Handler) MonthCalendar(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now()
	monthStart, err := parseMonthQuery(c.Query("month"), now, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	records, err := handler.records.ListRange(
		user.ID,
		services.FormatDateKey(monthStart),
		services.FormatDateKey(monthStart.AddDate(0, 1, 0)),
	)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch records")
	}

	days := services.BuildCalendarDayStates(monthStart, records, now, handler.location)
	return c.JSON(days)
}
