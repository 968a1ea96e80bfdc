package api

import (
	"github.com/gkxornjs/Uokjeryeok/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := services.ParseDateKey(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, found, err := handler.records.Fetch(user.ID, services.FormatDateKey(day))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch record")
	}
	if !found {
		// Absence is a normal empty result, mirrored to the client as null.
		return c.JSON(nil)
	}

	return c.JSON(record)
}

// ListRecords returns the caller's records with from <= date <= to, ascending.
// The dashboard uses this to load a whole month for the heatmap in one call.
func (handler *Handler) ListRecords(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, err := services.ParseDateKey(c.Query("from"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := services.ParseDateKey(c.Query("to"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if to.Before(from) {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	records, err := handler.records.ListRange(
		user.ID,
		services.FormatDateKey(from),
		services.FormatDateKey(to.AddDate(0, 0, 1)),
	)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch records")
	}

	return c.JSON(records)
}

func (handler *Handler) UpsertRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := recordUpsertInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	day, err := services.ParseDateKey(input.Date, handler.location)
	if err != nil {
		return apiValidationError(c, map[string]string{"date": "date must be YYYY-MM-DD"})
	}

	record, err := handler.records.Upsert(user.ID, services.FormatDateKey(day), input.Content)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save record")
	}

	return c.JSON(record)
}

func (handler *Handler) DeleteRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := services.ParseDateKey(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.records.Delete(user.ID, services.FormatDateKey(day)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete record")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
