package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	auth := app.Group("/auth")
	auth.Post("/signup", handler.Signup)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	onboarding := app.Group("/onboarding", handler.AuthRequired)
	onboarding.Get("", handler.GetOnboarding)
	onboarding.Post("", handler.UpsertOnboarding)

	records := app.Group("/records", handler.AuthRequired)
	records.Get("", handler.ListRecords)
	records.Get("/:date", handler.GetRecord)
	records.Post("", handler.UpsertRecord)
	records.Delete("/:date", handler.DeleteRecord)

	app.Get("/calendar", handler.AuthRequired, handler.MonthCalendar)

	stats := app.Group("/stats", handler.AuthRequired)
	stats.Get("/monthly", handler.MonthlyStats)
}
