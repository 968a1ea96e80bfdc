package api

import (
	"github.com/gkxornjs/Uokjeryeok/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetOnboarding(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := handler.onboarding.Get(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load onboarding")
	}

	return c.JSON(profile)
}

func (handler *Handler) UpsertOnboarding(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := onboardingInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	profile, err := handler.onboarding.Upsert(user.ID, services.OnboardingUpdate{
		Gender:           input.Gender,
		AgeGroup:         input.AgeGroup,
		Occupation:       input.Occupation,
		PrimaryGoals:     input.PrimaryGoals,
		MarketingConsent: input.MarketingConsent,
		Completed:        input.Completed,
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save onboarding")
	}

	return c.JSON(profile)
}
