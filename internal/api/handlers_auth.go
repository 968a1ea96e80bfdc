package api

import (
	"time"

	"github.com/gkxornjs/Uokjeryeok/internal/models"
	"github.com/gkxornjs/Uokjeryeok/internal/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) Signup(c *fiber.Ctx) error {
	input := signupInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	name, email, password, fieldErrors := services.ValidateSignupInput(input.Name, input.Email, input.Password)
	if fieldErrors != nil {
		return apiValidationError(c, fieldErrors)
	}

	exists, err := handler.authService.SignupEmailExists(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().In(handler.location),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		// The unique email index is the final arbiter under concurrent signups.
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	return c.JSON(fiber.Map{"id": user.ID})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	const loginAttemptsLimit = 8
	const loginAttemptsWindow = 15 * time.Minute

	now := time.Now().In(handler.location)
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.FindByNormalizedEmail(email)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.loginLimiter.reset(limiterKey)

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}
