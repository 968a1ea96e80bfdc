package api

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	contextUserKey = "current_user"

	defaultAuthTokenTTL = 7 * 24 * time.Hour
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type signupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type onboardingInput struct {
	Gender           *string   `json:"gender"`
	AgeGroup         *string   `json:"ageGroup"`
	Occupation       *string   `json:"occupation"`
	PrimaryGoals     *[]string `json:"primaryGoals"`
	MarketingConsent *bool     `json:"marketingConsent"`
	Completed        *bool     `json:"completed"`
}

type recordUpsertInput struct {
	Date    string          `json:"date"`
	Content json.RawMessage `json:"content"`
}
