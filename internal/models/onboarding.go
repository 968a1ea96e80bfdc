package models

import "time"

// OnboardingProfile holds the optional profile answers collected after signup.
// At most one row exists per user; updates are field-by-field partial upserts.
type OnboardingProfile struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"uniqueIndex;not null" json:"userId"`
	Gender           string    `json:"gender"`
	AgeGroup         string    `json:"ageGroup"`
	Occupation       string    `json:"occupation"`
	PrimaryGoals     []string  `gorm:"serializer:json" json:"primaryGoals"`
	MarketingConsent bool      `gorm:"not null;default:false" json:"marketingConsent"`
	Completed        bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
