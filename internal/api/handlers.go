package api

import (
	"time"

	"github.com/gkxornjs/Uokjeryeok/internal/db"
	"github.com/gkxornjs/Uokjeryeok/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	tokenTTL     time.Duration
	authService  *services.AuthService
	records      *services.RecordService
	onboarding   *services.OnboardingService
	stats        *services.StatsService
	loginLimiter *attemptLimiter
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, tokenTTL time.Duration) *Handler {
	if location == nil {
		location = time.Local
	}
	if tokenTTL <= 0 {
		tokenTTL = defaultAuthTokenTTL
	}

	repositories := db.NewRepositories(database)

	return &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		tokenTTL:     tokenTTL,
		authService:  services.NewAuthService(repositories.Users),
		records:      services.NewRecordService(repositories.Records),
		onboarding:   services.NewOnboardingService(repositories.Onboarding),
		stats:        services.NewStatsService(repositories.Records),
		loginLimiter: newAttemptLimiter(),
	}
}
