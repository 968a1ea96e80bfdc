package db

import (
	"github.com/gkxornjs/Uokjeryeok/internal/models"
	"gorm.io/gorm"
)

type OnboardingRepository struct {
	database *gorm.DB
}

func NewOnboardingRepository(database *gorm.DB) *OnboardingRepository {
	return &OnboardingRepository{database: database}
}

func (repo *OnboardingRepository) FindByUserID(userID uint) (models.OnboardingProfile, bool, error) {
	profile := models.OnboardingProfile{}
	result := repo.database.
		Where("user_id = ?", userID).
		Limit(1).
		Find(&profile)
	if result.Error != nil {
		return models.OnboardingProfile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.OnboardingProfile{}, false, nil
	}
	return profile, true, nil
}

func (repo *OnboardingRepository) Create(profile *models.OnboardingProfile) error {
	return repo.database.Create(profile).Error
}

func (repo *OnboardingRepository) Save(profile *models.OnboardingProfile) error {
	return repo.database.Save(profile).Error
}
