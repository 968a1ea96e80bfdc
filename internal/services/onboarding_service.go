package services

import "github.com/gkxornjs/Uokjeryeok/internal/models"

type OnboardingRepository interface {
	FindByUserID(userID uint) (models.OnboardingProfile, bool, error)
	Create(profile *models.OnboardingProfile) error
	Save(profile *models.OnboardingProfile) error
}

// OnboardingUpdate carries the fields of a profile upsert. Nil pointers mean
// "leave the stored value alone"; only provided fields are written.
type OnboardingUpdate struct {
	Gender           *string
	AgeGroup         *string
	Occupation       *string
	PrimaryGoals     *[]string
	MarketingConsent *bool
	Completed        *bool
}

type OnboardingService struct {
	profiles OnboardingRepository
}

func NewOnboardingService(profiles OnboardingRepository) *OnboardingService {
	return &OnboardingService{profiles: profiles}
}

// Get returns the stored profile, or a defaulted-empty one when the user has
// never saved onboarding answers. Absence is not an error.
func (service *OnboardingService) Get(userID uint) (models.OnboardingProfile, error) {
	profile, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.OnboardingProfile{}, err
	}
	if !found {
		return emptyProfile(userID), nil
	}
	if profile.PrimaryGoals == nil {
		profile.PrimaryGoals = []string{}
	}
	return profile, nil
}

// Upsert applies a partial update, creating the profile on first save.
func (service *OnboardingService) Upsert(userID uint, update OnboardingUpdate) (models.OnboardingProfile, error) {
	profile, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.OnboardingProfile{}, err
	}
	if !found {
		profile = emptyProfile(userID)
	}

	if update.Gender != nil {
		profile.Gender = *update.Gender
	}
	if update.AgeGroup != nil {
		profile.AgeGroup = *update.AgeGroup
	}
	if update.Occupation != nil {
		profile.Occupation = *update.Occupation
	}
	if update.PrimaryGoals != nil {
		profile.PrimaryGoals = append([]string{}, (*update.PrimaryGoals)...)
	}
	if update.MarketingConsent != nil {
		profile.MarketingConsent = *update.MarketingConsent
	}
	if update.Completed != nil {
		profile.Completed = *update.Completed
	}

	if !found {
		if err := service.profiles.Create(&profile); err != nil {
			return models.OnboardingProfile{}, err
		}
		return profile, nil
	}
	if err := service.profiles.Save(&profile); err != nil {
		return models.OnboardingProfile{}, err
	}
	return profile, nil
}

func emptyProfile(userID uint) models.OnboardingProfile {
	return models.OnboardingProfile{
		UserID:       userID,
		PrimaryGoals: []string{},
	}
}
