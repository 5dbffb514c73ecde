package services

import (
	"errors"

	"humanizer-backend/models"

	"gorm.io/gorm"
)

type ProfileService struct {
	DB *gorm.DB
}

// GetByUserID fetches the profile owning the credit balance.
func (s *ProfileService) GetByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := s.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// GrantSignupBonus creates the initial profile for a fresh account:
// free plan, starter credits. Called exactly once, from registration,
// inside the same transaction that creates the user row.
func (s *ProfileService) GrantSignupBonus(tx *gorm.DB, userID uint) (*models.Profile, error) {
	profile := models.Profile{
		UserID:  userID,
		Plan:    models.PlanFree,
		Credits: models.FreeSignupCredits,
	}
	if err := tx.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Purchase resolves the plan against the catalog, adds its credits on
// top of whatever is left (credits accumulate, they are never reset)
// and switches the profile to the new plan.
func (s *ProfileService) Purchase(userID uint, planID string) (*models.Profile, error) {
	tier, ok := models.TierByID(planID)
	if !ok {
		return nil, ErrUnknownPlan
	}

	var profile models.Profile
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		result := tx.Model(&models.Profile{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"credits": gorm.Expr("credits + ?", tier.Credits),
				"plan":    tier.ID,
			})
		if result.Error != nil {
			return result.Error
		}

		// Re-read so the caller sees the balance after the top-up
		return tx.Where("user_id = ?", userID).First(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
