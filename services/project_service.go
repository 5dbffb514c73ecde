package services

import (
	"errors"
	"strings"
	"time"

	"humanizer-backend/humanizer"
	"humanizer-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectService struct {
	DB *gorm.DB
}

// ProjectUpdate carries a partial edit. Nil means "leave it alone",
// so an empty string can still be distinguished from "not sent".
type ProjectUpdate struct {
	Title         *string
	OriginalText  *string
	HumanizedText *string
}

// List returns the caller's projects, newest first. No projects is an
// empty slice, not an error.
func (s *ProjectService) List(userID uint) ([]models.Project, error) {
	projects := []models.Project{}
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Get fetches one project, scoped to its owner.
func (s *ProjectService) Get(userID uint, id string) (*models.Project, error) {
	var project models.Project
	err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Create saves a rewrite and burns one credit, as a single unit: either
// the project row exists AND the balance dropped by one, or neither
// happened. The conditional UPDATE is what stops two concurrent saves
// from both spending the last credit: zero rows touched means the
// balance was already at zero and everything rolls back.
func (s *ProjectService) Create(userID uint, title, originalText, humanizedText string) (*models.Project, error) {
	if strings.TrimSpace(title) == "" {
		title = humanizer.DeriveTitle(originalText)
	}

	project := models.Project{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         title,
		OriginalText:  originalText,
		HumanizedText: humanizedText,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Profile{}).
			Where("user_id = ? AND credits > 0", userID).
			UpdateColumn("credits", gorm.Expr("credits - 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientCredits
		}

		return tx.Create(&project).Error
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Update applies the supplied fields only. UpdatedAt moves on every
// successful edit; a project someone else owns is reported as missing,
// not forbidden.
func (s *ProjectService) Update(userID uint, id string, patch ProjectUpdate) (*models.Project, error) {
	var project models.Project
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if patch.Title != nil {
			updates["title"] = *patch.Title
		}
		if patch.OriginalText != nil {
			updates["original_text"] = *patch.OriginalText
		}
		if patch.HumanizedText != nil {
			updates["humanized_text"] = *patch.HumanizedText
		}

		// An empty patch still counts as a touch
		if len(updates) == 0 {
			return tx.Model(&project).Update("updated_at", time.Now()).Error
		}

		// gorm refreshes updated_at alongside map updates
		return tx.Model(&project).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes a project for good. Deleting something already gone
// (or not yours) is NotFound, never a silent success.
func (s *ProjectService) Delete(userID uint, id string) error {
	result := s.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
