package services

import (
	"path/filepath"
	"testing"

	"humanizer-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB gives each test its own sqlite file under t.TempDir().
// The pool is capped at one connection so sqlite's single-writer model
// never surfaces as "database is locked" in concurrent tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Project{}))
	return db
}

// seedUser creates a user plus a profile with the given balance.
func seedUser(t *testing.T, db *gorm.DB, email string, credits int) uint {
	t.Helper()

	user := models.User{Email: email, Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	profile := models.Profile{UserID: user.ID, Plan: models.PlanFree, Credits: credits}
	require.NoError(t, db.Create(&profile).Error)

	return user.ID
}

func currentCredits(t *testing.T, db *gorm.DB, userID uint) int {
	t.Helper()

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", userID).First(&profile).Error)
	return profile.Credits
}
