package handlers

import (
	"net/http"

	"humanizer-backend/database"
	"humanizer-backend/models"
	"humanizer-backend/services"
	"humanizer-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Input validation structs
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// Helper: user id stashed by the JWT middleware
func getUserID(c *gin.Context) uint {
	id, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	return id.(uint)
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong email or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	// Profile ships with the login response so the dashboard can show
	// the credit balance right away
	profileService := services.ProfileService{DB: database.DB}
	profile, err := profileService.GetByUserID(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"user":    gin.H{"id": user.ID, "email": user.Email, "username": user.Username},
		"profile": profile,
	})
}

func Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	// 1. Passwords must match
	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password confirmation does not match"})
		return
	}

	// 2. Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
		return
	}

	newUser := models.User{
		Email:    input.Email,
		Password: string(hashedPassword),
	}

	// 3. Create user + starter profile as one unit. The signup bonus is
	// granted here and nowhere else.
	var profile *models.Profile
	profileService := services.ProfileService{DB: database.DB}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		p, err := profileService.GrantSignupBonus(tx, newUser.ID)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	// 4. Log the new account straight in
	token, err := utils.GenerateToken(newUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registration successful! You start with the free plan.",
		"token":   token,
		"user":    gin.H{"id": newUser.ID, "email": newUser.Email},
		"profile": profile,
	})
}

// GET /api/profile
func GetProfile(c *gin.Context) {
	userID := getUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	profileService := services.ProfileService{DB: database.DB}
	profile, err := profileService.GetByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    gin.H{"id": user.ID, "email": user.Email, "username": user.Username},
		"profile": profile,
	})
}
