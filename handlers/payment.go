package handlers

import (
	"errors"
	"net/http"

	"humanizer-backend/database"
	"humanizer-backend/models"
	"humanizer-backend/services"

	"github.com/gin-gonic/gin"
)

// PurchaseInput carries the simulated checkout form. The card fields
// are required so the form feels real, but they are never stored,
// never charged and never sent anywhere.
type PurchaseInput struct {
	PlanID     string `json:"plan_id" binding:"required"`
	CardNumber string `json:"card_number" binding:"required"`
	CardName   string `json:"card_name" binding:"required"`
	ExpiryDate string `json:"expiry_date" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
}

// GET /pricing
func GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": models.PricingTiers})
}

// POST /api/purchase
// Simulated payment: every well-formed purchase of a known plan
// succeeds. Credits stack on top of the current balance.
func Purchase(c *gin.Context) {
	userID := getUserID(c)

	var input PurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment details incomplete", "details": err.Error()})
		return
	}

	profileService := services.ProfileService{DB: database.DB}
	profile, err := profileService.Purchase(userID, input.PlanID)
	if err != nil {
		if errors.Is(err, services.ErrUnknownPlan) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan: " + input.PlanID})
			return
		}
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment successful! Your credits have been added to your account.",
		"profile": profile,
	})
}
