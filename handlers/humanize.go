package handlers

import (
	"net/http"
	"strings"

	"humanizer-backend/humanizer"

	"github.com/gin-gonic/gin"
)

type HumanizeInput struct {
	Text string `json:"text"`
}

// POST /humanize
// Public endpoint: rewriting costs nothing, only saving does. The
// empty-input guard lives here because the engine assumes it gets text.
func Humanize(c *gin.Context) {
	var input HumanizeInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(input.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"humanized_text": humanizer.Humanize(input.Text),
		"title":          humanizer.DeriveTitle(input.Text),
	})
}
