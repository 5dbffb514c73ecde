package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"humanizer-backend/database"
	"humanizer-backend/services"

	"github.com/gin-gonic/gin"
)

type CreateProjectInput struct {
	Title         string `json:"title"`
	OriginalText  string `json:"original_text" binding:"required"`
	HumanizedText string `json:"humanized_text" binding:"required"`
}

type UpdateProjectInput struct {
	Title         *string `json:"title"`
	OriginalText  *string `json:"original_text"`
	HumanizedText *string `json:"humanized_text"`
}

// 1. GET /api/projects (newest first, paginated)
func GetProjects(c *gin.Context) {
	userID := getUserID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	projectService := services.ProjectService{DB: database.DB}
	projects, err := projectService.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load projects"})
		return
	}

	// Slice in memory: project lists stay small per user
	total := len(projects)
	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"data": projects[offset:end],
		"meta": gin.H{
			"current_page": page,
			"limit":        limit,
			"total_data":   total,
			"total_pages":  math.Ceil(float64(total) / float64(limit)),
		},
	})
}

// 2. GET /api/projects/:id
func GetProject(c *gin.Context) {
	userID := getUserID(c)
	id := c.Param("id")

	projectService := services.ProjectService{DB: database.DB}
	project, err := projectService.Get(userID, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": project})
}

// 3. POST /api/projects (costs 1 credit)
func CreateProject(c *gin.Context) {
	userID := getUserID(c)

	var input CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projectService := services.ProjectService{DB: database.DB}
	project, err := projectService.Create(userID, input.Title, input.OriginalText, input.HumanizedText)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientCredits) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "No credits left. Please purchase more."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project saved!",
		"data":    project,
	})
}

// 4. PUT /api/projects/:id (partial edit)
func UpdateProject(c *gin.Context) {
	userID := getUserID(c)
	id := c.Param("id")

	var input UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	projectService := services.ProjectService{DB: database.DB}
	project, err := projectService.Update(userID, id, services.ProjectUpdate{
		Title:         input.Title,
		OriginalText:  input.OriginalText,
		HumanizedText: input.HumanizedText,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated!",
		"data":    project,
	})
}

// 5. DELETE /api/projects/:id
func DeleteProject(c *gin.Context) {
	userID := getUserID(c)
	id := c.Param("id")

	projectService := services.ProjectService{DB: database.DB}
	if err := projectService.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found or not yours"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
