package main

import (
	"log"
	"os"

	"humanizer-backend/database"
	"humanizer-backend/handlers"
	"humanizer-backend/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	database.ConnectDatabase()

	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// Public Routes
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/humanize", handlers.Humanize) // free to try, credits only gate saving
	r.GET("/pricing", handlers.GetPricing)

	// Protected Routes (token required)
	api := r.Group("/api")
	api.Use(middleware.JwtAuthMiddleware())
	{
		api.GET("/profile", handlers.GetProfile)

		api.GET("/projects", handlers.GetProjects)
		api.POST("/projects", handlers.CreateProject)
		api.GET("/projects/:id", handlers.GetProject)
		api.PUT("/projects/:id", handlers.UpdateProject)
		api.DELETE("/projects/:id", handlers.DeleteProject)

		api.POST("/purchase", handlers.Purchase)
		api.GET("/export", handlers.ExportExcel)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
