package routes

import (
	"github.com/deniz/uniscope/internal/app/controllers"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	universityController *controllers.UniversityController,
	recommendationController *controllers.RecommendationController,
	statsController *controllers.StatsController,
	healthController *controllers.HealthController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// University routes - CRUD plus structured search
	universities := v1.Group("/universities")
	{
		universities.GET("", universityController.ListUniversities)           // List with filtering, sorting and pagination
		universities.POST("", universityController.CreateUniversity)          // Create a new university record
		universities.POST("/search", universityController.SearchUniversities) // Structured search over a fresh snapshot
		universities.GET("/:id", universityController.GetUniversityByID)
		universities.PUT("/:id", universityController.UpdateUniversity)
		universities.DELETE("/:id", universityController.DeleteUniversity)
	}

	// Recommendation route - preference-based ranking
	v1.POST("/recommendations", recommendationController.Recommend)

	// Statistics routes
	v1.GET("/countries", statsController.GetCountryStats)
	v1.GET("/languages", statsController.GetLanguageStats)
	stats := v1.Group("/stats")
	{
		stats.GET("", statsController.GetPlatformStats)
		stats.GET("/ranking-ranges", statsController.GetRankingRanges)
		stats.GET("/score-ranges", statsController.GetScoreRanges)
		stats.GET("/facilities", statsController.GetFacilityStats)
	}

	// Health check endpoint (includes a database ping)
	v1.GET("/health", healthController.Health)

	// Swagger routes are set up in bootstrap.go already
}
