package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/doruk/courseatlas/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	tagController *controllers.TagController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Course routes (public access)
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.SearchCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("/pareto", courseController.RankCoursePage)
	}

	// Tag vocabulary routes (public access)
	tags := v1.Group("/tags")
	{
		tags.GET("", tagController.ListTagOptions)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
