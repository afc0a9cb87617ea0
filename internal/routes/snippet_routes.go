package routes

import (
	"edu_portal/internal/controllers"
	"edu_portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SnippetRoutes(r *gin.Engine) {
	// Snippets are readable and writable anonymously; a valid token just
	// attaches the caller as owner on create.
	snippets := r.Group("/snippets")
	snippets.Use(middleware.OptionalAuth())
	{
		snippets.GET("/", controllers.ListSnippets)
		snippets.POST("/", controllers.CreateSnippet)
		snippets.GET("/:id", controllers.GetSnippet)
		snippets.PUT("/:id", controllers.UpdateSnippet)
		snippets.DELETE("/:id", controllers.DeleteSnippet)
	}
}
