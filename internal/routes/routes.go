package routes

import (
	"net/http"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Request logging + panic recovery
	r.Use(ginlogger.SetLogger())
	r.Use(gin.Recovery())

	AuthRoutes(r)
	ProfileRoutes(r)
	SnippetRoutes(r)
	AdminRoutes(r)

	// Unmatched routes answer with the same structured body shape as every
	// other error response.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"detail":      "The requested resource was not found.",
			"status_code": http.StatusNotFound,
			"error":       true,
		})
	})

	return r
}
