package routes

import (
	"edu_portal/internal/controllers"
	"edu_portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ProfileRoutes(r *gin.Engine) {
	profile := r.Group("/profile")
	profile.Use(middleware.RequireAuth())
	{
		profile.GET("/", controllers.GetProfile)
	}
}
