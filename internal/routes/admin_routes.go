package routes

import (
	"edu_portal/internal/controllers"
	"edu_portal/internal/middleware"
	"edu_portal/internal/models"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuthWithRole(models.RoleAdmin))
	{
		admin.GET("/students", controllers.ListStudents)
		admin.GET("/teachers", controllers.ListTeachers)
	}
}
