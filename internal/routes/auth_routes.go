package routes

import (
	"edu_portal/internal/controllers"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	register := r.Group("/register")
	{
		register.POST("/student/", controllers.RegisterStudent)
		register.POST("/teacher/", controllers.RegisterTeacher)
	}

	r.POST("/login/", controllers.Login)
	r.POST("/token/refresh/", controllers.RefreshToken)
}
