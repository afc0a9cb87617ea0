package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"edu_portal/internal/config"
	"edu_portal/internal/models"
)

// GetProfile returns the authenticated user's core fields plus the
// role-specific profile payload.
func GetProfile(c *gin.Context) {
	// Set by RequireAuth from the access-token claims.
	userID := uint(c.MustGet("user_id").(float64))

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "User no longer exists"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not load profile", "detail": err.Error()})
		}
		return
	}

	profile, err := profilePayload(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not load profile", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile fetched successfully.",
		"data": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"role":       user.Role,
			"profile":    profile,
		},
	})
}

// profilePayload projects the role-specific sub-object. Only a missing
// profile row yields null; the sync hook should have created it, but reads
// stay defensive. Any other store error is a fault for the caller to report.
// ADMIN users never have a profile.
func profilePayload(user *models.User) (gin.H, error) {
	switch {
	case user.IsStudent():
		var p models.StudentProfile
		err := config.DB.Where("user_id = ?", user.ID).First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return gin.H{"student_id": p.StudentID}, nil
	case user.IsTeacher():
		var p models.TeacherProfile
		err := config.DB.Where("user_id = ?", user.ID).First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return gin.H{"teacher_id": p.TeacherID}, nil
	}
	return nil, nil
}
