package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"edu_portal/internal/config"
	"edu_portal/internal/middleware"
	"edu_portal/internal/models"
)

type registerInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

const (
	conflictMessage    = "a user with this username or email already exists"
	invalidCredentials = "Invalid username or password."
)

// RegisterStudent creates a STUDENT user; the profile sync hook adds the
// matching StudentProfile inside the same transaction.
func RegisterStudent(c *gin.Context) {
	registerWithRole(c, models.RoleStudent, "Student registered successfully!")
}

// RegisterTeacher is the TEACHER counterpart of RegisterStudent.
func RegisterTeacher(c *gin.Context) {
	registerWithRole(c, models.RoleTeacher, "Teacher registered successfully!")
}

func registerWithRole(c *gin.Context, role, successMessage string) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not hash password", "detail": err.Error()})
		return
	}

	// The handler fixes the role; a role field in the request body is ignored.
	var user models.User
	switch role {
	case models.RoleTeacher:
		user = models.NewTeacher(input.Username, input.Email, hashed)
	default:
		user = models.NewStudent(input.Username, input.Email, hashed)
	}

	if err := config.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"non_field_errors": []string{conflictMessage}})
			return
		}
		logrus.WithError(err).Error("user creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not create user", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": successMessage,
		"data":    gin.H{"username": user.Username, "email": user.Email},
	})
}

// Login verifies credentials and answers with an access/refresh token pair
// plus the caller's identity and role.
func Login(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", body.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a wrong password, so the response never
			// reveals which credential failed.
			c.JSON(http.StatusUnauthorized, gin.H{"detail": invalidCredentials})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "database error", "detail": err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": invalidCredentials})
		return
	}

	access, refresh, err := middleware.GenerateTokenPair(user.ID, user.Username, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not generate token", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"refresh":  refresh,
		"access":   access,
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"message":  "Login successful.",
	})
}

// RefreshToken redeems a refresh token for a fresh access token. The user is
// re-read so tokens for deleted accounts stop working.
func RefreshToken(c *gin.Context) {
	var body struct {
		Refresh string `json:"refresh" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	userID, err := middleware.ParseRefresh(body.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "database error", "detail": err.Error()})
		}
		return
	}

	access, err := middleware.GenerateAccessToken(user.ID, user.Username, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not generate token", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}

// ListStudents is an administrative view over every STUDENT account.
func ListStudents(c *gin.Context) {
	students, err := models.FindByRole(config.DB, models.RoleStudent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not list students", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": students})
}

// ListTeachers is an administrative view over every TEACHER account.
func ListTeachers(c *gin.Context) {
	teachers, err := models.FindByRole(config.DB, models.RoleTeacher)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not list teachers", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": teachers})
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
