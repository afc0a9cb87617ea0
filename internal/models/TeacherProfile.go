// internal/models/teacher_profile.go
package models

import "gorm.io/gorm"

// TeacherProfile is the TEACHER counterpart of StudentProfile.
type TeacherProfile struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"uniqueIndex"` // Foreign key to User
	TeacherID *int64 `json:"teacher_id"`
}
