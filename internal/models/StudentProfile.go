// internal/models/student_profile.go
package models

import "gorm.io/gorm"

// StudentProfile holds the student-specific fields for a User with the
// STUDENT role. Exactly one exists per student user; the sync hook creates it
// right after the user row is written.
type StudentProfile struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"uniqueIndex"` // Foreign key to User
	StudentID *int64 `json:"student_id"`
	// Email, Password and Role live on the User model, not here.
}
