package models

import "gorm.io/gorm"

// Roles a user account can carry. The role is fixed when the account is
// created; no handler changes it afterwards.
const (
	RoleAdmin   = "ADMIN"
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
)

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"uniqueIndex;not null"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Password  string `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`

	// Role-specific relations
	StudentProfile *StudentProfile `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"student_profile,omitempty"`
	TeacherProfile *TeacherProfile `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"teacher_profile,omitempty"`
}

// BeforeCreate applies the default role for accounts created without one,
// e.g. through an administrative path.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleAdmin
	}
	return nil
}

func (u *User) IsStudent() bool { return u.Role == RoleStudent }
func (u *User) IsTeacher() bool { return u.Role == RoleTeacher }

// NewStudent builds a student account. The role is set here and nowhere else,
// so callers cannot smuggle a different one in.
func NewStudent(username, email, passwordHash string) User {
	return User{Username: username, Email: email, Password: passwordHash, Role: RoleStudent}
}

// NewTeacher builds a teacher account.
func NewTeacher(username, email, passwordHash string) User {
	return User{Username: username, Email: email, Password: passwordHash, Role: RoleTeacher}
}

// FindByRole lists every user carrying the given role.
func FindByRole(db *gorm.DB, role string) ([]User, error) {
	var users []User
	err := db.Where("role = ?", role).Find(&users).Error
	return users, err
}
