package models

import (
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AfterCreate keeps a User and its role-specific profile in sync. GORM runs
// this inside the same transaction as the insert, so every creation path
// (registration handlers, administrative seeding) syncs exactly once.
func (u *User) AfterCreate(tx *gorm.DB) error {
	if err := EnsureProfile(tx, u); err != nil {
		// A sync fault must not roll back the user row; readers treat a
		// missing profile as null instead.
		logrus.WithError(err).WithField("user_id", u.ID).Warn("profile sync failed")
	}
	return nil
}

// EnsureProfile creates the profile record matching the user's role if it
// does not exist yet. ADMIN users carry no profile. Safe to call repeatedly
// for the same user.
func EnsureProfile(tx *gorm.DB, u *User) error {
	switch u.Role {
	case RoleStudent:
		profile := StudentProfile{UserID: u.ID}
		return tx.Where(StudentProfile{UserID: u.ID}).FirstOrCreate(&profile).Error
	case RoleTeacher:
		profile := TeacherProfile{UserID: u.ID}
		return tx.Where(TeacherProfile{UserID: u.ID}).FirstOrCreate(&profile).Error
	}
	return nil
}
