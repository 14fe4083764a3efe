package models

import (
	"time"

	"user-management-api/internal/constants"
)

// User is an account record. Columns follow the user_management schema:
// auto-increment id, unique email, status defaulting to active,
// registration timestamp set once and a nullable last login.
type User struct {
	ID               uint                 `gorm:"primaryKey" json:"id"`
	Name             string               `gorm:"not null" json:"name"`
	Email            string               `gorm:"uniqueIndex;not null" json:"email"`
	Password         string               `gorm:"not null" json:"-"`
	Status           constants.UserStatus `gorm:"type:varchar(20);default:active;not null" json:"status"`
	RegistrationTime time.Time            `gorm:"autoCreateTime" json:"registrationTime"`
	LastLogin        *time.Time           `gorm:"default:null" json:"lastLogin,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsBlocked reports whether the account is barred from authenticating.
func (u *User) IsBlocked() bool {
	return u.Status == constants.StatusBlocked
}
