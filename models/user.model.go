package models

import (
	"gorm.io/gorm"
)

// User is an account identified by its username. The password is an opaque
// credential compared by exact equality at login.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"password,omitempty"`
}
