package models

import (
	"time"
)

// User represents a registered member.
type User struct {
	BaseModel
	Nickname   string    `gorm:"uniqueIndex;not null" json:"nickname"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	Gender     string    `json:"gender"`
	Phone      string    `json:"phone"`
	Birth      int       `json:"birth"`
	Grade      int       `json:"grade"`
	AccessTime time.Time `json:"access_time"`
}

// IsAdmin reports whether the user holds an elevated grade.
func (u *User) IsAdmin() bool {
	return u.Grade >= 1
}
