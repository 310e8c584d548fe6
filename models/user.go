package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	FullName string `json:"fullName"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password string `json:"-" gorm:"column:password_hash;type:varchar(255)"`
}

// PublicUser is the shape returned to clients (never includes the hash).
type PublicUser struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, FullName: u.FullName, Email: u.Email}
}
