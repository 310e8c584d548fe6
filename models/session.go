package models

import (
	"time"

	"gorm.io/gorm"
)

type Session struct {
	gorm.Model

	Token     string     `gorm:"column:token;uniqueIndex;type:varchar(128)" json:"-"`
	UserID    uint       `gorm:"index;column:user_id" json:"user_id"`
	ExpiresAt *time.Time `gorm:"column:expires_at" json:"expires_at,omitempty"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}
