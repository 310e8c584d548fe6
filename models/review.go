package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID   uint `gorm:"index;column:user_id" json:"user_id"`
	HostelID uint `gorm:"index;column:hostel_id" json:"hostel_id"`

	Rating  int     `gorm:"column:rating" json:"rating"`
	Comment *string `gorm:"column:comment;type:varchar(500)" json:"comment,omitempty"`

	User   User   `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Hostel Hostel `gorm:"foreignKey:HostelID;references:ID" json:"-"`
}
