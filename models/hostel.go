package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hostel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `json:"name" gorm:"type:varchar(255)"`
	City        string `json:"city" gorm:"index;type:varchar(128)"`
	Address     string `json:"address" gorm:"type:varchar(255)"`
	Description string `json:"description" gorm:"type:text"`

	Sustainable bool `json:"sustainable" gorm:"column:sustainable;default:false"`
	Accessible  bool `json:"accessible" gorm:"column:accessible;default:false"`

	// Denormalized; recomputed whenever a review is created.
	AverageRating float64 `json:"averageRating" gorm:"column:average_rating;default:0"`

	Photos    datatypes.JSON `json:"photos,omitempty" gorm:"column:photos"`
	Amenities datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`

	Rooms []Room `gorm:"foreignKey:HostelID" json:"rooms,omitempty"`
}
