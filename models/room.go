package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Room is a bookable unit. Read-only from the client's perspective: owners
// manage inventory out of band, the API never mutates rooms.
type Room struct {
	gorm.Model

	HostelID uint `json:"hostelId" gorm:"index;column:hostel_id"`

	Type        string `json:"type" gorm:"type:varchar(128)"`
	BedType     string `json:"bedType" gorm:"column:bed_type;type:varchar(128)"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description" gorm:"type:text"`

	NightlyRate decimal.Decimal `json:"nightlyRate" gorm:"column:nightly_rate;type:decimal(10,2)"`
	CleaningFee decimal.Decimal `json:"cleaningFee" gorm:"column:cleaning_fee;type:decimal(10,2)"`

	Hostel Hostel `gorm:"foreignKey:HostelID;references:ID" json:"hostel,omitempty"`
}
