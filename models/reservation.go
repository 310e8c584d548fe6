package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ReservationPending   = "PENDING"
	ReservationConfirmed = "CONFIRMED"
	ReservationCancelled = "CANCELLED"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index;column:user_id" json:"user_id"`
	RoomID uint `gorm:"index;column:room_id" json:"room_id"`

	CheckIn  time.Time `gorm:"column:check_in;type:date" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out;type:date" json:"check_out"`
	Nights   int       `gorm:"column:nights" json:"nights"`

	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2)" json:"totalAmount"`
	// Copied from the room at booking time so later price changes never
	// retroactively affect existing reservations.
	CleaningFee decimal.Decimal `gorm:"column:cleaning_fee;type:decimal(10,2)" json:"cleaningFee"`

	Status string `gorm:"column:status;size:32" json:"status"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
