package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentConfirmed = "CONFIRMED"
	PaymentFailed    = "FAILED"
)

// Payment records a single payment attempt against a reservation. It is
// written once and never mutated afterwards.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReservationID uint   `gorm:"index;column:reservation_id" json:"reservation_id"`
	Status        string `gorm:"column:status;size:32" json:"status"`

	// Client-generated opaque token, unique enough to avoid practical
	// collision. Not a security credential.
	TransactionID string `gorm:"column:transaction_id;type:varchar(64)" json:"transactionId"`

	ProviderResponse datatypes.JSON `gorm:"column:provider_response" json:"providerResponse,omitempty"`

	Reservation Reservation `gorm:"foreignKey:ReservationID;references:ID" json:"-"`
}
