package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hostel-backend/models"
	"hostel-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReservationStore is the persistence surface the submitter needs. The gorm
// implementation below is the real one; tests substitute a mock.
type ReservationStore interface {
	Transaction(fn func(tx ReservationStore) error) error
	GetRoom(id uint) (*models.Room, error)
	CreateReservation(r *models.Reservation) error
	CreatePayment(p *models.Payment) error
	ConfirmReservation(id uint) error
	ListByUser(userID uint) ([]models.Reservation, error)
}

type GormReservationStore struct {
	DB *gorm.DB
}

func NewGormReservationStore(db *gorm.DB) *GormReservationStore {
	return &GormReservationStore{DB: db}
}

func (s *GormReservationStore) Transaction(fn func(tx ReservationStore) error) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return fn(&GormReservationStore{DB: tx})
	})
}

func (s *GormReservationStore) GetRoom(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Hostel").First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *GormReservationStore) CreateReservation(r *models.Reservation) error {
	return s.DB.Create(r).Error
}

func (s *GormReservationStore) CreatePayment(p *models.Payment) error {
	return s.DB.Create(p).Error
}

func (s *GormReservationStore) ConfirmReservation(id uint) error {
	return s.DB.Model(&models.Reservation{}).
		Where("id = ?", id).
		Update("status", models.ReservationConfirmed).Error
}

func (s *GormReservationStore) ListByUser(userID uint) ([]models.Reservation, error) {
	var list []models.Reservation
	if err := s.DB.
		Preload("Room").
		Preload("Room.Hostel").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return list, nil
}

// SubmissionOutcome is the result of one booking attempt. PaymentDeclined is
// a normal business outcome: both records were written, the reservation just
// stays PENDING.
type SubmissionOutcome struct {
	Reservation     *models.Reservation `json:"reservation"`
	Payment         *models.Payment     `json:"payment"`
	PaymentDeclined bool                `json:"paymentDeclined"`
}

// ReservationService orchestrates reservation creation and payment: the only
// write path of the booking flow.
type ReservationService struct {
	Store   ReservationStore
	Gateway PaymentGateway

	now func() time.Time
}

func NewReservationService(db *gorm.DB, gateway PaymentGateway) *ReservationService {
	return &ReservationService{
		Store:   NewGormReservationStore(db),
		Gateway: gateway,
		now:     time.Now,
	}
}

// Quote prices a prospective stay for the given room. The bool mirrors
// ComputeQuote: false means the selection is incomplete, which is not an
// error for a preview.
func (s *ReservationService) Quote(roomID uint, checkIn, checkOut *time.Time) (Quote, bool, error) {
	room, err := s.Store.GetRoom(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Quote{}, false, errors.New("room_not_found")
		}
		return Quote{}, false, fmt.Errorf("failed to load room: %w", err)
	}
	q, ok := ComputeQuote(room, checkIn, checkOut)
	return q, ok, nil
}

// Submit runs the booking write sequence: create a PENDING reservation,
// attempt payment, record the payment, and confirm the reservation when the
// gateway approved. The whole sequence runs in one store transaction, so a
// hard fault at any stage leaves no artifacts; a decline commits both records
// and is reported through the outcome, not as an error.
//
// The user is passed explicitly at call time; nil means unauthenticated and
// nothing is written. A retry after any failure creates a fresh reservation.
func (s *ReservationService) Submit(ctx context.Context, user *models.User, roomID uint, checkIn, checkOut time.Time) (*SubmissionOutcome, error) {
	if user == nil || user.ID == 0 {
		return nil, errors.New("unauthenticated")
	}

	room, err := s.Store.GetRoom(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room_not_found")
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}

	quote, ok := ComputeQuote(room, &checkIn, &checkOut)
	if !ok {
		return nil, errors.New("invalid_date_range")
	}

	outcome := &SubmissionOutcome{}

	txErr := s.Store.Transaction(func(tx ReservationStore) error {
		reservation := &models.Reservation{
			UserID:      user.ID,
			RoomID:      room.ID,
			CheckIn:     dateOnly(checkIn),
			CheckOut:    dateOnly(checkOut),
			Nights:      quote.Nights,
			TotalAmount: quote.Total,
			CleaningFee: room.CleaningFee,
			Status:      models.ReservationPending,
		}
		if err := tx.CreateReservation(reservation); err != nil {
			return fmt.Errorf("reservation_create_failed: %w", err)
		}

		result := s.Gateway.Attempt(ctx, reservation)

		payload, _ := json.Marshal(result)
		status := models.PaymentFailed
		if result.Success {
			status = models.PaymentConfirmed
		}
		payment := &models.Payment{
			ReservationID:    reservation.ID,
			Status:           status,
			TransactionID:    utils.NewTransactionID(s.now()),
			ProviderResponse: datatypes.JSON(payload),
		}
		if err := tx.CreatePayment(payment); err != nil {
			return fmt.Errorf("payment_record_failed: %w", err)
		}

		if result.Success {
			if err := tx.ConfirmReservation(reservation.ID); err != nil {
				return fmt.Errorf("reservation_confirm_failed: %w", err)
			}
			reservation.Status = models.ReservationConfirmed
		}

		outcome.Reservation = reservation
		outcome.Payment = payment
		outcome.PaymentDeclined = !result.Success
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return outcome, nil
}

// ListForUser returns the user's reservations newest first, with room and
// hostel preloaded for display.
func (s *ReservationService) ListForUser(userID uint) ([]models.Reservation, error) {
	return s.Store.ListByUser(userID)
}
