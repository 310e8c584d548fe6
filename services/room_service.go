package services

import (
	"errors"
	"fmt"

	"hostel-backend/models"

	"gorm.io/gorm"
)

// RoomService is read-only: room inventory belongs to hostel owners and is
// never mutated through this API.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Hostel").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room_not_found")
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}
	return &room, nil
}
