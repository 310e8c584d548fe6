package services

import (
	"errors"
	"fmt"
	"strings"

	"hostel-backend/models"

	"gorm.io/gorm"
)

type HostelService struct {
	DB *gorm.DB
}

func NewHostelService(db *gorm.DB) *HostelService {
	return &HostelService{DB: db}
}

// HostelFilters mirrors the search sidebar: free-text query over name and
// description, city match, and the two boolean badges.
type HostelFilters struct {
	City        string
	Query       string
	Sustainable bool
	Accessible  bool
}

func (s *HostelService) Search(f HostelFilters) ([]models.Hostel, error) {
	q := s.DB.Model(&models.Hostel{})

	if city := strings.TrimSpace(f.City); city != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}
	if term := strings.TrimSpace(f.Query); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if f.Sustainable {
		q = q.Where("sustainable = ?", true)
	}
	if f.Accessible {
		q = q.Where("accessible = ?", true)
	}

	var hostels []models.Hostel
	if err := q.Order("average_rating DESC").Find(&hostels).Error; err != nil {
		return nil, fmt.Errorf("failed to search hostels: %w", err)
	}
	return hostels, nil
}

func (s *HostelService) Featured(limit int) ([]models.Hostel, error) {
	if limit <= 0 {
		limit = 3
	}
	var hostels []models.Hostel
	if err := s.DB.Order("average_rating DESC").Limit(limit).Find(&hostels).Error; err != nil {
		return nil, fmt.Errorf("failed to load featured hostels: %w", err)
	}
	return hostels, nil
}

func (s *HostelService) GetByID(id uint) (*models.Hostel, error) {
	var hostel models.Hostel
	if err := s.DB.First(&hostel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("hostel_not_found")
		}
		return nil, fmt.Errorf("failed to load hostel: %w", err)
	}
	return &hostel, nil
}

func (s *HostelService) Rooms(hostelID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("hostel_id = ?", hostelID).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}
	return rooms, nil
}
