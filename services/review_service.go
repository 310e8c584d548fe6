package services

import (
	"errors"
	"fmt"
	"strings"

	"hostel-backend/models"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// Create stores a review and recomputes the hostel's denormalized average
// rating in the same transaction.
func (s *ReviewService) Create(userID, hostelID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.New("invalid_rating")
	}

	var hostel models.Hostel
	if err := s.DB.First(&hostel, hostelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("hostel_not_found")
		}
		return nil, fmt.Errorf("failed to load hostel: %w", err)
	}

	review := models.Review{
		UserID:   userID,
		HostelID: hostelID,
		Rating:   rating,
	}
	if trimmed := strings.TrimSpace(comment); trimmed != "" {
		review.Comment = &trimmed
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		var avg float64
		if err := tx.Model(&models.Review{}).
			Where("hostel_id = ?", hostelID).
			Select("AVG(rating)").
			Scan(&avg).Error; err != nil {
			return fmt.Errorf("failed to compute average rating: %w", err)
		}

		return tx.Model(&models.Hostel{}).
			Where("id = ?", hostelID).
			Update("average_rating", avg).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return &review, nil
}

func (s *ReviewService) ListByHostel(hostelID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.DB.
		Preload("User").
		Where("hostel_id = ?", hostelID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	return reviews, nil
}
