package controllers

import (
	"log"
	"net/http"
	"strings"

	"hostel-backend/middleware"
	"hostel-backend/services"

	"github.com/gin-gonic/gin"
)

type createReviewPayload struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=500"`
}

type ReviewController struct {
	ReviewSvc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{ReviewSvc: svc}
}

func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	hostelID, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidId", "message": "Invalid hostel id"}})
		return
	}

	reviews, err := ctrl.ReviewSvc.ListByHostel(hostelID)
	if err != nil {
		log.Printf("GetReviews error for hostel %d: %v", hostelID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Failed to load reviews"}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": reviews})
}

func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	hostelID, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidId", "message": "Invalid hostel id"}})
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "error.unauthenticated", "message": "You must be logged in to review."}})
		return
	}

	var payload createReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "rating must be between 1 and 5", "details": err.Error()}})
		return
	}

	review, err := ctrl.ReviewSvc.Create(user.ID, hostelID, payload.Rating, payload.Comment)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "hostel_not_found"):
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.hostelNotFound", "message": "Hostel not found"}})
			return
		case strings.Contains(err.Error(), "invalid_rating"):
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidRating", "message": "Rating must be between 1 and 5"}})
			return
		default:
			log.Printf("CreateReview error for hostel %d: %v", hostelID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Failed to save review"}})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": review})
}
