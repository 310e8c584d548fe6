package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"hostel-backend/middleware"
	"hostel-backend/services"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateReservationRequest struct {
	RoomID   uint   `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

type QuoteRequest struct {
	RoomID   uint   `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// ---------------------------
// Controller
// ---------------------------

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, value); err2 == nil {
			return &t2, nil
		}
		return nil, err
	}
	return &t, nil
}

// ---------------------------
// 1) Create reservation (the booking flow)
// ---------------------------

func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "error.invalidPayload",
				"message": "room_id, check_in and check_out are required",
				"details": err.Error(),
			},
		})
		return
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil || checkIn == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDateRange", "message": "check_in must be a YYYY-MM-DD date"}})
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil || checkOut == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDateRange", "message": "check_out must be a YYYY-MM-DD date"}})
		return
	}

	user := middleware.CurrentUser(c)

	outcome, err := ctrl.ReservationSvc.Submit(c.Request.Context(), user, req.RoomID, *checkIn, *checkOut)
	if err != nil {
		log.Printf("CreateReservation error for room %d: %v", req.RoomID, err)

		switch {
		case strings.Contains(err.Error(), "unauthenticated"):
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "error.unauthenticated", "message": "You must be logged in to book."}})
			return

		case strings.Contains(err.Error(), "room_not_found"):
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.roomNotFound", "message": "The requested room does not exist."}})
			return

		case strings.Contains(err.Error(), "invalid_date_range"):
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDateRange", "message": "Check-out must be after check-in."}})
			return

		case strings.Contains(err.Error(), "reservation_create_failed"),
			strings.Contains(err.Error(), "payment_record_failed"),
			strings.Contains(err.Error(), "reservation_confirm_failed"):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"code":    "error.bookingFailed",
					"message": "We could not process your booking. Please try again.",
					"details": err.Error(),
				},
			})
			return

		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Internal error", "details": err.Error()}})
			return
		}
	}

	// A declined payment is a normal outcome: records exist, the reservation
	// stays PENDING. Rendered distinctly from hard errors.
	if outcome.PaymentDeclined {
		c.JSON(http.StatusPaymentRequired, gin.H{
			"status": "declined",
			"error": gin.H{
				"code":    "error.paymentDeclined",
				"message": "Payment failed. Please try again.",
			},
			"data": outcome,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": outcome})
}

// ---------------------------
// 2) Quote preview for the booking form
// ---------------------------

func (ctrl *ReservationController) QuoteReservation(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "room_id is required", "details": err.Error()}})
		return
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDateRange", "message": "check_in must be a YYYY-MM-DD date"}})
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDateRange", "message": "check_out must be a YYYY-MM-DD date"}})
		return
	}

	quote, ready, qErr := ctrl.ReservationSvc.Quote(req.RoomID, checkIn, checkOut)
	if qErr != nil {
		if strings.Contains(qErr.Error(), "room_not_found") {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.roomNotFound", "message": "The requested room does not exist."}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Internal error", "details": qErr.Error()}})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"quote": quote,
			"ready": ready,
		},
	})
}

// ---------------------------
// 3) My reservations
// ---------------------------

func (ctrl *ReservationController) GetMyReservations(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "error.unauthenticated", "message": "You must be logged in."}})
		return
	}

	reservations, err := ctrl.ReservationSvc.ListForUser(user.ID)
	if err != nil {
		log.Printf("GetMyReservations error for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Failed to load reservations"}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": reservations})
}
