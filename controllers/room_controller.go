package controllers

import (
	"log"
	"net/http"
	"strings"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetRoomByID returns a room with its hostel, as the booking page needs both.
func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "Invalid room id")
		return
	}

	room, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "room_not_found") {
			utils.JSONError(c, http.StatusNotFound, "error.roomNotFound", "Room not found")
			return
		}
		log.Printf("GetRoomByID error for %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to load room")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, room)
}
