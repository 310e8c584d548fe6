package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type HostelController struct {
	HostelSvc *services.HostelService
}

func NewHostelController(svc *services.HostelService) *HostelController {
	return &HostelController{HostelSvc: svc}
}

func boolQuery(c *gin.Context, key string) bool {
	v := strings.ToLower(strings.TrimSpace(c.Query(key)))
	return v == "1" || v == "true"
}

func uintParam(c *gin.Context, key string) (uint, bool) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// GetHostels handles the search page: ?city=&q=&sustainable=&accessible=,
// results ordered by average rating.
func (ctrl *HostelController) GetHostels(c *gin.Context) {
	filters := services.HostelFilters{
		City:        c.Query("city"),
		Query:       c.Query("q"),
		Sustainable: boolQuery(c, "sustainable"),
		Accessible:  boolQuery(c, "accessible"),
	}

	hostels, err := ctrl.HostelSvc.Search(filters)
	if err != nil {
		log.Printf("GetHostels error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to load hostels")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, hostels)
}

func (ctrl *HostelController) GetFeaturedHostels(c *gin.Context) {
	limit := 3
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	hostels, err := ctrl.HostelSvc.Featured(limit)
	if err != nil {
		log.Printf("GetFeaturedHostels error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to load featured hostels")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, hostels)
}

func (ctrl *HostelController) GetHostelByID(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "Invalid hostel id")
		return
	}

	hostel, err := ctrl.HostelSvc.GetByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "hostel_not_found") {
			utils.JSONError(c, http.StatusNotFound, "error.hostelNotFound", "Hostel not found")
			return
		}
		log.Printf("GetHostelByID error for %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to load hostel")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, hostel)
}

func (ctrl *HostelController) GetHostelRooms(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "Invalid hostel id")
		return
	}

	rooms, err := ctrl.HostelSvc.Rooms(id)
	if err != nil {
		log.Printf("GetHostelRooms error for %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to load rooms")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, rooms)
}
