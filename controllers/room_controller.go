package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hotelms-backend/models"
	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc    *services.RoomService
	BookingSvc *services.BookingService
}

func NewRoomController(roomSvc *services.RoomService, bookingSvc *services.BookingService) *RoomController {
	return &RoomController{RoomSvc: roomSvc, BookingSvc: bookingSvc}
}

// parseStayDate accepts a bare date or a full RFC 3339 timestamp, matching
// what the frontend's date pickers send.
func parseStayDate(raw string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// GET /api/rooms/available?checkInDate&checkOutDate&roomTypeId
func (ctrl *RoomController) GetAvailableRooms(c *gin.Context) {
	branchID, _, ok := callerBranch(c)
	if !ok {
		return
	}

	checkIn, okIn := parseStayDate(c.Query("checkInDate"))
	checkOut, okOut := parseStayDate(c.Query("checkOutDate"))
	if !okIn || !okOut {
		utils.JSONError(c, http.StatusBadRequest, "checkInDate and checkOutDate are required (YYYY-MM-DD or RFC 3339)")
		return
	}

	var roomTypeID *uint
	if raw := c.Query("roomTypeId"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || v == 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid roomTypeId")
			return
		}
		id := uint(v)
		roomTypeID = &id
	}

	rooms, err := ctrl.BookingSvc.FindAvailableRooms(branchID, checkIn, checkOut, roomTypeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "available rooms", rooms)
}

// GET /api/rooms
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	branchID, _, ok := callerBranch(c)
	if !ok {
		return
	}
	rooms, err := ctrl.RoomSvc.ListByBranch(branchID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "rooms", rooms)
}

// POST /api/rooms
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	branchID, identity, ok := callerBranch(c)
	if !ok {
		return
	}

	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	room.BranchID = branchID

	if err := ctrl.RoomSvc.Create(&room, identity.StaffID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "room created", room)
}

// PATCH /api/rooms/:id
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	_, identity, ok := callerBranch(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := ctrl.RoomSvc.Update(id, updates, identity.StaffID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "room updated", room)
}

// PATCH /api/rooms/:id/status
func (ctrl *RoomController) SetRoomStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	_, identity, ok := callerBranch(c)
	if !ok {
		return
	}

	var payload struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	room, err := ctrl.RoomSvc.SetStatus(id, payload.Status, identity.StaffID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "room status updated", room)
}

// DELETE /api/rooms/:id
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	_, identity, ok := callerBranch(c)
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.Delete(id, identity.StaffID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "room deleted", nil)
}

// GET /api/room-types
func (ctrl *RoomController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.RoomSvc.ListRoomTypes()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "room types", types)
}

// POST /api/room-types
func (ctrl *RoomController) CreateRoomType(c *gin.Context) {
	_, identity, ok := callerBranch(c)
	if !ok {
		return
	}

	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := ctrl.RoomSvc.CreateRoomType(&rt, identity.StaffID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "room type created", rt)
}

// DELETE /api/room-types/:id
func (ctrl *RoomController) DeleteRoomType(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	_, identity, ok := callerBranch(c)
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.DeleteRoomType(id, identity.StaffID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "room type deleted", nil)
}
