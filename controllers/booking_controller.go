package controllers

import (
	"net/http"

	"hotelms-backend/models"
	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

type createBookingPayload struct {
	GuestID      uint   `json:"guestId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	RoomIDs      []uint `json:"roomIds" binding:"required"`
}

// POST /api/bookings
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	branchID, identity, ok := callerBranch(c)
	if !ok {
		return
	}

	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "guestId, checkInDate, checkOutDate and roomIds are required")
		return
	}

	checkIn, okIn := parseStayDate(payload.CheckInDate)
	checkOut, okOut := parseStayDate(payload.CheckOutDate)
	if !okIn || !okOut {
		utils.JSONError(c, http.StatusBadRequest, "dates must be YYYY-MM-DD or RFC 3339")
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(services.CreateBookingInput{
		GuestID:  payload.GuestID,
		BranchID: branchID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		RoomIDs:  payload.RoomIDs,
		StaffID:  identity.StaffID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "booking created", booking)
}

// GET /api/bookings
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	branchID, _, ok := callerBranch(c)
	if !ok {
		return
	}
	list, err := ctrl.BookingSvc.ListBookings(branchID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "bookings", list)
}

// GET /api/bookings/:id
func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetBookingDetails(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "booking", booking)
}

// POST /api/bookings/:id/check-in
func (ctrl *BookingController) CheckIn(c *gin.Context) {
	ctrl.lifecycle(c, ctrl.BookingSvc.CheckIn, "booking checked in")
}

// POST /api/bookings/:id/check-out
func (ctrl *BookingController) CheckOut(c *gin.Context) {
	ctrl.lifecycle(c, ctrl.BookingSvc.CheckOut, "booking checked out")
}

// POST /api/bookings/:id/cancel
func (ctrl *BookingController) Cancel(c *gin.Context) {
	ctrl.lifecycle(c, ctrl.BookingSvc.Cancel, "booking cancelled")
}

func (ctrl *BookingController) lifecycle(c *gin.Context, fn func(uint, uint) (*models.Booking, error), message string) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	_, identity, ok := callerBranch(c)
	if !ok {
		return
	}
	booking, err := fn(id, identity.StaffID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, message, booking)
}
