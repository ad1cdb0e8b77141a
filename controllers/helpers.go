package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hotelms-backend/middleware"
	"hotelms-backend/models"
	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates service sentinels into the response
// envelope. Anything unrecognized is an infrastructure fault: logged and
// answered with 500, message included for the ops log, not the caller.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrNoRoomsGiven),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidAmount):
		utils.JSONError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrGuestNotFound),
		errors.Is(err, services.ErrBillNotFound),
		errors.Is(err, services.ErrServiceNotFound),
		errors.Is(err, services.ErrRoomTypeNotFound),
		errors.Is(err, services.ErrStaffNotFound),
		errors.Is(err, services.ErrBranchNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrRoomConflict),
		errors.Is(err, services.ErrRoomNotInBranch),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrOverpayment),
		errors.Is(err, services.ErrNotCheckedIn),
		errors.Is(err, services.ErrStatusNotAllowed),
		errors.Is(err, services.ErrDuplicate):
		utils.JSONError(c, http.StatusConflict, err.Error())

	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")

	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}

// callerBranch resolves the branch a request operates on: the caller's own
// branch, unless an admin explicitly asks for another via ?branchId=.
func callerBranch(c *gin.Context) (uint, middleware.StaffIdentity, bool) {
	identity, ok := middleware.Identity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return 0, identity, false
	}

	branchID := identity.BranchID
	if raw := c.Query("branchId"); raw != "" && identity.Role == models.RoleAdmin {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil && v > 0 {
			branchID = uint(v)
		}
	}
	return branchID, identity, true
}
