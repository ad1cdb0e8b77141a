package controllers

import (
	"net/http"

	"hotelms-backend/models"
	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

// POST /api/guests
func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	branchID, identity, ok := callerBranch(c)
	if !ok {
		return
	}

	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	guest.BranchID = branchID

	if err := ctrl.GuestSvc.Create(&guest, identity.StaffID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "guest created", guest)
}

// GET /api/guests?search=
func (ctrl *GuestController) GetGuests(c *gin.Context) {
	branchID, _, ok := callerBranch(c)
	if !ok {
		return
	}
	guests, err := ctrl.GuestSvc.List(branchID, c.Query("search"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "guests", guests)
}

// GET /api/guests/:id
func (ctrl *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	guest, err := ctrl.GuestSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "guest", guest)
}

// PUT /api/guests/:id
func (ctrl *GuestController) UpdateGuest(c *gin.Context) {
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

	guest, err := ctrl.GuestSvc.Update(id, updates, identity.StaffID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "guest updated", guest)
}

// DELETE /api/guests/:id
func (ctrl *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	_, identity, ok := callerBranch(c)
	if !ok {
		return
	}
	if err := ctrl.GuestSvc.Delete(id, identity.StaffID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "guest deleted", nil)
}
