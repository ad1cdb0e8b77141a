package controllers

import (
	"net/http"

	"hotelms-backend/models"
	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	StaffSvc *services.StaffService
}

func NewStaffController(svc *services.StaffService) *StaffController {
	return &StaffController{StaffSvc: svc}
}

// GET /api/staff
func (ctrl *StaffController) GetStaff(c *gin.Context) {
	branchID, _, ok := callerBranch(c)
	if !ok {
		return
	}
	staff, err := ctrl.StaffSvc.ListByBranch(branchID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "staff", staff)
}

// POST /api/staff
func (ctrl *StaffController) CreateStaff(c *gin.Context) {
	branchID, identity, ok := callerBranch(c)
	if !ok {
		return
	}

	var in services.CreateStaffInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if in.BranchID == 0 {
		in.BranchID = branchID
	}

	staff, err := ctrl.StaffSvc.Create(in, identity.StaffID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "staff created", staff)
}

// DELETE /api/staff/:id
func (ctrl *StaffController) DeleteStaff(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	_, identity, ok := callerBranch(c)
	if !ok {
		return
	}
	if err := ctrl.StaffSvc.Delete(id, identity.StaffID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "staff deleted", nil)
}

// GET /api/branches
func (ctrl *StaffController) GetBranches(c *gin.Context) {
	branches, err := ctrl.StaffSvc.ListBranches()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "branches", branches)
}

// POST /api/branches
func (ctrl *StaffController) CreateBranch(c *gin.Context) {
	_, identity, ok := callerBranch(c)
	if !ok {
		return
	}

	var branch models.Branch
	if err := c.ShouldBindJSON(&branch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := ctrl.StaffSvc.CreateBranch(&branch, identity.StaffID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "branch created", branch)
}
