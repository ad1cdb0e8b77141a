package controllers

import (
	"net/http"

	"hotelms-backend/models"
	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

type ServiceController struct {
	UsageSvc *services.ServiceUsageService
}

func NewServiceController(svc *services.ServiceUsageService) *ServiceController {
	return &ServiceController{UsageSvc: svc}
}

// GET /api/services
func (ctrl *ServiceController) GetServices(c *gin.Context) {
	branchID, _, ok := callerBranch(c)
	if !ok {
		return
	}
	list, err := ctrl.UsageSvc.ListServices(branchID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "services", list)
}

// POST /api/services
func (ctrl *ServiceController) CreateService(c *gin.Context) {
	branchID, identity, ok := callerBranch(c)
	if !ok {
		return
	}

	var svc models.HotelService
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	svc.BranchID = branchID

	if err := ctrl.UsageSvc.CreateService(&svc, identity.StaffID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "service created", svc)
}

// PUT /api/services/:id
func (ctrl *ServiceController) UpdateService(c *gin.Context) {
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

	svc, err := ctrl.UsageSvc.UpdateService(id, updates, identity.StaffID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "service updated", svc)
}

// DELETE /api/services/:id
func (ctrl *ServiceController) DeleteService(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	_, identity, ok := callerBranch(c)
	if !ok {
		return
	}
	if err := ctrl.UsageSvc.DeleteService(id, identity.StaffID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "service deleted", nil)
}

type recordUsagePayload struct {
	ServiceID uint `json:"serviceId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// POST /api/bookings/:id/services
func (ctrl *ServiceController) RecordUsage(c *gin.Context) {
	bookingID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	_, identity, ok := callerBranch(c)
	if !ok {
		return
	}

	var payload recordUsagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "serviceId and quantity are required")
		return
	}

	usage, err := ctrl.UsageSvc.RecordUsage(bookingID, payload.ServiceID, payload.Quantity, identity.StaffID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "service usage recorded", usage)
}

// GET /api/bookings/:id/services
func (ctrl *ServiceController) ListUsage(c *gin.Context) {
	bookingID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	usages, err := ctrl.UsageSvc.ListUsage(bookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "service usage", usages)
}
