package controllers

import (
	"net/http"
	"os"
	"strconv"

	"hotelms-backend/middleware"
	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	StaffSvc  *services.StaffService
	JWTSecret string
}

func NewAuthController(svc *services.StaffService, secret string) *AuthController {
	return &AuthController{StaffSvc: svc, JWTSecret: secret}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func tokenTTLMinutes() int {
	if raw := os.Getenv("JWT_TTL_MINUTES"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return 480
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	staff, err := ctrl.StaffSvc.Authenticate(payload.Username, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, exp, err := middleware.NewAccessToken(ctrl.JWTSecret, staff.ID, staff.BranchID, staff.Role, tokenTTLMinutes())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "login successful", gin.H{
		"token":     token,
		"expiresAt": exp,
		"staff": gin.H{
			"id":        staff.ID,
			"fullName":  staff.FullName,
			"role":      staff.Role,
			"branch_id": staff.BranchID,
		},
	})
}
