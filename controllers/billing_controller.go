package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hotelms-backend/services"
	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
)

type BillingController struct {
	BillingSvc *services.BillingService
}

func NewBillingController(svc *services.BillingService) *BillingController {
	return &BillingController{BillingSvc: svc}
}

type generateBillPayload struct {
	Discount float64  `json:"discount"`
	TaxRate  *float64 `json:"taxRate" binding:"required"`
}

// POST /api/bills/:bookingId
func (ctrl *BillingController) GenerateBill(c *gin.Context) {
	bookingID, ok := parseUintParam(c, "bookingId")
	if !ok {
		return
	}
	_, identity, ok := callerBranch(c)
	if !ok {
		return
	}

	var payload generateBillPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "taxRate is required (fraction, e.g. 0.1)")
		return
	}

	bill, err := ctrl.BillingSvc.GenerateBill(bookingID, payload.Discount, *payload.TaxRate, identity.StaffID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "bill generated", bill)
}

// GET /api/bills/:bookingId
func (ctrl *BillingController) GetBill(c *gin.Context) {
	bookingID, ok := parseUintParam(c, "bookingId")
	if !ok {
		return
	}
	bill, err := ctrl.BillingSvc.GetBillByBooking(bookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "bill", bill)
}

type recordPaymentPayload struct {
	BillID        uint    `json:"billId" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentDate   string  `json:"paymentDate"`
}

// POST /api/payments
func (ctrl *BillingController) RecordPayment(c *gin.Context) {
	_, identity, ok := callerBranch(c)
	if !ok {
		return
	}

	var payload recordPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "billId, paymentMethod and amount are required")
		return
	}

	var paidAt time.Time
	if payload.PaymentDate != "" {
		t, okDate := parseStayDate(payload.PaymentDate)
		if !okDate {
			utils.JSONError(c, http.StatusBadRequest, "paymentDate must be YYYY-MM-DD or RFC 3339")
			return
		}
		paidAt = t
	}

	payment, err := ctrl.BillingSvc.RecordPayment(payload.BillID, payload.PaymentMethod, payload.Amount, paidAt, identity.StaffID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "payment recorded", payment)
}

// GET /api/payments?billId=
func (ctrl *BillingController) ListPayments(c *gin.Context) {
	raw := c.Query("billId")
	billID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || billID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "billId query parameter is required")
		return
	}

	payments, err := ctrl.BillingSvc.ListPayments(uint(billID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "payments", payments)
}

// GET /api/reports/revenue?from&to
func (ctrl *BillingController) RevenueReport(c *gin.Context) {
	branchID, _, ok := callerBranch(c)
	if !ok {
		return
	}

	from, okFrom := parseStayDate(c.Query("from"))
	to, okTo := parseStayDate(c.Query("to"))
	if !okFrom || !okTo || !to.After(from) {
		utils.JSONError(c, http.StatusBadRequest, "from and to are required, to must be after from")
		return
	}

	report, err := ctrl.BillingSvc.Revenue(branchID, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "revenue report", report)
}
