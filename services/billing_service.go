package services

import (
	"errors"
	"fmt"
	"time"

	"hotelms-backend/models"
	"hotelms-backend/utils"

	"gorm.io/gorm"
)

// float64 amounts compare within this slack so a payment equal to the total
// is never rejected over representation noise.
const amountEpsilon = 1e-6

// BillingService computes bills and records payments against them.
type BillingService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewBillingService(db *gorm.DB, audit *AuditService) *BillingService {
	return &BillingService{DB: db, Audit: audit}
}

// GenerateBill computes the charges for a booking and upserts its bill.
// Room charges are nightly rate times the rounded stay length per room;
// service charges always use the snapshotted price-at-usage. A negative
// subtotal after the flat discount clamps to zero. Regeneration updates the
// amount columns in place and leaves payment status alone: status is owned
// by RecordPayment.
func (s *BillingService) GenerateBill(bookingID uint, discount, taxRate float64, staffID uint) (*models.Bill, error) {
	if discount < 0 {
		return nil, fmt.Errorf("%w: discount cannot be negative", ErrInvalidAmount)
	}
	if taxRate < 0 {
		return nil, fmt.Errorf("%w: tax rate cannot be negative", ErrInvalidAmount)
	}

	var booking models.Booking
	if err := s.DB.Preload("Rooms.Room.RoomType").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}

	days := utils.DaysBetween(booking.CheckIn, booking.CheckOut)

	var roomCharges float64
	for _, br := range booking.Rooms {
		roomCharges += br.Room.RoomType.NightlyRate * float64(days)
	}

	var usages []models.ServiceUsage
	if err := s.DB.Where("booking_id = ?", bookingID).Find(&usages).Error; err != nil {
		return nil, fmt.Errorf("failed to load service usage for booking %d: %w", bookingID, err)
	}
	var serviceCharges float64
	for _, u := range usages {
		serviceCharges += float64(u.Quantity) * u.PriceAtUsage
	}

	subtotal := roomCharges + serviceCharges - discount
	if subtotal < 0 {
		subtotal = 0
	}
	tax := subtotal * taxRate
	total := subtotal + tax

	var bill models.Bill
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		err := lockForUpdate(tx).Where("booking_id = ?", bookingID).First(&bill).Error
		switch {
		case err == nil:
			// Amounts only; payment status stays whatever payments made it.
			return tx.Model(&bill).Updates(map[string]interface{}{
				"room_charges":    roomCharges,
				"service_charges": serviceCharges,
				"discount":        discount,
				"tax":             tax,
				"total":           total,
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			bill = models.Bill{
				BookingID:      bookingID,
				RoomCharges:    roomCharges,
				ServiceCharges: serviceCharges,
				Discount:       discount,
				Tax:            tax,
				Total:          total,
				PaymentStatus:  models.BillStatusPending,
			}
			return tx.Create(&bill).Error
		default:
			return fmt.Errorf("failed to look up bill for booking %d: %w", bookingID, err)
		}
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Audit.Record(staffID, "bill", bill.ID, "generate",
		map[string]interface{}{"booking_id": bookingID, "total": total})

	if err := s.DB.First(&bill, bill.ID).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

// RecordPayment validates a payment against the bill's remaining balance,
// inserts it and rolls the bill's payment status forward. The bill row is
// locked for the duration so two concurrent partial payments cannot both
// pass the balance check.
func (s *BillingService) RecordPayment(billID uint, method string, amount float64, paidAt time.Time, staffID uint) (*models.Payment, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	var payment models.Payment
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var bill models.Bill
		if err := lockForUpdate(tx).First(&bill, billID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: bill %d", ErrBillNotFound, billID)
			}
			return fmt.Errorf("failed to load bill %d: %w", billID, err)
		}

		var paid float64
		if err := tx.Model(&models.Payment{}).
			Where("bill_id = ?", billID).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&paid).Error; err != nil {
			return fmt.Errorf("failed to sum payments for bill %d: %w", billID, err)
		}

		// The check runs against the remaining balance, not the raw total:
		// partial payments must not add up past the bill.
		remaining := bill.Total - paid
		if amount > remaining+amountEpsilon {
			return fmt.Errorf("%w: %.2f exceeds remaining balance %.2f", ErrOverpayment, amount, remaining)
		}

		payment = models.Payment{
			BillID: billID,
			Amount: amount,
			Method: method,
			PaidAt: paidAt,
			Status: "completed",
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}

		paid += amount
		status := models.BillStatusPending
		switch {
		case paid >= bill.Total-amountEpsilon:
			status = models.BillStatusPaid
		case paid > 0:
			status = models.BillStatusPartiallyPaid
		}
		if status != bill.PaymentStatus {
			if err := tx.Model(&bill).Update("payment_status", status).Error; err != nil {
				return fmt.Errorf("failed to update bill status: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Audit.Record(staffID, "payment", payment.ID, "record",
		map[string]interface{}{"bill_id": billID, "amount": amount, "method": method})

	return &payment, nil
}

// GetBillByBooking loads a booking's bill with its payments.
func (s *BillingService) GetBillByBooking(bookingID uint) (*models.Bill, error) {
	var bill models.Bill
	if err := s.DB.Preload("Payments").Where("booking_id = ?", bookingID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBillNotFound, bookingID)
		}
		return nil, fmt.Errorf("failed to load bill: %w", err)
	}
	return &bill, nil
}

// ListPayments returns a bill's payments, oldest first.
func (s *BillingService) ListPayments(billID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.DB.Where("bill_id = ?", billID).Order("paid_at ASC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// RevenueReport aggregates billed and collected amounts for a branch over a
// bill-creation window.
type RevenueReport struct {
	BranchID  uint    `json:"branch_id"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Billed    float64 `json:"billed"`
	Collected float64 `json:"collected"`
	BillCount int64   `json:"billCount"`
}

func (s *BillingService) Revenue(branchID uint, from, to time.Time) (*RevenueReport, error) {
	report := &RevenueReport{
		BranchID: branchID,
		From:     from.Format("2006-01-02"),
		To:       to.Format("2006-01-02"),
	}

	billRows := func() *gorm.DB {
		return s.DB.Model(&models.Bill{}).
			Joins("JOIN bookings ON bookings.id = bills.booking_id").
			Where("bookings.branch_id = ?", branchID).
			Where("bills.created_at >= ? AND bills.created_at < ?", from, to)
	}

	if err := billRows().Count(&report.BillCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count bills: %w", err)
	}
	if err := billRows().Select("COALESCE(SUM(bills.total), 0)").Scan(&report.Billed).Error; err != nil {
		return nil, fmt.Errorf("failed to sum bills: %w", err)
	}

	if err := s.DB.Model(&models.Payment{}).
		Joins("JOIN bills ON bills.id = payments.bill_id").
		Joins("JOIN bookings ON bookings.id = bills.booking_id").
		Where("bookings.branch_id = ?", branchID).
		Where("payments.paid_at >= ? AND payments.paid_at < ?", from, to).
		Select("COALESCE(SUM(payments.amount), 0)").
		Scan(&report.Collected).Error; err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	return report, nil
}
