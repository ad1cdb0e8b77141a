package services

import (
	"testing"
	"time"

	"hotelms-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bookCheckedInStay creates a booking on room 101 for the 4-night reference
// stay and checks it in so service usage can be recorded against it.
func bookCheckedInStay(t *testing.T, svc *BookingService, f fixtures) *models.Booking {
	t.Helper()

	booking, err := svc.CreateBooking(CreateBookingInput{
		GuestID: f.Guest.ID, BranchID: f.BranchA.ID,
		CheckIn:  ts(t, "2025-10-15T15:00:00Z"),
		CheckOut: ts(t, "2025-10-19T11:00:00Z"),
		RoomIDs:  []uint{f.Room101.ID},
		StaffID:  f.Staff.ID,
	})
	require.NoError(t, err)

	booking, err = svc.CheckIn(booking.ID, f.Staff.ID)
	require.NoError(t, err)
	return booking
}

func TestGenerateBillEndToEnd(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	bookings := newBookingService(db)
	usage := NewServiceUsageService(db, NewAuditService(db))
	billing := newBillingService(db)

	booking := bookCheckedInStay(t, bookings, f)

	// 2 spa sessions at the catalogue price of 3,500
	_, err := usage.RecordUsage(booking.ID, f.Spa.ID, 2, f.Staff.ID)
	require.NoError(t, err)

	// 15:00 -> 11:00 over four calendar days rounds to 4 nights
	bill, err := billing.GenerateBill(booking.ID, 5000, 0.10, f.Staff.ID)
	require.NoError(t, err)

	assert.InDelta(t, 74000, bill.RoomCharges, amountEpsilon) // 18,500 x 4
	assert.InDelta(t, 7000, bill.ServiceCharges, amountEpsilon)
	assert.InDelta(t, 5000, bill.Discount, amountEpsilon)
	assert.InDelta(t, 7600, bill.Tax, amountEpsilon) // (81,000 - 5,000) x 0.10
	assert.InDelta(t, 83600, bill.Total, amountEpsilon)
	assert.Equal(t, models.BillStatusPending, bill.PaymentStatus)
}

func TestGenerateBillValidations(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	bookings := newBookingService(db)
	billing := newBillingService(db)

	booking := bookCheckedInStay(t, bookings, f)

	_, err := billing.GenerateBill(booking.ID, -1, 0.10, f.Staff.ID)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = billing.GenerateBill(booking.ID, 0, -0.10, f.Staff.ID)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = billing.GenerateBill(9999, 0, 0, f.Staff.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGenerateBillClampsNegativeSubtotal(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	bookings := newBookingService(db)
	billing := newBillingService(db)

	booking := bookCheckedInStay(t, bookings, f)

	// discount larger than all charges: subtotal clamps to zero, never negative
	bill, err := billing.GenerateBill(booking.ID, 1000000, 0.10, f.Staff.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0, bill.Tax, amountEpsilon)
	assert.InDelta(t, 0, bill.Total, amountEpsilon)
}

func TestGenerateBillIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	bookings := newBookingService(db)
	billing := newBillingService(db)

	booking := bookCheckedInStay(t, bookings, f)

	first, err := billing.GenerateBill(booking.ID, 0, 0.10, f.Staff.ID)
	require.NoError(t, err)

	second, err := billing.GenerateBill(booking.ID, 5000, 0.10, f.Staff.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "regeneration must update the bill in place")
	assert.InDelta(t, 5000, second.Discount, amountEpsilon)
	assert.Less(t, second.Total, first.Total)

	var count int64
	require.NoError(t, db.Model(&models.Bill{}).Where("booking_id = ?", booking.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGenerateBillPreservesPaymentStatus(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	bookings := newBookingService(db)
	billing := newBillingService(db)

	booking := bookCheckedInStay(t, bookings, f)

	bill, err := billing.GenerateBill(booking.ID, 0, 0, f.Staff.ID)
	require.NoError(t, err)

	_, err = billing.RecordPayment(bill.ID, "cash", 10000, time.Time{}, f.Staff.ID)
	require.NoError(t, err)

	regenerated, err := billing.GenerateBill(booking.ID, 0, 0, f.Staff.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPartiallyPaid, regenerated.PaymentStatus)
}

func TestBillUsesPriceAtUsage(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	bookings := newBookingService(db)
	usage := NewServiceUsageService(db, NewAuditService(db))
	billing := newBillingService(db)

	booking := bookCheckedInStay(t, bookings, f)

	_, err := usage.RecordUsage(booking.ID, f.Spa.ID, 2, f.Staff.ID)
	require.NoError(t, err)

	// raise the catalogue price after the fact; the recorded usage keeps the
	// price it was sold at
	_, err = usage.UpdateService(f.Spa.ID, map[string]interface{}{"unit_price": 9000.0}, f.Staff.ID)
	require.NoError(t, err)

	bill, err := billing.GenerateBill(booking.ID, 0, 0, f.Staff.ID)
	require.NoError(t, err)
	assert.InDelta(t, 7000, bill.ServiceCharges, amountEpsilon)
}

func TestRecordUsageRequiresCheckedIn(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	bookings := newBookingService(db)
	usage := NewServiceUsageService(db, NewAuditService(db))

	booking, err := bookings.CreateBooking(CreateBookingInput{
		GuestID: f.Guest.ID, BranchID: f.BranchA.ID,
		CheckIn:  ts(t, "2025-10-15T15:00:00Z"),
		CheckOut: ts(t, "2025-10-19T11:00:00Z"),
		RoomIDs:  []uint{f.Room101.ID},
		StaffID:  f.Staff.ID,
	})
	require.NoError(t, err)

	_, err = usage.RecordUsage(booking.ID, f.Spa.ID, 1, f.Staff.ID)
	assert.ErrorIs(t, err, ErrNotCheckedIn)

	_, err = usage.RecordUsage(booking.ID, f.Spa.ID, 0, f.Staff.ID)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRecordPaymentLifecycle(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	bookings := newBookingService(db)
	billing := newBillingService(db)

	booking := bookCheckedInStay(t, bookings, f)
	bill, err := billing.GenerateBill(booking.ID, 0, 0, f.Staff.ID)
	require.NoError(t, err)
	require.InDelta(t, 74000, bill.Total, amountEpsilon)

	t.Run("non-positive amount rejected", func(t *testing.T) {
		_, err := billing.RecordPayment(bill.ID, "cash", 0, time.Time{}, f.Staff.ID)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		_, err = billing.RecordPayment(bill.ID, "cash", -100, time.Time{}, f.Staff.ID)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("unknown bill", func(t *testing.T) {
		_, err := billing.RecordPayment(9999, "cash", 100, time.Time{}, f.Staff.ID)
		assert.ErrorIs(t, err, ErrBillNotFound)
	})

	t.Run("partial payment moves bill to partially_paid", func(t *testing.T) {
		_, err := billing.RecordPayment(bill.ID, "cash", 50000, time.Time{}, f.Staff.ID)
		require.NoError(t, err)

		reloaded, err := billing.GetBillByBooking(booking.ID)
		require.NoError(t, err)
		assert.Equal(t, models.BillStatusPartiallyPaid, reloaded.PaymentStatus)
	})

	t.Run("cumulative overpayment rejected", func(t *testing.T) {
		// 30,000 is below the raw total but above the 24,000 remaining
		_, err := billing.RecordPayment(bill.ID, "card", 30000, time.Time{}, f.Staff.ID)
		assert.ErrorIs(t, err, ErrOverpayment)
	})

	t.Run("settling the remainder marks the bill paid", func(t *testing.T) {
		_, err := billing.RecordPayment(bill.ID, "card", 24000, time.Time{}, f.Staff.ID)
		require.NoError(t, err)

		reloaded, err := billing.GetBillByBooking(booking.ID)
		require.NoError(t, err)
		assert.Equal(t, models.BillStatusPaid, reloaded.PaymentStatus)
		assert.Len(t, reloaded.Payments, 2)

		_, err = billing.RecordPayment(bill.ID, "cash", 1, time.Time{}, f.Staff.ID)
		assert.ErrorIs(t, err, ErrOverpayment)
	})
}

func TestRecordPaymentExactTotalInOneCall(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	bookings := newBookingService(db)
	billing := newBillingService(db)

	booking := bookCheckedInStay(t, bookings, f)
	bill, err := billing.GenerateBill(booking.ID, 0, 0.10, f.Staff.ID)
	require.NoError(t, err)

	_, err = billing.RecordPayment(bill.ID, "transfer", bill.Total, time.Time{}, f.Staff.ID)
	require.NoError(t, err)

	reloaded, err := billing.GetBillByBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, reloaded.PaymentStatus)
}

func TestRevenueReport(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	bookings := newBookingService(db)
	billing := newBillingService(db)

	booking := bookCheckedInStay(t, bookings, f)
	bill, err := billing.GenerateBill(booking.ID, 0, 0, f.Staff.ID)
	require.NoError(t, err)

	_, err = billing.RecordPayment(bill.ID, "cash", 50000, time.Time{}, f.Staff.ID)
	require.NoError(t, err)

	// the window brackets the bill's creation time, not the stay dates
	from := time.Now().UTC().Add(-time.Hour)
	to := time.Now().UTC().Add(time.Hour)

	report, err := billing.Revenue(f.BranchA.ID, from, to)
	require.NoError(t, err)
	assert.EqualValues(t, 1, report.BillCount)
	assert.InDelta(t, 74000, report.Billed, amountEpsilon)
	assert.InDelta(t, 50000, report.Collected, amountEpsilon)

	// other branch saw no business
	empty, err := billing.Revenue(f.BranchB.ID, from, to)
	require.NoError(t, err)
	assert.EqualValues(t, 0, empty.BillCount)
	assert.InDelta(t, 0, empty.Collected, amountEpsilon)
}
