package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewBookingReference returns a short human-readable reference code like
// "BK-3F2A9C1D". Uniqueness rides on the underlying UUID; the bookings table
// keeps a unique index on the column as a backstop.
func NewBookingReference() string {
	id := uuid.New()
	return fmt.Sprintf("BK-%s", strings.ToUpper(id.String()[:8]))
}
