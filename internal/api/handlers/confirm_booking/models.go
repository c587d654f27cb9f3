package confirm_booking

import (
	"github.com/turnosya/booking-service/internal/domain"
	"github.com/turnosya/booking-service/pkg/types"
)

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Status    string `json:"status"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(booking *domain.Booking) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		ID:        booking.ID,
		Date:      types.FormatLocalDate(booking.BookingDate),
		StartTime: booking.StartTime.String(),
		Status:    string(booking.Status),
	}
}
