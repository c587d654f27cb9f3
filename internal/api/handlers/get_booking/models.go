package get_booking

import (
	"time"

	"github.com/turnosya/booking-service/internal/domain"
	"github.com/turnosya/booking-service/pkg/types"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64      `json:"id"`
	ClientName         string     `json:"clientName"`
	ClientWhatsApp     string     `json:"clientWhatsapp"`
	ServiceName        string     `json:"serviceName"`
	DurationMinutes    int        `json:"durationMinutes"`
	ProfessionalID     int64      `json:"professionalId"`
	ProfessionalName   string     `json:"professionalName"`
	Date               string     `json:"date"`
	StartTime          string     `json:"startTime"`
	EndTime            string     `json:"endTime"`
	Status             string     `json:"status"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 booking.ID,
		ClientName:         booking.ClientName,
		ClientWhatsApp:     booking.ClientWhatsApp,
		ServiceName:        booking.ServiceName,
		DurationMinutes:    booking.DurationMinutes,
		ProfessionalID:     booking.ProfessionalID,
		ProfessionalName:   booking.ProfessionalName,
		Date:               types.FormatLocalDate(booking.BookingDate),
		StartTime:          booking.StartTime.String(),
		EndTime:            booking.EndTime.String(),
		Status:             string(booking.Status),
		CancellationReason: booking.CancellationReason,
		CancelledAt:        booking.CancelledAt,
		CreatedAt:          booking.CreatedAt,
	}
}
