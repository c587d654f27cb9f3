package get_professional_bookings

import (
	"github.com/turnosya/booking-service/internal/domain"
)

// BookingItem одна запись в административном представлении дня
type BookingItem struct {
	ID              int64  `json:"id"`
	ClientName      string `json:"clientName"`
	ServiceName     string `json:"serviceName"`
	DurationMinutes int    `json:"durationMinutes"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Status          string `json:"status"`
}

// ProfessionalBookingsResponse HTTP response model
type ProfessionalBookingsResponse struct {
	Date           string        `json:"date"`
	ProfessionalID int64         `json:"professionalId"`
	Bookings       []BookingItem `json:"bookings"`
}

// FromDomain конвертирует записи дня в HTTP response
func FromDomain(professionalID int64, date string, bookings []*domain.Booking) *ProfessionalBookingsResponse {
	items := make([]BookingItem, len(bookings))
	for i, b := range bookings {
		items[i] = BookingItem{
			ID:              b.ID,
			ClientName:      b.ClientName,
			ServiceName:     b.ServiceName,
			DurationMinutes: b.DurationMinutes,
			StartTime:       b.StartTime.String(),
			EndTime:         b.EndTime.String(),
			Status:          string(b.Status),
		}
	}

	return &ProfessionalBookingsResponse{
		Date:           date,
		ProfessionalID: professionalID,
		Bookings:       items,
	}
}
