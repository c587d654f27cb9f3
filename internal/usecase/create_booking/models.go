package create_booking

import (
	"github.com/turnosya/booking-service/internal/domain"
	"github.com/turnosya/booking-service/pkg/types"
)

// Request запрос на создание записи
// Теги validate проверяются библиотекой go-playground/validator
type Request struct {
	TenantID       int64  `validate:"required,gt=0"`
	ClientName     string `validate:"required,min=2,max=100"`
	ClientWhatsApp string `validate:"required,e164"`
	ProfessionalID int64  `validate:"required,gt=0"`
	ServiceID      int64  `validate:"required,gt=0"`
	Date           string `validate:"required,datetime=2006-01-02"`
	StartTime      string `validate:"required,datetime=15:04"`
}

// Response ответ с созданной записью
type Response struct {
	ID               int64                `json:"id"`
	ClientName       string               `json:"client_name"`
	ServiceName      string               `json:"service_name"`
	DurationMinutes  int                  `json:"duration_minutes"`
	ProfessionalID   int64                `json:"professional_id"`
	ProfessionalName string               `json:"professional_name"`
	Date             string               `json:"date"`
	StartTime        types.TimeString     `json:"start_time"`
	EndTime          types.TimeString     `json:"end_time"`
	Status           domain.BookingStatus `json:"status"`
}

func newResponse(booking *domain.Booking) *Response {
	return &Response{
		ID:               booking.ID,
		ClientName:       booking.ClientName,
		ServiceName:      booking.ServiceName,
		DurationMinutes:  booking.DurationMinutes,
		ProfessionalID:   booking.ProfessionalID,
		ProfessionalName: booking.ProfessionalName,
		Date:             types.FormatLocalDate(booking.BookingDate),
		StartTime:        booking.StartTime,
		EndTime:          booking.EndTime,
		Status:           booking.Status,
	}
}
