package create_booking

import (
	createBooking "github.com/turnosya/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName     string `json:"clientName"`
	ClientWhatsApp string `json:"clientWhatsapp"`
	ProfessionalID int64  `json:"professionalId"`
	ServiceID      int64  `json:"serviceId"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID               int64  `json:"id"`
	ClientName       string `json:"clientName"`
	ServiceName      string `json:"serviceName"`
	DurationMinutes  int    `json:"durationMinutes"`
	ProfessionalID   int64  `json:"professionalId"`
	ProfessionalName string `json:"professionalName"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	Status           string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(tenantID int64) *createBooking.Request {
	return &createBooking.Request{
		TenantID:       tenantID,
		ClientName:     r.ClientName,
		ClientWhatsApp: r.ClientWhatsApp,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		Date:           r.Date,
		StartTime:      r.StartTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:               resp.ID,
		ClientName:       resp.ClientName,
		ServiceName:      resp.ServiceName,
		DurationMinutes:  resp.DurationMinutes,
		ProfessionalID:   resp.ProfessionalID,
		ProfessionalName: resp.ProfessionalName,
		Date:             resp.Date,
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		Status:           string(resp.Status),
	}
}
