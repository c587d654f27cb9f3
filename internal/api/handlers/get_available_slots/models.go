package get_available_slots

import (
	"github.com/turnosya/booking-service/pkg/types"

	getAvailableSlots "github.com/turnosya/booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
//
// Флаги dayOff и exceedsHorizon взаимоисключающие и никогда не совмещаются
// с непустым списком слотов: клиентское представление различает "выходной",
// "за горизонтом" и "все занято"
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	ProfessionalID  int64    `json:"professionalId"`
	ServiceID       int64    `json:"serviceId"`
	DurationMinutes int      `json:"durationMinutes,omitempty"`
	Slots           []string `json:"slots"`
	DayOff          bool     `json:"dayOff,omitempty"`
	ExceedsHorizon  bool     `json:"exceedsHorizon,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date,
		ProfessionalID:  resp.ProfessionalID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров маршрута
func ToUseCaseRequest(tenantID, professionalID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := types.ParseLocalDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		TenantID:       tenantID,
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
	}, nil
}
