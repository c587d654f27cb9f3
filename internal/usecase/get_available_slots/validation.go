package get_available_slots

import (
	"fmt"

	"github.com/turnosya/booking-service/pkg/types"
)

// validateRequest проверяет корректность входных данных запроса
func (uc *UseCase) validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenant id must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professional id must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service id must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Дата в прошлом не имеет доступных слотов по определению
	now := uc.timeProvider.Now()
	if !types.SameDay(req.Date, now) && req.Date.Before(now) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, types.FormatLocalDate(req.Date))
	}

	return nil
}
