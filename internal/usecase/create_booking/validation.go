package create_booking

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/turnosya/booking-service/internal/domain"
	"github.com/turnosya/booking-service/pkg/types"
)

var validate = validator.New()

// parsedRequest разобранные и проверенные поля запроса
type parsedRequest struct {
	date      time.Time
	startTime types.TimeString
	slot      domain.SlotIndex
}

// validateRequest проверяет запрос и разбирает дату и время начала
func (uc *UseCase) validateRequest(req *Request) (*parsedRequest, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date, err := types.ParseLocalDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	startTime := types.TimeString(req.StartTime)
	if err := startTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	// Время начала обязано лежать на 30-минутной границе
	slot, err := domain.TimeToSlotIndex(startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	now := uc.timeProvider.Now()
	if !types.SameDay(date, now) && date.Before(now) {
		return nil, fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, req.Date)
	}

	return &parsedRequest{
		date:      date,
		startTime: startTime,
		slot:      slot,
	}, nil
}
