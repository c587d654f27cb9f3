package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/turnosya/booking-service/internal/domain"
	bookingStorage "github.com/turnosya/booking-service/internal/infra/storage/booking"
)

// Service сервис чтения и отмены записей
type Service struct {
	repo         Repository
	timeProvider TimeProvider
	log          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(repo Repository, timeProvider TimeProvider, log Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: timeProvider,
		log:          log,
	}
}

// GetByID возвращает запись тенанта по ID
func (s *Service) GetByID(ctx context.Context, tenantID, id int64) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, bookingStorage.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// GetProfessionalBookings возвращает записи профессионала на дату
// includeInactive=true добавляет отмененные записи (административное
// представление дня)
func (s *Service) GetProfessionalBookings(ctx context.Context, tenantID, professionalID int64, date time.Time, includeInactive bool) ([]*domain.Booking, error) {
	bookings, err := s.repo.GetByProfessionalAndDate(ctx, domain.ProfessionalDayFilter{
		TenantID:        tenantID,
		ProfessionalID:  professionalID,
		Date:            date,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfessionalBookings - failed to get bookings: %v", ErrInternal, err)
	}
	return bookings, nil
}

// Confirm переводит запись из Reservado в Confirmado
func (s *Service) Confirm(ctx context.Context, tenantID, id int64) (*domain.Booking, error) {
	booking, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if booking.Status != domain.StatusReserved {
		return nil, fmt.Errorf("%w: cannot confirm booking in status %s", ErrInvalidStatus, booking.Status)
	}

	if err := s.repo.UpdateStatus(ctx, tenantID, id, domain.StatusConfirmed); err != nil {
		return nil, fmt.Errorf("%w: Confirm - failed to update status: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed
	s.log.Info("Confirm: booking id=%d confirmed", id)

	return booking, nil
}

// Cancel отменяет запись с указанием причины
//
// Отмена запрещена менее чем за domain.CancelCutoffMinutes до начала.
// Запись не удаляется, а переводится в статус Cancelado и перестает
// блокировать свой слот.
func (s *Service) Cancel(ctx context.Context, tenantID, id int64, reason string) error {
	booking, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	if !booking.CanBeCancelled() {
		return fmt.Errorf("%w: booking id=%d is in status %s", ErrAlreadyCancelled, id, booking.Status)
	}

	start, err := bookingStart(booking)
	if err != nil {
		return fmt.Errorf("%w: Cancel - booking id=%d has invalid start time: %v", ErrInternal, id, err)
	}

	cutoff := start.Add(-domain.CancelCutoffMinutes * time.Minute)
	if s.timeProvider.Now().After(cutoff) {
		return fmt.Errorf("%w: booking id=%d starts at %s", ErrTooLateToCancel, id, booking.StartTime)
	}

	if err := s.repo.Cancel(ctx, tenantID, id, reason); err != nil {
		if errors.Is(err, bookingStorage.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: Cancel - failed to cancel booking: %v", ErrInternal, err)
	}

	s.log.Info("Cancel: booking id=%d cancelled, reason=%q", id, reason)

	return nil
}

// bookingStart собирает локальный момент начала записи из даты и hora_inicio
func bookingStart(booking *domain.Booking) (time.Time, error) {
	minutes, err := booking.StartTime.ToMinutes()
	if err != nil {
		return time.Time{}, err
	}

	year, month, day := booking.BookingDate.Date()
	return time.Date(year, month, day, minutes/60, minutes%60, 0, 0, time.Local), nil
}
