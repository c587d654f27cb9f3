package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/turnosya/booking-service/internal/domain"
	bookingStorage "github.com/turnosya/booking-service/internal/infra/storage/booking"
	scheduleStorage "github.com/turnosya/booking-service/internal/infra/storage/schedule"
	"github.com/turnosya/booking-service/internal/integrations/directory"
	"github.com/turnosya/booking-service/pkg/types"
)

// notifyTimeout таймаут на отправку уведомления после коммита
const notifyTimeout = 10 * time.Second

// UseCase создание записи клиента к профессионалу
//
// Все проверки доступности повторяются внутри сериализуемой транзакции
// с блокировкой записей дня (FOR UPDATE). Даже если две конкурентные
// транзакции проскочат проверку, вставку остановит частичный уникальный
// индекс по (profesional_id, fecha, hora_inicio) среди активных записей.
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	configSvc    ConfigProvider
	directory    DirectoryClient
	notifier     Notifier
	txManager    TxManager
	timeProvider TimeProvider
	log          Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	configSvc ConfigProvider,
	directoryClient DirectoryClient,
	notifier Notifier,
	txManager TxManager,
	timeProvider TimeProvider,
	log Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		configSvc:    configSvc,
		directory:    directoryClient,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: timeProvider,
		log:          log,
	}
}

// Execute создает новую запись
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидируем и разбираем входные данные
	parsed, err := uc.validateRequest(req)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Загружаем конфигурацию тенанта
	config, err := uc.configSvc.GetConfig(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - failed to get tenant config: %v", ErrInternal, err)
	}

	// 3. Проверяем горизонт бронирования
	if config.HasAdvanceBookingLimit() {
		diff := types.DiffDays(parsed.date, now)
		if diff > config.AdvanceBookingDays {
			return nil, fmt.Errorf("%w: date %s is %d days ahead, limit is %d",
				ErrDateTooFarInFuture, req.Date, diff, config.AdvanceBookingDays)
		}
	}

	// 4. Проверяем профессионала и получаем его имя для денормализации
	professional, err := uc.directory.GetProfessional(ctx, req.TenantID, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, directory.ErrProfessionalNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrProfessionalNotFound, req.ProfessionalID)
		}
		return nil, fmt.Errorf("%w: Execute - failed to get professional: %v", ErrInternal, err)
	}
	if !professional.Active {
		return nil, fmt.Errorf("%w: id %d", ErrProfessionalInactive, req.ProfessionalID)
	}

	// 5. Получаем услугу и её длительность
	service, err := uc.directory.GetService(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, directory.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrServiceNotFound, req.ServiceID)
		}
		return nil, fmt.Errorf("%w: Execute - failed to get service: %v", ErrInternal, err)
	}

	duration := service.DurationMinutes
	if duration <= 0 {
		duration = config.SlotDurationMinutes
	}

	startMinutes, err := parsed.slot.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	endMinutes := startMinutes + duration
	endTime, err := types.MinutesToTime(endMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: service does not fit before midnight", ErrInvalidTimeSlot)
	}

	booking := &domain.Booking{
		TenantID:         req.TenantID,
		ClientName:       req.ClientName,
		ClientWhatsApp:   req.ClientWhatsApp,
		ServiceName:      service.Name,
		DurationMinutes:  duration,
		ProfessionalID:   req.ProfessionalID,
		ProfessionalName: professional.Name,
		BookingDate:      parsed.date,
		StartTime:        parsed.startTime,
		EndTime:          endTime,
		Status:           domain.StatusReserved,
	}

	// 6. Проверяем доступность и создаем запись атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return uc.checkAndCreate(txCtx, booking, parsed, startMinutes, endMinutes, now)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info("Execute: booking id=%d created for professional id=%d on %s at %s",
		booking.ID, booking.ProfessionalID, req.Date, req.StartTime)

	// 7. Уведомляем клиента после коммита. Fire-and-forget: запись уже
	// создана, сбой шлюза на результат не влияет
	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		uc.notifier.NotifyBookingCreated(notifyCtx, booking, config.BusinessName, config.Display24h)
	}()

	return newResponse(booking), nil
}

// checkAndCreate выполняет проверки доступности и вставку внутри транзакции
func (uc *UseCase) checkAndCreate(
	ctx context.Context,
	booking *domain.Booking,
	parsed *parsedRequest,
	startMinutes, endMinutes int,
	now time.Time,
) error {
	// Lead time действует только для записей на сегодня
	if types.SameDay(parsed.date, now) {
		nowMinutes := now.Hour()*60 + now.Minute()
		if startMinutes < nowMinutes+domain.LeadTimeMinutes {
			return fmt.Errorf("%w: slot %s starts too soon", ErrLeadTimeViolation, parsed.startTime)
		}
	}

	// Слот должен входить в недельное расписание профессионала
	schedule, err := uc.scheduleRepo.GetByProfessional(ctx, booking.TenantID, booking.ProfessionalID)
	if err != nil {
		if errors.Is(err, scheduleStorage.ErrScheduleNotFound) {
			schedule = domain.DefaultWeeklySchedule(booking.ProfessionalID)
		} else {
			return fmt.Errorf("%w: checkAndCreate - failed to get schedule: %v", ErrInternal, err)
		}
	}

	weekday := domain.WeekdayName(parsed.date)
	if len(schedule.SlotsFor(weekday)) == 0 {
		return fmt.Errorf("%w: %s", ErrDayOff, weekday)
	}
	if !schedule.HasSlot(weekday, parsed.slot) {
		return fmt.Errorf("%w: slot %s is not in the schedule for %s", ErrSlotTaken, parsed.startTime, weekday)
	}

	// Блокируем активные записи дня (FOR UPDATE) и проверяем пересечения
	bookings, err := uc.bookingRepo.GetByProfessionalAndDate(ctx, domain.ProfessionalDayFilter{
		TenantID:       booking.TenantID,
		ProfessionalID: booking.ProfessionalID,
		Date:           parsed.date,
	})
	if err != nil {
		return fmt.Errorf("%w: checkAndCreate - failed to get bookings: %v", ErrInternal, err)
	}

	for _, existing := range bookings {
		if !existing.IsActive() {
			continue
		}
		existingStart, existingEnd, err := existing.Interval()
		if err != nil {
			return fmt.Errorf("%w: checkAndCreate - booking id=%d has invalid interval: %v", ErrInternal, existing.ID, err)
		}
		if domain.Overlaps(startMinutes, endMinutes, existingStart, existingEnd) {
			return fmt.Errorf("%w: conflicts with booking id=%d", ErrSlotTaken, existing.ID)
		}
	}

	if _, err := uc.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingStorage.ErrSlotTaken) {
			return fmt.Errorf("%w: concurrent booking won the slot", ErrSlotTaken)
		}
		return fmt.Errorf("%w: checkAndCreate - failed to create booking: %v", ErrInternal, err)
	}

	return nil
}
