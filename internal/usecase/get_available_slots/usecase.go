package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/turnosya/booking-service/internal/domain"
	scheduleStorage "github.com/turnosya/booking-service/internal/infra/storage/schedule"
	"github.com/turnosya/booking-service/internal/integrations/directory"
	"github.com/turnosya/booking-service/pkg/types"
)

// UseCase расчет доступных слотов для записи к профессионалу
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	configSvc    ConfigProvider
	directory    DirectoryClient
	timeProvider TimeProvider
	log          Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	configSvc ConfigProvider,
	directoryClient DirectoryClient,
	timeProvider TimeProvider,
	log Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		configSvc:    configSvc,
		directory:    directoryClient,
		timeProvider: timeProvider,
		log:          log,
	}
}

// Execute вычисляет доступные слоты профессионала на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидируем входные данные
	if err := uc.validateRequest(req); err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Загружаем конфигурацию тенанта (через кеш, с дефолтами)
	config, err := uc.configSvc.GetConfig(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - failed to get tenant config: %v", ErrInternal, err)
	}

	// 3. Проверяем горизонт бронирования. Проверка не зависит от расписания
	// дня: дата за горизонтом отклоняется даже для выходного
	if config.HasAdvanceBookingLimit() {
		diff := types.DiffDays(req.Date, now)
		if diff > config.AdvanceBookingDays {
			return nil, fmt.Errorf("%w: date %s is %d days ahead, limit is %d",
				ErrDateTooFarInFuture, types.FormatLocalDate(req.Date), diff, config.AdvanceBookingDays)
		}
	}

	// 4. Проверяем, что профессионал существует и активен
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

	// 5. Получаем длительность услуги
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

	// 6. Загружаем недельное расписание. Отсутствие сохраненного расписания
	// означает работу по дефолтному
	schedule, err := uc.scheduleRepo.GetByProfessional(ctx, req.TenantID, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, scheduleStorage.ErrScheduleNotFound) {
			uc.log.Info("Execute: professional id=%d has no stored schedule, using default", req.ProfessionalID)
			schedule = domain.DefaultWeeklySchedule(req.ProfessionalID)
		} else {
			return nil, fmt.Errorf("%w: Execute - failed to get schedule: %v", ErrInternal, err)
		}
	}

	// 7. Выходной определяется пустым набором слотов дня недели
	weekday := domain.WeekdayName(req.Date)
	slots := schedule.SlotsFor(weekday)
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDayOff, weekday)
	}

	// 8. Загружаем активные записи дня. Ошибку нельзя подменять пустым
	// списком: "свободно" и "не удалось проверить" - разные ответы
	bookings, err := uc.bookingRepo.GetByProfessionalAndDate(ctx, domain.ProfessionalDayFilter{
		TenantID:       req.TenantID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - failed to get bookings: %v", ErrInternal, err)
	}

	intervals, err := collectIntervals(bookings)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - %v", ErrInternal, err)
	}

	// 9. Фильтруем слоты по lead time и конфликтам
	available, err := filterSlots(slots, duration, req.Date, now, intervals)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - failed to filter slots: %v", ErrInternal, err)
	}

	uc.log.Info("Execute: professional id=%d date=%s: %d of %d slots available",
		req.ProfessionalID, types.FormatLocalDate(req.Date), len(available), len(slots))

	return &Response{
		Date:            types.FormatLocalDate(req.Date),
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: duration,
		Slots:           available,
	}, nil
}
