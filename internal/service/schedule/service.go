package schedule

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/turnosya/booking-service/internal/domain"
	scheduleStorage "github.com/turnosya/booking-service/internal/infra/storage/schedule"
	"github.com/turnosya/booking-service/internal/service/schedule/models"
)

// ScheduleChangedChannel канал уведомлений об изменении расписания
// Сообщение содержит ID профессионала, чье расписание изменилось
const ScheduleChangedChannel = "schedule-changed"

// Service сервис редактирования недельных расписаний профессионалов
type Service struct {
	repo      Repository
	publisher Publisher
	log       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(repo Repository, publisher Publisher, log Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// Get возвращает расписание профессионала
// Если расписание еще не настраивалось, возвращается дефолтное с флагом
// isDefault=true. Дефолт никогда не сохраняется неявно.
func (s *Service) Get(ctx context.Context, tenantID, professionalID int64) (*domain.WeeklySchedule, bool, error) {
	schedule, err := s.repo.GetByProfessional(ctx, tenantID, professionalID)
	if err != nil {
		if errors.Is(err, scheduleStorage.ErrScheduleNotFound) {
			return domain.DefaultWeeklySchedule(professionalID), true, nil
		}
		return nil, false, fmt.Errorf("%w: Get - failed to get schedule: %v", ErrInternal, err)
	}
	return schedule, false, nil
}

// Save валидирует и сохраняет расписание целиком
func (s *Service) Save(ctx context.Context, tenantID int64, schedule *domain.WeeklySchedule) error {
	if schedule == nil {
		return fmt.Errorf("%w: schedule is nil", ErrInvalidSchedule)
	}
	if err := schedule.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	if err := s.repo.Save(ctx, tenantID, schedule); err != nil {
		return fmt.Errorf("%w: Save - failed to save schedule: %v", ErrInternal, err)
	}

	s.notifyChanged(ctx, schedule.ProfessionalID)
	s.log.Info("Save: schedule saved for professional id=%d", schedule.ProfessionalID)

	return nil
}

// ApplyOperations применяет последовательность операций редактирования к
// текущему расписанию и сохраняет результат одним запросом.
//
// Операции применяются к состоянию в памяти: copy после toggle копирует
// уже измененный день. При ошибке в любой операции ничего не сохраняется.
func (s *Service) ApplyOperations(ctx context.Context, tenantID, professionalID int64, operations []models.Operation) (*domain.WeeklySchedule, error) {
	if len(operations) == 0 {
		return nil, fmt.Errorf("%w: no operations", ErrInvalidOperation)
	}

	schedule, _, err := s.Get(ctx, tenantID, professionalID)
	if err != nil {
		return nil, err
	}

	for i, op := range operations {
		if err := applyOperation(schedule, op); err != nil {
			return nil, fmt.Errorf("%w: operation %d (%s): %v", ErrInvalidOperation, i, op.Type, err)
		}
	}

	if err := schedule.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	if err := s.repo.Save(ctx, tenantID, schedule); err != nil {
		return nil, fmt.Errorf("%w: ApplyOperations - failed to save schedule: %v", ErrInternal, err)
	}

	s.notifyChanged(ctx, professionalID)
	s.log.Info("ApplyOperations: %d operations applied for professional id=%d", len(operations), professionalID)

	return schedule, nil
}

func applyOperation(schedule *domain.WeeklySchedule, op models.Operation) error {
	switch op.Type {
	case models.OpToggle:
		return schedule.ToggleSlot(op.Day, domain.SlotIndex(op.Slot))
	case models.OpToggleAll:
		return schedule.ToggleAllSlots(op.Day)
	case models.OpCopy:
		return schedule.CopyDay(op.FromDay, op.ToDay)
	case models.OpClear:
		return schedule.ClearDay(op.Day)
	default:
		return fmt.Errorf("unknown operation type %q", op.Type)
	}
}

func (s *Service) notifyChanged(ctx context.Context, professionalID int64) {
	if err := s.publisher.Publish(ctx, ScheduleChangedChannel, strconv.FormatInt(professionalID, 10)); err != nil {
		s.log.Warn("notifyChanged: publish failed for professional id=%d: %v", professionalID, err)
	}
}
