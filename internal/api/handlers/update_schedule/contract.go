package update_schedule

import (
	"context"

	"github.com/turnosya/booking-service/internal/domain"
)

type ScheduleService interface {
	Save(ctx context.Context, tenantID int64, schedule *domain.WeeklySchedule) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
