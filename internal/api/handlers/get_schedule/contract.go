package get_schedule

import (
	"context"

	"github.com/turnosya/booking-service/internal/domain"
)

type ScheduleService interface {
	Get(ctx context.Context, tenantID, professionalID int64) (*domain.WeeklySchedule, bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
