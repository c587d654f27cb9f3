package edit_schedule

import (
	"context"

	"github.com/turnosya/booking-service/internal/domain"
	"github.com/turnosya/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	ApplyOperations(ctx context.Context, tenantID, professionalID int64, operations []models.Operation) (*domain.WeeklySchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
