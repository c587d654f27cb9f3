package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/turnosya/booking-service/internal/domain"
	"github.com/turnosya/booking-service/pkg/dbmetrics"
	"github.com/turnosya/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий недельных расписаний профессионалов
//
// Хранение: одна строка на профессионала, JSONB-колонка horarios с картой
// "день недели" -> массив слот-индексов 0..47. Вся карта перезаписывается
// целиком при каждом сохранении - послотовой инкрементальной записи нет.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProfessional получает расписание профессионала
// Возвращает ErrScheduleNotFound, если расписание еще не настраивалось
func (r *Repository) GetByProfessional(ctx context.Context, tenantID, professionalID int64) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("horarios", "updated_at").
		From("weekly_schedules").
		Where(squirrel.Eq{"tenant_id": tenantID, "profesional_id": professionalID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - scan schedule: %v", ErrScanRow, err)
	}

	days := make(map[string][]domain.SlotIndex)
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - unmarshal horarios: %v", ErrDecode, err)
	}

	schedule := &domain.WeeklySchedule{
		ProfessionalID: professionalID,
		Days:           days,
		UpdatedAt:      updatedAt.Time,
	}

	return schedule, nil
}

// Save сохраняет расписание целиком (upsert по профессионалу)
// Конкурентные редакторы одного расписания не координируются: побеждает
// последняя запись
func (r *Repository) Save(ctx context.Context, tenantID int64, schedule *domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	raw, err := json.Marshal(schedule.Days)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal horarios: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("weekly_schedules").
		Columns("tenant_id", "profesional_id", "horarios").
		Values(tenantID, schedule.ProfessionalID, raw).
		Suffix("ON CONFLICT (tenant_id, profesional_id) DO UPDATE SET horarios = EXCLUDED.horarios, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
