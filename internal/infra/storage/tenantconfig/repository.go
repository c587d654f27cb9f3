package tenantconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/turnosya/booking-service/internal/domain"
	"github.com/turnosya/booking-service/pkg/dbmetrics"
	"github.com/turnosya/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий конфигурации тенанта: одна строка на тенанта,
// перезаписывается целиком при сохранении
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTenant получает конфигурацию тенанта
func (r *Repository) GetByTenant(ctx context.Context, tenantID int64) (*domain.TenantConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"nombre_negocio",
		"duracion_turnos",
		"intervalo_entre_turnos",
		"modo_24h",
		"max_antelacion_dias",
		"created_at",
		"updated_at",
	).
		From("tenant_configs").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.TenantConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.TenantID,
		&config.BusinessName,
		&config.SlotDurationMinutes,
		&config.BufferMinutes,
		&config.Display24h,
		&config.AdvanceBookingDays,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Save сохраняет конфигурацию целиком (upsert по тенанту)
func (r *Repository) Save(ctx context.Context, config *domain.TenantConfig) (*domain.TenantConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tenant_configs").
		Columns(
			"tenant_id",
			"nombre_negocio",
			"duracion_turnos",
			"intervalo_entre_turnos",
			"modo_24h",
			"max_antelacion_dias",
		).
		Values(
			config.TenantID,
			config.BusinessName,
			config.SlotDurationMinutes,
			config.BufferMinutes,
			config.Display24h,
			config.AdvanceBookingDays,
		).
		Suffix(`ON CONFLICT (tenant_id) DO UPDATE SET
			nombre_negocio = EXCLUDED.nombre_negocio,
			duracion_turnos = EXCLUDED.duracion_turnos,
			intervalo_entre_turnos = EXCLUDED.intervalo_entre_turnos,
			modo_24h = EXCLUDED.modo_24h,
			max_antelacion_dias = EXCLUDED.max_antelacion_dias,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&config.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}
