package tenantconfig

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/turnosya/booking-service/internal/domain"
	configStorage "github.com/turnosya/booking-service/internal/infra/storage/tenantconfig"
)

// ConfigChangedChannel канал уведомлений об изменении конфигурации тенанта
// Открытые клиентские представления подписываются на него, чтобы подхватить
// изменения раньше истечения TTL кеша
const ConfigChangedChannel = "tenant-config-changed"

// Service сервис конфигурации тенанта с кешем чтения
//
// Конфигурация читается на каждый расчет слотов, поэтому горячий путь идет
// через Redis. Ошибки кеша деградируют до прямого чтения из БД и никогда
// не ломают запрос.
type Service struct {
	repo  Repository
	cache CacheProvider
	log   Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(repo Repository, cache CacheProvider, log Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func cacheKey(tenantID int64) string {
	return fmt.Sprintf("tenant_config:%d", tenantID)
}

// GetConfig возвращает конфигурацию тенанта
// Тенант без сохраненной записи получает дефолтную конфигурацию
func (s *Service) GetConfig(ctx context.Context, tenantID int64) (*domain.TenantConfig, error) {
	key := cacheKey(tenantID)

	var cached domain.TenantConfig
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		s.log.Warn("GetConfig: cache read failed for tenant id=%d: %v", tenantID, err)
	}
	if hit {
		return &cached, nil
	}

	config, err := s.repo.GetByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, configStorage.ErrConfigNotFound) {
			config = domain.DefaultTenantConfig(tenantID)
		} else {
			return nil, fmt.Errorf("%w: GetConfig - failed to get config: %v", ErrInternal, err)
		}
	}

	if err := s.cache.SetJSON(ctx, key, config); err != nil {
		s.log.Warn("GetConfig: cache write failed for tenant id=%d: %v", tenantID, err)
	}

	return config, nil
}

// Update сохраняет конфигурацию тенанта целиком, инвалидирует кеш и
// публикует уведомление об изменении
func (s *Service) Update(ctx context.Context, config *domain.TenantConfig) (*domain.TenantConfig, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - failed to save config: %v", ErrInternal, err)
	}

	// Инвалидация и уведомление не критичны: кеш истечет по TTL сам
	key := cacheKey(config.TenantID)
	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.Warn("Update: cache invalidation failed for tenant id=%d: %v", config.TenantID, err)
	}
	if err := s.cache.Publish(ctx, ConfigChangedChannel, strconv.FormatInt(config.TenantID, 10)); err != nil {
		s.log.Warn("Update: publish failed for tenant id=%d: %v", config.TenantID, err)
	}

	s.log.Info("Update: config saved for tenant id=%d", config.TenantID)

	return saved, nil
}

func validateConfig(config *domain.TenantConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if config.TenantID <= 0 {
		return fmt.Errorf("%w: tenant id must be positive", ErrInvalidConfig)
	}
	if config.SlotDurationMinutes < domain.MinServiceDurationMinutes ||
		config.SlotDurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duracion_turnos must be within %d..%d minutes",
			ErrInvalidConfig, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	if config.SlotDurationMinutes%domain.ServiceDurationStep != 0 {
		return fmt.Errorf("%w: duracion_turnos must be a multiple of %d minutes",
			ErrInvalidConfig, domain.ServiceDurationStep)
	}
	if config.BufferMinutes < 0 {
		return fmt.Errorf("%w: intervalo_entre_turnos must not be negative", ErrInvalidConfig)
	}
	if config.AdvanceBookingDays < 0 || config.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: max_antelacion_dias must be within 0..%d",
			ErrInvalidConfig, domain.MaxAdvanceBookingDays)
	}
	return nil
}
