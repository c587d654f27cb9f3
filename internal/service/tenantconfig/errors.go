package tenantconfig

import "errors"

var (
	// ErrInvalidConfig возвращается при нарушении ограничений конфигурации
	ErrInvalidConfig = errors.New("tenantconfig.service: invalid config")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tenantconfig.service: internal error")
)
