package schedule

import "errors"

var (
	// ErrInvalidSchedule возвращается при нарушении инвариантов расписания
	ErrInvalidSchedule = errors.New("schedule.service: invalid schedule")

	// ErrInvalidOperation возвращается при неизвестной или некорректной операции редактирования
	ErrInvalidOperation = errors.New("schedule.service: invalid operation")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule.service: internal error")
)
