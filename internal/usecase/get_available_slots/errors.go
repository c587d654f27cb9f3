package get_available_slots

import "errors"

// Результаты "выходной", "за горизонтом" и "не удалось проверить" обязаны
// оставаться различимыми: пустой список слотов никогда не подменяет ошибку
// получения данных
var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrProfessionalInactive возвращается, когда профессионал деактивирован
	ErrProfessionalInactive = errors.New("professional is inactive")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrDayOff возвращается, когда профессионал не работает в запрошенный день
	ErrDayOff = errors.New("professional does not work on this day")

	// ErrDateTooFarInFuture возвращается, когда дата превышает max_antelacion_dias
	ErrDateTooFarInFuture = errors.New("date exceeds maximum advance booking days")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
