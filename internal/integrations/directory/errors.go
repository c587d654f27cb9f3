package directory

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден в каталоге
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrUnauthorized возвращается при отклоненном API-ключе
	ErrUnauthorized = errors.New("directory client: api key rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("directory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от data API
	ErrInvalidResponse = errors.New("directory client: invalid response")
)
