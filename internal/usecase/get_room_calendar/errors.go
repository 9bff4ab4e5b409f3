package get_room_calendar

import "errors"

var (
	// ErrInvalidMonth возвращается для месяца вне диапазона 1-12.
	// Переполнение не нормализуется: молчаливая нормализация отдала бы
	// клиенту не ту страницу календаря
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear возвращается для года вне поддерживаемого диапазона
	ErrInvalidYear = errors.New("year is out of supported range")

	// ErrMissingRoom возвращается при пустом идентификаторе комнаты
	ErrMissingRoom = errors.New("room identifier is required")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
