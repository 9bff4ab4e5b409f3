package source

import "errors"

var (
	// ErrUnavailable возвращается при сетевой ошибке или таймауте источника
	ErrUnavailable = errors.New("source client: endpoint unavailable")

	// ErrBadStatus возвращается при не-2xx ответе источника
	ErrBadStatus = errors.New("source client: unexpected status code")

	// ErrInvalidResponse возвращается при некорректном JSON в ответе
	ErrInvalidResponse = errors.New("source client: invalid response body")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("source client: internal error")
)
