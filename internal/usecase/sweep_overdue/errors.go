package sweep_overdue

import "errors"

var (
	// ErrAccessDenied ручной запуск доступен только администратору
	ErrAccessDenied = errors.New("sweep_overdue: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("sweep_overdue: internal error")
)
