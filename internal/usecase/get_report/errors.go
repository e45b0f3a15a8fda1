package get_report

import "errors"

var (
	// ErrAccessDenied отчеты доступны администратору и мастеру (по своим записям)
	ErrAccessDenied = errors.New("get_report: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_report: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_report: internal error")
)
