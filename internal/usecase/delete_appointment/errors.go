package delete_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("delete_appointment: appointment not found")

	// ErrAccessDenied возвращается, когда мастер пытается удалить чужую запись
	ErrAccessDenied = errors.New("delete_appointment: access denied")

	// ErrNotEditable возвращается для записей на прошедшие даты
	ErrNotEditable = errors.New("delete_appointment: appointment is not editable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_appointment: internal error")
)
