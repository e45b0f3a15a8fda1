package create_appointment

import "errors"

var (
	// ErrAccessDenied возвращается, когда мастер пытается записать клиента к другому сотруднику
	ErrAccessDenied = errors.New("create_appointment: access denied")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("create_appointment: staff not found")

	// ErrPastDate возвращается при попытке создать запись на прошедшую дату
	ErrPastDate = errors.New("create_appointment: cannot create appointment in the past")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает со слотом сетки или попадает на обед
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrStaffUnavailable возвращается, когда у сотрудника одобрен выходной на эту дату
	ErrStaffUnavailable = errors.New("create_appointment: staff is unavailable on this date")

	// ErrSlotNotAvailable возвращается, когда слот сотрудника уже занят
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
