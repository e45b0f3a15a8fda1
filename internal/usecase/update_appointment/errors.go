package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена или не видна пользователю
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrAccessDenied возвращается, когда мастер пытается изменить чужую запись
	ErrAccessDenied = errors.New("update_appointment: access denied")

	// ErrNotEditable возвращается для записей на прошедшие даты
	ErrNotEditable = errors.New("update_appointment: appointment is not editable")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("update_appointment: client not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("update_appointment: service not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("update_appointment: staff not found")

	// ErrPastDate возвращается при переносе записи на прошедшую дату
	ErrPastDate = errors.New("update_appointment: cannot move appointment to the past")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает со слотом сетки или попадает на обед
	ErrInvalidTimeSlot = errors.New("update_appointment: invalid time slot")

	// ErrStaffUnavailable возвращается, когда у сотрудника одобрен выходной на эту дату
	ErrStaffUnavailable = errors.New("update_appointment: staff is unavailable on this date")

	// ErrSlotNotAvailable возвращается, когда слот сотрудника уже занят
	ErrSlotNotAvailable = errors.New("update_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
